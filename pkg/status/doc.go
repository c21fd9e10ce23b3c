/*
Package status turns shell operation results into console output.

	            +-------------+
	            |   Status    |
	            | (Reporting) |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Table   |           | Reporter|
	| (Lookup)  |           | (Lines) |
	+-----------+           +---------+

🎯 Purpose:
- Translates numeric status codes into human text
- Prints exactly one outcome line per run on stdout
- Raises the warning dialog when error display is requested
- Carries structured stderr logging for the launcher itself

🔄 Flow:
1. Look the code up in the built-in table
2. Apply any configured overrides
3. Fall back to the system message formatter for unknown codes
4. Classify the outcome (ok, cancelled, error)
5. Dialog first when requested, then the stdout line

⚡ Key Responsibilities:
- The built-in code table and its override layer
- Never returning an empty message for any code
- The ok / cancelled / error 0x%x protocol line
- Dialog title and body composition

🤝 Interfaces:
- shell.Dialog: modal warning display
- Table: code to message lookup

📝 Design Philosophy:
Stdout is a protocol surface, not a log. Anything a calling process
might parse goes through the reporter as a single line, and every
other word the launcher says goes to stderr. The table is a value
copied on construction so overrides on one reporter never leak into
another.

🚧 Current Issues & TODOs:
1. Formatter:
  - The system fallback always asks for the user default language;
    thread a LANGID through for callers that pin one

🔍 Example:

	rep, err := status.NewReporter(status.ReporterOptions{
		Out:    os.Stdout,
		Table:  status.NewTable().WithOverrides(cfg.Overrides()),
		Dialog: dlg,
	})
	if err != nil {
		return err
	}
	if err := rep.Report(ctx, req.Action, out, req.ShowErrors); err != nil {
		return err
	}
*/
package status
