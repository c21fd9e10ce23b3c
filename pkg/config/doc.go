/*
Package config loads the optional launcher settings file.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +----+----+
	|   YAML    | |  JSON  | |   HCL   |
	|  Parser   | | Parser | | Parser  |
	+-----------+ +--------+ +---------+

🎯 Purpose:
- Resolves the settings path from the --config= flag or FILEOPS_CONFIG
- Loads default switches (show_errors, debug, expand_globs)
- Loads status-message overrides keyed by hex status code
- Supports multiple file formats behind one registry

🔄 Flow:
1. Resolve the path (flag wins over the environment variable)
2. Route the file to a registered parser by extension
3. Decode strictly (unknown fields are errors)
4. Validate and normalize override keys to numeric codes
5. Hand the overrides map to the status table

⚡ Key Responsibilities:
- Format detection and parsing
- Override key validation (hex, optional 0x prefix)
- Rejecting empty replacement text
- Keeping file settings weaker than command-line flags

🤝 Interfaces:
- Parser: format-specific decoding into Config

📝 Design Philosophy:
The settings file can only switch on what a flag could also switch on,
plus message wording. It never changes which operation runs or how
paths are validated, so a launcher with no config file and one with an
empty config file behave identically. Parsers register themselves in
init so adding a format touches exactly one file.

🚧 Current Issues & TODOs:
1. Overrides:
  - Per-action wording (the dialog title already varies by action,
    the body text cannot yet)

2. Resolution:
  - Probe well-known locations (next to the executable) when neither
    the flag nor FILEOPS_CONFIG is set

🔍 Example:

	cfg, err := config.Load(ctx, config.Resolve(flagPath))
	if err != nil {
		return err
	}
	table := status.NewTable().WithOverrides(cfg.Overrides())
*/
package config
