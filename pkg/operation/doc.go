/*
Package operation runs validated requests through the OS shell.

	+-------------+
	|  Operation  |
	| (Executor)  |
	+------+------+
	       |
	+------+------+
	|    Shell    |
	|  (SHFileOp) |
	+------+------+

🎯 Purpose:
- Maps a validated request onto one shell file-operation call
- Selects the action code and behavior flags for the call
- Classifies the numeric status and abort flag into an Outcome

🔄 Flow:
1. Receive a request the request package has already validated
2. Build the shell.FileOp (action code, paths, flags)
3. Invoke the shell service synchronously
4. Wrap the returned status and abort flag in an Outcome
5. Leave all printing and dialogs to the status package

⚡ Key Responsibilities:
- Flag selection (undo, silent directory creation, pairing)
- Outcome classification (ok, cancelled, failed)
- Exit code fidelity (the raw status, even after an abort)

🤝 Interfaces:
- shell.Service: the one call into the OS
- request.Request: the validated input

📝 Design Philosophy:
The executor owns no I/O and no policy. It cannot fail validation
(that already happened) and it cannot decide wording (that happens
later), so the package stays a thin deterministic mapping from
request to shell call to Outcome. Everything in it is testable with a
mock service on any platform.

🚧 Current Issues & TODOs:
1. Flags:
  - Surface a no-undo switch for bulk deletes that should bypass the
    recycle bin

🔍 Example:

	exec, err := operation.New(operation.Options{Service: svc})
	if err != nil {
		return err
	}
	out, err := exec.Execute(ctx, req)
	if err != nil {
		return err
	}
	code := out.ExitCode()
*/
package operation
