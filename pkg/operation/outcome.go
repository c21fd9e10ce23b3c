package operation

import "github.com/winshell/fileops/pkg/shell"

// Outcome is what one shell invocation produced: the raw status code
// and whether the user aborted mid-flight. Produced once by the
// operator, consumed once by the reporter.
type Outcome struct {
	// Status is the raw shell status; zero means the operation
	// completed.
	Status uint32
	// Aborted is set when the user backed out of the operation.
	Aborted bool
}

// Completed reports a fully successful operation.
func (o Outcome) Completed() bool {
	return o.Status == 0 && !o.Aborted
}

// Cancelled reports that the user backed out: the aborted flag takes
// precedence over the status, matching how the shell reports a
// mid-operation stop, and the cancellation sentinel counts too.
func (o Outcome) Cancelled() bool {
	return o.Aborted || o.Status == shell.StatusCancelled
}

// Failed reports any other nonzero status.
func (o Outcome) Failed() bool {
	return !o.Completed() && !o.Cancelled()
}

// ExitCode is the process exit status for this outcome: always the
// raw shell status, cancellation sentinel included.
func (o Outcome) ExitCode() int {
	return int(o.Status)
}
