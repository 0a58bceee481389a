package cli

import "fmt"

// Exit codes follow the pre-commit hook contract.
const (
	// ExitViolations blocks the commit: the root listing violates the policy.
	ExitViolations = 1
	// ExitConfigError signals a broken configuration or environment, as
	// opposed to a policy decision.
	ExitConfigError = 2
)

// ExitError carries a process exit code out of a command without forcing an
// extra error message.
type ExitError struct {
	code    int
	message string
}

// NewExitError creates an ExitError. An empty message means the command
// already printed everything it had to say.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{code: code, message: message}
}

func (e *ExitError) Error() string {
	if e == nil {
		return ""
	}
	if e.message != "" {
		return e.message
	}
	return fmt.Sprintf("exit %d", e.code)
}

// Code returns the process exit code to use.
func (e *ExitError) Code() int {
	if e == nil {
		return 1
	}
	return e.code
}

// Message returns the message to print, possibly empty.
func (e *ExitError) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}
