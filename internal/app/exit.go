package app

// ExitResult lets CLI handlers control exit code + whether output goes to stderr.
// This keeps command output clean while still using `error` as the control flow.
// Note: ExitResult is also used for successful output (Code: 0).
type ExitResult struct {
	Code     int
	Message  string
	ToStderr bool
}

func (e ExitResult) Error() string   { return e.Message }
func (e ExitResult) ExitCode() int   { return e.Code }
func (e ExitResult) UseStderr() bool { return e.ToStderr }

// UsageExit creates an ExitResult for usage errors (code 2, stderr).
func UsageExit(message string) error {
	return ExitResult{Code: 2, Message: message, ToStderr: true}
}

// FailExit creates an ExitResult for runtime failures (code 1, stderr).
func FailExit(message string) error {
	return ExitResult{Code: 1, Message: message, ToStderr: true}
}

// OKText creates a success ExitResult (code 0) with the given message to stdout.
func OKText(message string) error {
	return ExitResult{Code: 0, Message: message, ToStderr: false}
}
