package entities

// CommandOutput captures everything an external tool invocation produced.
// A non-zero ExitCode is a result, not an error — only failures to start
// the process at all are reported as errors by the runner.
type CommandOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Succeeded reports whether the tool exited with status zero.
func (o CommandOutput) Succeeded() bool {
	return o.ExitCode == 0
}
