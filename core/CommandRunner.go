package core

import "context"

// CommandRunner runs external programs. A non-zero exit status is returned
// as the exit code; err is only set when the program could not be run.
type CommandRunner interface {
	// Run streams the program output to the log.
	Run(ctx context.Context, name string, args ...string) (int, error)
	// Output captures combined stdout and stderr.
	Output(ctx context.Context, name string, args ...string) (int, string, error)
}
