package tools

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ExecRunner runs commands on the host with os/exec.
type ExecRunner struct {
	// Writer receives the output of Run. Defaults to the logger at info level.
	Writer io.Writer
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	log.Debugf("Running %s %s", name, strings.Join(args, " "))

	w := r.Writer
	if w == nil {
		lw := log.StandardLogger().WriterLevel(log.InfoLevel)
		defer lw.Close()
		w = lw
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = w
	cmd.Stderr = w
	return exitCode(cmd.Run())
}

func (r ExecRunner) Output(ctx context.Context, name string, args ...string) (int, string, error) {
	log.Debugf("Running %s %s", name, strings.Join(args, " "))

	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &output
	cmd.Stderr = &output
	code, err := exitCode(cmd.Run())
	return code, output.String(), err
}

// exitCode turns the error from exec.Cmd.Run into an exit status. Only
// failures to start, or termination by a signal, are returned as errors.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
