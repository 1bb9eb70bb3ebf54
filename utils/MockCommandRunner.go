package utils

import (
	"context"
	"strings"
)

// CommandCall records one invocation made through MockCommandRunner.
type CommandCall struct {
	Name string
	Args []string
}

func (c CommandCall) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// CommandResult is the canned response for a command line.
type CommandResult struct {
	ExitCode int
	Output   string
	Err      error
}

// MockCommandRunner is a mock implementation of core.CommandRunner. Results
// are looked up by the full command line; unknown commands succeed with no
// output.
type MockCommandRunner struct {
	Results map[string]CommandResult
	Calls   []CommandCall
}

func (m *MockCommandRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	result := m.record(name, args)
	return result.ExitCode, result.Err
}

func (m *MockCommandRunner) Output(ctx context.Context, name string, args ...string) (int, string, error) {
	result := m.record(name, args)
	return result.ExitCode, result.Output, result.Err
}

// Commands returns the recorded command lines in call order.
func (m *MockCommandRunner) Commands() []string {
	var commands []string
	for _, call := range m.Calls {
		commands = append(commands, call.String())
	}
	return commands
}

func (m *MockCommandRunner) record(name string, args []string) CommandResult {
	call := CommandCall{Name: name, Args: append([]string(nil), args...)}
	m.Calls = append(m.Calls, call)
	return m.Results[call.String()]
}

// MockFileChecker is a mock implementation of FileChecker driven by sets of
// paths.
type MockFileChecker struct {
	Readable     map[string]bool
	Executable   map[string]bool
	NotRootOwned map[string]bool
	Probed       []string
}

func (m *MockFileChecker) IsReadable(path string) bool {
	m.Probed = append(m.Probed, path)
	return m.Readable[path]
}

func (m *MockFileChecker) IsExecutable(path string) bool {
	m.Probed = append(m.Probed, path)
	return m.Executable[path]
}

func (m *MockFileChecker) OwnedByRoot(path string) (bool, error) {
	m.Probed = append(m.Probed, path)
	return !m.NotRootOwned[path], nil
}
