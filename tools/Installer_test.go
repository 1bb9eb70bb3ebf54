package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reaandrew/snapreview/utils"
)

func TestEnsureSnapd_InstallsSnapdIfNeeded(t *testing.T) {
	runner := &utils.MockCommandRunner{}
	files := &utils.MockFileChecker{}
	installer := Installer{Runner: runner, Files: files}

	require.NoError(t, installer.EnsureSnapd(context.Background()))

	assert.Equal(t, []string{
		"sudo apt-get update -q",
		"sudo apt-get install -qy snapd",
	}, runner.Commands())
	assert.Contains(t, files.Probed, SnapBinary)
	assert.Contains(t, files.Probed, "/")
}

func TestEnsureSnapd_NoopIfInstalled(t *testing.T) {
	runner := &utils.MockCommandRunner{}
	files := &utils.MockFileChecker{Executable: map[string]bool{SnapBinary: true}}
	installer := Installer{Runner: runner, Files: files}

	require.NoError(t, installer.EnsureSnapd(context.Background()))

	assert.Empty(t, runner.Calls)
	assert.Contains(t, files.Probed, "/")
}

func TestEnsureSnapd_FixesRootOwnership(t *testing.T) {
	runner := &utils.MockCommandRunner{}
	files := &utils.MockFileChecker{
		Executable:   map[string]bool{SnapBinary: true},
		NotRootOwned: map[string]bool{"/": true},
	}
	installer := Installer{Runner: runner, Files: files}

	require.NoError(t, installer.EnsureSnapd(context.Background()))

	assert.Equal(t, []string{"sudo chown root:root /"}, runner.Commands())
}

func TestEnsureSnapd_FailedInstall(t *testing.T) {
	runner := &utils.MockCommandRunner{Results: map[string]utils.CommandResult{
		"sudo apt-get update -q": {ExitCode: 100},
	}}
	installer := Installer{Runner: runner, Files: &utils.MockFileChecker{}}

	err := installer.EnsureSnapd(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCommandFailed))
	assert.Contains(t, err.Error(), "sudo apt-get update -q exited with status 100")
	assert.Len(t, runner.Calls, 1)
}

func TestEnsureReviewTools_InstallsIfNeeded(t *testing.T) {
	runner := &utils.MockCommandRunner{}
	files := &utils.MockFileChecker{}
	installer := Installer{Runner: runner, Files: files}

	require.NoError(t, installer.EnsureReviewTools(context.Background()))

	assert.Equal(t, []string{"sudo snap install review-tools"}, runner.Commands())
	assert.Equal(t, []string{ReviewToolsBinary}, files.Probed)
}

func TestEnsureReviewTools_NoopIfInstalled(t *testing.T) {
	runner := &utils.MockCommandRunner{}
	files := &utils.MockFileChecker{Executable: map[string]bool{ReviewToolsBinary: true}}
	installer := Installer{Runner: runner, Files: files}

	require.NoError(t, installer.EnsureReviewTools(context.Background()))

	assert.Empty(t, runner.Calls)
}

func TestEnsureAppArmor(t *testing.T) {
	tests := []struct {
		name     string
		enabled  int
		readable map[string]bool
		want     []string
	}{
		{
			name:    "apparmor disabled",
			enabled: 1,
			want:    []string{"sudo aa-enabled"},
		},
		{
			name:     "profile already enabled",
			readable: map[string]bool{apparmorRulesEnabled: true, apparmorRulesDisabled: true},
			want:     []string{"sudo aa-enabled"},
		},
		{
			name: "no disabled profile",
			want: []string{"sudo aa-enabled"},
		},
		{
			name:     "profile disabled",
			readable: map[string]bool{apparmorRulesDisabled: true},
			want: []string{
				"sudo aa-enabled",
				"sudo mv " + apparmorRulesDisabled + " /etc/apparmor.d/",
				"sudo apparmor_parser -a " + apparmorRulesEnabled,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &utils.MockCommandRunner{Results: map[string]utils.CommandResult{
				"sudo aa-enabled": {ExitCode: tt.enabled},
			}}
			installer := Installer{Runner: runner, Files: &utils.MockFileChecker{Readable: tt.readable}}

			require.NoError(t, installer.EnsureAppArmor(context.Background()))
			assert.Equal(t, tt.want, runner.Commands())
		})
	}
}
