package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/reaandrew/snapreview/core"
	"github.com/reaandrew/snapreview/utils"
)

const (
	SnapBinary        = "/usr/bin/snap"
	ReviewToolsBinary = "/snap/bin/review-tools"

	apparmorRulesEnabled  = "/etc/apparmor.d/usr.lib.snapd.snap-confine.real"
	apparmorRulesDisabled = "/etc/apparmor.d/disable/usr.lib.snapd.snap-confine.real"
)

// ErrCommandFailed is wrapped by errors for install commands that exited
// with a non-zero status.
var ErrCommandFailed = errors.New("command failed")

// Installer prepares the host so review-tools can run.
type Installer struct {
	Runner core.CommandRunner
	Files  utils.FileChecker
}

func NewInstaller(runner core.CommandRunner) Installer {
	return Installer{
		Runner: runner,
		Files:  utils.OsFileChecker{},
	}
}

// EnsureSnapd installs snapd when the snap command is missing, and fixes up
// the ownership of the root directory, which trips up snap-confine on the
// GitHub hosted runners.
func (i Installer) EnsureSnapd(ctx context.Context) error {
	if !i.Files.IsExecutable(SnapBinary) {
		log.Info("Installing snapd...")
		if err := i.sudo(ctx, "apt-get", "update", "-q"); err != nil {
			return err
		}
		if err := i.sudo(ctx, "apt-get", "install", "-qy", "snapd"); err != nil {
			return err
		}
	}

	rootOwned, err := i.Files.OwnedByRoot("/")
	if err != nil {
		return fmt.Errorf("failed to check ownership of /: %w", err)
	}
	if !rootOwned {
		log.Info("Fixing ownership of the root directory...")
		if err := i.sudo(ctx, "chown", "root:root", "/"); err != nil {
			return err
		}
	}
	return nil
}

// EnsureAppArmor reloads the snap-confine profile when AppArmor is enabled
// but the profile has been moved into the disabled directory.
func (i Installer) EnsureAppArmor(ctx context.Context) error {
	code, err := i.Runner.Run(ctx, "sudo", "aa-enabled")
	if err != nil {
		return fmt.Errorf("failed to run aa-enabled: %w", err)
	}
	if code != 0 {
		log.Debug("AppArmor is not enabled")
		return nil
	}
	if i.Files.IsReadable(apparmorRulesEnabled) || !i.Files.IsReadable(apparmorRulesDisabled) {
		return nil
	}

	log.Info("Enabling the snap-confine AppArmor profile...")
	if err := i.sudo(ctx, "mv", apparmorRulesDisabled, "/etc/apparmor.d/"); err != nil {
		return err
	}
	return i.sudo(ctx, "apparmor_parser", "-a", apparmorRulesEnabled)
}

// EnsureReviewTools installs the review-tools snap when it is missing.
func (i Installer) EnsureReviewTools(ctx context.Context) error {
	if i.Files.IsExecutable(ReviewToolsBinary) {
		return nil
	}
	log.Info("Installing Review Tools...")
	return i.sudo(ctx, "snap", "install", "review-tools")
}

func (i Installer) sudo(ctx context.Context, args ...string) error {
	command := "sudo " + strings.Join(args, " ")
	code, err := i.Runner.Run(ctx, "sudo", args...)
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", command, err)
	}
	if code != 0 {
		return fmt.Errorf("%w: %s exited with status %d", ErrCommandFailed, command, code)
	}
	return nil
}
