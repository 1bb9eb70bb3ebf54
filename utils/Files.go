package utils

import (
	"fmt"
	"os"
)

// FileChecker probes the host filesystem. It exists so the installers can be
// tested without touching the real system paths.
type FileChecker interface {
	// IsReadable reports whether path can be opened for reading.
	IsReadable(path string) bool
	// IsExecutable reports whether path can be executed by the current user.
	IsExecutable(path string) bool
	// OwnedByRoot reports whether path belongs to uid 0 and gid 0.
	OwnedByRoot(path string) (bool, error)
}

// OsFileChecker is the FileChecker backed by the real filesystem.
type OsFileChecker struct {
}

func (o OsFileChecker) IsReadable(path string) bool {
	return access(path, accessRead)
}

func (o OsFileChecker) IsExecutable(path string) bool {
	return access(path, accessExec)
}

func (o OsFileChecker) OwnedByRoot(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	uid, gid, ok := ownership(info)
	if !ok {
		// No ownership information on this platform; nothing to repair.
		return true, nil
	}
	return uid == 0 && gid == 0, nil
}

// FirstExisting returns the first of the candidate paths that exists.
func FirstExisting(candidates ...string) (string, bool) {
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}
