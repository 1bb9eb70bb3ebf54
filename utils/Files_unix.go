//go:build unix

package utils

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

const (
	accessRead = unix.R_OK
	accessExec = unix.X_OK
)

func access(path string, mode uint32) bool {
	return unix.Access(path, mode) == nil
}

func ownership(info os.FileInfo) (uint32, uint32, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0, false
	}
	return stat.Uid, stat.Gid, true
}
