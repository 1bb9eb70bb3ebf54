//go:build !unix

package utils

import "os"

const (
	accessRead = 0x4
	accessExec = 0x1
)

func access(path string, mode uint32) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if mode == accessExec {
		return !info.IsDir()
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func ownership(info os.FileInfo) (uint32, uint32, bool) {
	return 0, 0, false
}
