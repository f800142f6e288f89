//go:build unix

package vt

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func isUncatchable(sig syscall.Signal) bool { return sig == unix.SIGKILL || sig == unix.SIGSTOP }
