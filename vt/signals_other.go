//go:build !unix

package vt

import "syscall"

func isUncatchable(sig syscall.Signal) bool { return sig == syscall.SIGKILL }
