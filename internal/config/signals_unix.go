//go:build unix

package config

import (
	"syscall"

	"golang.org/x/sys/unix"
)

var (
	defaultReleaseSignal      = unix.SIGUSR2
	defaultAcquireSignal      = unix.SIGUSR1
	defaultTerminationSignals = []syscall.Signal{unix.SIGTERM, unix.SIGINT, unix.SIGQUIT}
)

func signalNum(name string) syscall.Signal { return unix.SignalNum(name) }
