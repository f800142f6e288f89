//go:build !unix

package config

import "syscall"

var (
	defaultReleaseSignal      syscall.Signal
	defaultAcquireSignal      syscall.Signal
	defaultTerminationSignals = []syscall.Signal{syscall.SIGTERM, syscall.SIGINT}
)

func signalNum(name string) syscall.Signal { return 0 }
