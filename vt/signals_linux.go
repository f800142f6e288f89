//go:build linux

package vt

// SIGRTMAX (_NSIG - 1)
const maxSignal = 64
