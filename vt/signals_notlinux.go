//go:build !linux

package vt

const maxSignal = 31
