package internal

// DefaultTTYDevice is the controlling terminal of the process.
// On a Linux console this resolves to the VT the process was started on.
func DefaultTTYDevice() string { return `/dev/tty` }

func IsDefaultTTY(ttyName string) bool {
	return len(ttyName) == 0 || ttyName == `/dev/tty`
}
