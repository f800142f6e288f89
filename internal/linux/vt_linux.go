//go:build linux

package linux

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/srlehn/vtswitch/internal/consts"
	"github.com/srlehn/vtswitch/internal/errors"
)

// GetVTMode issues VT_GETMODE on fd.
func GetVTMode(fd uintptr) (VTMode, error) {
	var m VTMode
	if err := ioctlPtr(fd, VT_GETMODE, unsafe.Pointer(&m)); err != nil {
		if errors.Is(err, unix.ENOTTY) || errors.Is(err, unix.EINVAL) {
			return VTMode{}, errors.Mark(consts.ErrNotAVirtualTerminal, err)
		}
		return VTMode{}, errors.New(err)
	}
	return m, nil
}

// SetVTMode issues VT_SETMODE on fd.
func SetVTMode(fd uintptr, m VTMode) error {
	if err := ioctlPtr(fd, VT_SETMODE, unsafe.Pointer(&m)); err != nil {
		return errors.Mark(consts.ErrModeChangeRejected, err)
	}
	return nil
}

// RelDisp issues VT_RELDISP on fd with the disposition passed by value.
func RelDisp(fd uintptr, d Disposition) error {
	if err := unix.IoctlSetInt(int(fd), VT_RELDISP, int(d)); err != nil {
		return errors.Mark(consts.ErrDispositionRejected, err)
	}
	return nil
}

func KDGetMode(fd uintptr) (mode KDMode, isLinuxConsole bool, _ error) {
	const KDGETMODE uintptr = 0x4b3b
	m, err := unix.IoctlGetInt(int(fd), uint(KDGETMODE))
	if err == nil {
		return KDMode(m), true, nil
	}
	if errors.Is(err, unix.ENOTTY) {
		return -1, false, nil
	}
	return -1, false, errors.New(err)
}

func ioctlPtr(fd uintptr, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func signalName(sig int) string { return unix.SignalName(unix.Signal(sig)) }
