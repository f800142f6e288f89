//go:build !linux

package linux

import (
	"strconv"

	"github.com/srlehn/vtswitch/internal/consts"
	"github.com/srlehn/vtswitch/internal/errors"
)

func GetVTMode(fd uintptr) (VTMode, error) {
	return VTMode{}, errors.New(consts.ErrPlatformNotSupported)
}

func SetVTMode(fd uintptr, m VTMode) error {
	return errors.New(consts.ErrPlatformNotSupported)
}

func RelDisp(fd uintptr, d Disposition) error {
	return errors.New(consts.ErrPlatformNotSupported)
}

func KDGetMode(fd uintptr) (mode KDMode, isLinuxConsole bool, _ error) {
	return -1, false, errors.New(consts.ErrPlatformNotSupported)
}

func signalName(sig int) string { return `sig` + strconv.Itoa(sig) }
