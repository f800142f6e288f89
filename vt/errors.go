package vt

import (
	"github.com/srlehn/vtswitch/internal/consts"
)

var (
	ErrNotAVirtualTerminal = consts.ErrNotAVirtualTerminal
	ErrModeChangeRejected  = consts.ErrModeChangeRejected
	ErrDispositionRejected = consts.ErrDispositionRejected
	ErrRestoreFailed       = consts.ErrRestoreFailed
	ErrNotActive           = consts.ErrNotActive
)

// Registration steps reported by RegistrationError.
const (
	StepOpen    = consts.StepOpen
	StepQuery   = consts.StepQuery
	StepInstall = consts.StepInstall
)

// RegistrationError reports which registration step failed.
// Nothing is left installed on the device when it is returned.
type RegistrationError struct {
	Step   string
	Device string
	Err    error
}

func (e *RegistrationError) Error() string {
	if e == nil {
		return `<nil>`
	}
	msg := `vt registration failed at ` + e.Step + ` step`
	if len(e.Device) > 0 {
		msg += ` (` + e.Device + `)`
	}
	if e.Err != nil {
		msg += `: ` + e.Err.Error()
	}
	return msg
}

func (e *RegistrationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
