package consts

import (
	"errors"
)

var (
	ErrNotImplemented       = errors.New(`not implemented`)
	ErrNilReceiver          = errors.New(`nil receiver`)
	ErrNilParam             = errors.New(`nil parameter`)
	ErrPlatformNotSupported = errors.New(`platform not supported`)

	ErrNotAVirtualTerminal = errors.New(`not a virtual terminal`)
	ErrModeChangeRejected  = errors.New(`vt mode change rejected`)
	ErrDispositionRejected = errors.New(`vt release disposition rejected`)
	ErrRestoreFailed       = errors.New(`vt mode restoration failed`)
	ErrNotActive           = errors.New(`vt controller not active`)
)

const (
	ProgramName = `vtswitch`

	StepOpen    = `open`
	StepQuery   = `query`
	StepInstall = `install`
)
