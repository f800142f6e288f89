package linux

import (
	"fmt"
	"strconv"
)

// VTMode mirrors struct vt_mode from <linux/vt.h>.
// Field order and widths are part of the ioctl ABI.
type VTMode struct {
	Mode   int8  // VT_AUTO or VT_PROCESS
	WaitV  int8  // hang on writes if not active
	RelSig int16 // signal raised on release request
	AcqSig int16 // signal raised on acquisition
	FrSig  int16 // unused, always 0
}

// <linux/vt.h>
const (
	VT_GETMODE = 0x5601 // get mode of active vt
	VT_SETMODE = 0x5602 // set mode of active vt
	VT_RELDISP = 0x5605 // release display

	VT_AUTO    = 0x00 // auto vt switching
	VT_PROCESS = 0x01 // process controls switching
	VT_ACKACQ  = 0x02 // acknowledge switch
)

// Disposition is the argument of VT_RELDISP.
type Disposition int

const (
	DispositionDeny       Disposition = 0
	DispositionGrant      Disposition = 1
	DispositionAckAcquire Disposition = VT_ACKACQ
)

func (d Disposition) String() string {
	switch d {
	case DispositionDeny:
		return `deny`
	case DispositionGrant:
		return `grant`
	case DispositionAckAcquire:
		return `ack-acquire`
	}
	return `disposition(` + strconv.Itoa(int(d)) + `)`
}

// ModeName returns the symbolic name of a vt_mode.mode value.
func ModeName(mode int8) string {
	switch mode {
	case VT_AUTO:
		return `AUTO`
	case VT_PROCESS:
		return `PROCESS`
	}
	return fmt.Sprintf(`0x%x`, mode)
}

func (m VTMode) String() string {
	return fmt.Sprintf(`mode=%s waitv=%d relsig=%s acqsig=%s frsig=%d`,
		ModeName(m.Mode), m.WaitV, SignalString(int(m.RelSig)), SignalString(int(m.AcqSig)), m.FrSig)
}

// SignalString renders a signal as "SIGUSR1(10)", or just the number if
// it has no name.
func SignalString(sig int) string {
	if sig == 0 {
		return `0`
	}
	if name := signalName(sig); len(name) > 0 {
		return name + `(` + strconv.Itoa(sig) + `)`
	}
	return strconv.Itoa(sig)
}

// KDMode is the console text/graphics mode (<linux/kd.h>).
type KDMode int

func (k KDMode) String() string {
	switch k {
	case 0x0:
		return `KD_TEXT`
	case 0x1:
		return `KD_GRAPHICS`
	case 0x2:
		return `KD_TEXT0`
	case 0x3:
		return `KD_TEXT1`
	}
	if k >= 0 {
		return fmt.Sprintf(`0x%x`, int(k))
	}
	return fmt.Sprintf(`-0x%x`, -int(k))
}
