package linux_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/vtswitch/internal/linux"
)

func TestVTModeLayout(t *testing.T) {
	var m linux.VTMode
	assert.Equal(t, uintptr(8), unsafe.Sizeof(m))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(m.Mode))
	assert.Equal(t, uintptr(1), unsafe.Offsetof(m.WaitV))
	assert.Equal(t, uintptr(2), unsafe.Offsetof(m.RelSig))
	assert.Equal(t, uintptr(4), unsafe.Offsetof(m.AcqSig))
	assert.Equal(t, uintptr(6), unsafe.Offsetof(m.FrSig))
}

func TestVTModeString(t *testing.T) {
	assert.Equal(t, `mode=AUTO waitv=0 relsig=0 acqsig=0 frsig=0`, linux.VTMode{}.String())
	assert.Contains(t, linux.VTMode{Mode: linux.VT_PROCESS, RelSig: 12, AcqSig: 10}.String(), `mode=PROCESS`)
	assert.Equal(t, `0x7`, linux.ModeName(7))
}

func TestDispositionString(t *testing.T) {
	tests := map[linux.Disposition]string{
		linux.DispositionDeny:       `deny`,
		linux.DispositionGrant:      `grant`,
		linux.DispositionAckAcquire: `ack-acquire`,
		linux.Disposition(9):        `disposition(9)`,
	}
	for d, want := range tests {
		assert.Equal(t, want, d.String())
	}
	assert.Equal(t, linux.Disposition(2), linux.DispositionAckAcquire)
}

func TestKDModeString(t *testing.T) {
	assert.Equal(t, `KD_TEXT`, linux.KDMode(0).String())
	assert.Equal(t, `KD_GRAPHICS`, linux.KDMode(1).String())
	assert.Equal(t, `0x10`, linux.KDMode(16).String())
	assert.Equal(t, `-0x1`, linux.KDMode(-1).String())
}
