package vt

import (
	"os"

	"github.com/containerd/console"

	"github.com/srlehn/vtswitch/internal"
	"github.com/srlehn/vtswitch/internal/errors"
	"github.com/srlehn/vtswitch/internal/linux"
	"github.com/srlehn/vtswitch/internal/procextra"
)

// Mode is the kernel's VT switching configuration (struct vt_mode).
type Mode = linux.VTMode

// Disposition answers a release request or acknowledges an acquisition.
type Disposition = linux.Disposition

const (
	ModeAuto    = linux.VT_AUTO
	ModeProcess = linux.VT_PROCESS

	DispositionDeny       = linux.DispositionDeny
	DispositionGrant      = linux.DispositionGrant
	DispositionAckAcquire = linux.DispositionAckAcquire
)

// Device is an open read/write handle to a VT-capable console device.
// Every method performs exactly one synchronous control call.
type Device interface {
	Name() string
	GetMode() (Mode, error)
	SetMode(m Mode) error
	Disposition(d Disposition) error
	Close() error
}

// attrLogger is implemented by devices that can describe themselves
// for the registration progress lines.
type attrLogger interface {
	LogAttrs() []any
}

var _ Device = (*ttyDevice)(nil)

type ttyDevice struct {
	file *os.File
	con  console.Console // nil if the file is not a terminal at all
	name string
}

// OpenDevice opens the console device at name for reading and writing.
func OpenDevice(name string) (Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.New(err)
	}
	return &ttyDevice{
		file: f,
		con:  consoleFromFile(f),
		name: name,
	}, nil
}

func consoleFromFile(f *os.File) (con console.Console) {
	defer func() {
		// console.ConsoleFromFile panics on some platforms
		if r := recover(); r != nil {
			con = nil
		}
	}()
	c, err := console.ConsoleFromFile(f)
	if err != nil {
		return nil
	}
	return c
}

func (d *ttyDevice) Name() string {
	if d == nil {
		return ``
	}
	return d.name
}

func (d *ttyDevice) GetMode() (Mode, error) {
	if d == nil || d.file == nil {
		return Mode{}, errors.NilReceiver()
	}
	return linux.GetVTMode(d.file.Fd())
}

func (d *ttyDevice) SetMode(m Mode) error {
	if d == nil || d.file == nil {
		return errors.NilReceiver()
	}
	return linux.SetVTMode(d.file.Fd(), m)
}

func (d *ttyDevice) Disposition(disp Disposition) error {
	if d == nil || d.file == nil {
		return errors.NilReceiver()
	}
	return linux.RelDisp(d.file.Fd(), disp)
}

// Close closes the underlying file. The console wrapper shares the file
// and is not closed separately.
func (d *ttyDevice) Close() error {
	if d == nil || d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	d.con = nil
	if err != nil {
		return errors.New(err)
	}
	return nil
}

func (d *ttyDevice) LogAttrs() []any {
	if d == nil || d.file == nil {
		return nil
	}
	attrs := []any{`terminal`, d.con != nil}
	if internal.IsDefaultTTY(d.name) {
		if ctty, err := procextra.ControllingTTY(); err == nil && len(ctty) > 0 {
			attrs = append(attrs, `controlling_tty`, ctty)
		}
	}
	if d.con != nil {
		if sz, err := d.con.Size(); err == nil {
			attrs = append(attrs, `columns`, sz.Width, `rows`, sz.Height)
		}
	}
	if kd, isConsole, err := linux.KDGetMode(d.file.Fd()); err == nil && isConsole {
		attrs = append(attrs, `kd_mode`, kd.String())
	}
	return attrs
}
