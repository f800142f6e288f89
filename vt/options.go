package vt

import (
	"log/slog"
	"syscall"

	"github.com/srlehn/vtswitch/internal"
	"github.com/srlehn/vtswitch/internal/errors"
)

type Option interface {
	ApplyOption(c *Controller) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Controller) error

func (o OptFunc) ApplyOption(c *Controller) error { return o(c) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(c *Controller) error { return c.setOptions([]Option(o)...) }

func (c *Controller) setOptions(opts ...Option) error {
	if c == nil {
		return errors.NilReceiver()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(c); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetDevicePath selects the console device to open. Empty means /dev/tty.
func SetDevicePath(path string) Option {
	return OptFunc(func(c *Controller) error {
		if len(path) == 0 {
			path = internal.DefaultTTYDevice()
		}
		c.devPath = path
		return nil
	})
}

// SetDevice hands an already open device to the controller,
// which takes ownership and closes it.
func SetDevice(dev Device) Option {
	return OptFunc(func(c *Controller) error {
		if dev == nil {
			return errors.NilParam()
		}
		c.dev = dev
		c.closer.AddClosers(dev)
		return nil
	})
}

func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(c *Controller) error {
		if logger == nil {
			return errors.NilParam()
		}
		c.logger = logger
		return nil
	})
}

func SetReleaseSignal(sig syscall.Signal) Option {
	return OptFunc(func(c *Controller) error { c.relSig = sig; return nil })
}

func SetAcquireSignal(sig syscall.Signal) Option {
	return OptFunc(func(c *Controller) error { c.acqSig = sig; return nil })
}

// SetTerminationSignals replaces the signals that end the dispatch loop.
func SetTerminationSignals(sigs ...syscall.Signal) Option {
	return OptFunc(func(c *Controller) error {
		if len(sigs) == 0 {
			return errors.New(`at least one termination signal is required`)
		}
		c.termSigs = append([]syscall.Signal(nil), sigs...)
		return nil
	})
}

// SetExtraSignals subscribes to additional signals which are only logged.
func SetExtraSignals(sigs ...syscall.Signal) Option {
	return OptFunc(func(c *Controller) error {
		c.extraSigs = append([]syscall.Signal(nil), sigs...)
		return nil
	})
}

// SetNotifier replaces os/signal as the source of notifications.
func SetNotifier(n Notifier) Option {
	return OptFunc(func(c *Controller) error {
		if n == nil {
			return errors.NilParam()
		}
		c.notifier = n
		return nil
	})
}

// SetSwitchObserver installs fn to be told about every release and
// acquisition after the kernel has been answered.
func SetSwitchObserver(fn func(ev Event, ackErr error)) Option {
	return OptFunc(func(c *Controller) error { c.observer = fn; return nil })
}
