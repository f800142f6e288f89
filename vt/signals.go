package vt

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/srlehn/vtswitch/internal/errors"
)

// Notifier subscribes a channel to process signals, like os/signal.
type Notifier interface {
	Notify(ch chan<- os.Signal, sigs ...os.Signal)
	Stop(ch chan<- os.Signal)
}

// signalBuffer bounds the queue of undispatched notifications.
// Identical pending signals coalesce in the kernel before reaching it.
const signalBuffer = 16

var _ Notifier = osNotifier{}

type osNotifier struct{}

func (osNotifier) Notify(ch chan<- os.Signal, sigs ...os.Signal) { signal.Notify(ch, sigs...) }
func (osNotifier) Stop(ch chan<- os.Signal)                      { signal.Stop(ch) }

// Signals lists every signal the controller subscribes to:
// acquire, release, termination and the informational extras.
func (c *Controller) Signals() []os.Signal {
	if c == nil {
		return nil
	}
	sigs := []os.Signal{c.acqSig, c.relSig}
	for _, s := range c.termSigs {
		sigs = append(sigs, s)
	}
	for _, s := range c.extraSigs {
		if s == c.acqSig || s == c.relSig || c.isTermination(s) {
			continue
		}
		sigs = append(sigs, s)
	}
	return sigs
}

func (c *Controller) isTermination(sig syscall.Signal) bool {
	for _, s := range c.termSigs {
		if s == sig {
			return true
		}
	}
	return false
}

func (c *Controller) subscribe() {
	c.sigs = make(chan os.Signal, signalBuffer)
	c.notifier.Notify(c.sigs, c.Signals()...)
	c.closer.OnClose(func() error {
		c.notifier.Stop(c.sigs)
		// nothing is sent after Stop returned; ends a Run on another goroutine
		close(c.sigs)
		return nil
	})
}

// validSignal rejects numbers the platform cannot deliver and signals
// whose disposition cannot be changed.
func validSignal(sig syscall.Signal) error {
	switch {
	case sig <= 0 || int(sig) > maxSignal:
		return errors.Errorf(`signal %d out of range 1-%d`, int(sig), maxSignal)
	case isUncatchable(sig):
		return errors.Errorf(`signal %s cannot be caught`, sigName(sig))
	}
	return nil
}
