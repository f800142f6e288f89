// Package vt puts a Linux virtual terminal into process-controlled
// switching mode and answers the kernel's release and acquire requests
// until a termination signal arrives.
//
// The kernel raises the release signal when another VT is requested and
// keeps the switch pending until the owner answers with VT_RELDISP.
// The acquire signal announces that the VT is in the foreground again and
// is answered with VT_ACKACQ. A Controller grants every release.
//
// Identical signals that are pending at the same time coalesce, so one
// dispatched release or acquire may stand for several kernel requests.
//
//	c, err := vt.Register(vt.SetDevicePath(`/dev/tty`))
//	if err != nil {
//		return err
//	}
//	defer c.Close() // restores the previous mode
//	return c.Run()
package vt

import (
	"log/slog"
	"os"
	"sync"
	"syscall"

	"github.com/srlehn/vtswitch/internal"
	"github.com/srlehn/vtswitch/internal/config"
	"github.com/srlehn/vtswitch/internal/errors"
	"github.com/srlehn/vtswitch/internal/linux"
	"github.com/srlehn/vtswitch/internal/logx"
)

var _ logx.LoggerProvider = (*Controller)(nil)

// Controller owns the open VT device and the mode it replaced.
type Controller struct {
	mu          sync.Mutex
	state       State
	stats       Stats
	restoreOnce sync.Once
	restoreErr  error

	dev     Device
	devPath string
	oldMode Mode
	newMode Mode

	relSig    syscall.Signal
	acqSig    syscall.Signal
	termSigs  []syscall.Signal
	extraSigs []syscall.Signal

	notifier Notifier
	sigs     chan os.Signal
	observer func(Event, error)
	logger   *slog.Logger
	closer   internal.Closer
}

func newController() *Controller {
	cfg := config.Default()
	return &Controller{
		devPath:  cfg.Device,
		relSig:   cfg.ReleaseSignal,
		acqSig:   cfg.AcquireSignal,
		termSigs: cfg.TerminationSignals,
		notifier: osNotifier{},
		logger:   slog.Default(),
		closer:   internal.NewCloser(),
	}
}

// Register opens the device, records its current mode and installs
// process-controlled switching. Signals are subscribed before the new mode
// is installed.
//
// On failure the returned error is a *RegistrationError, the device is
// closed and its mode is untouched.
func Register(opts ...Option) (*Controller, error) {
	c := newController()
	fail := func(step string, err error) (*Controller, error) {
		_ = c.closer.Close()
		devName := c.devPath
		if c.dev != nil {
			devName = c.dev.Name()
		}
		logx.Error(`registration failed`, c, `step`, step, `device`, devName, `error`, err)
		return nil, errors.New(&RegistrationError{Step: step, Device: devName, Err: err})
	}

	if err := c.setOptions(opts...); err != nil {
		return fail(StepOpen, err)
	}
	if err := c.validateSignals(); err != nil {
		return fail(StepOpen, err)
	}
	if c.dev == nil {
		dev, err := OpenDevice(c.devPath)
		if err != nil {
			return fail(StepOpen, err)
		}
		c.dev = dev
		c.closer.AddClosers(dev)
	}
	attrs := []any{`device`, c.dev.Name()}
	if al, ok := c.dev.(attrLogger); ok {
		attrs = append(attrs, al.LogAttrs()...)
	}
	logx.Info(`opened vt device`, c, attrs...)

	oldMode, err := c.dev.GetMode()
	if err != nil {
		return fail(StepQuery, err)
	}
	c.oldMode = oldMode
	logx.Info(`old mode`, c, `mode`, oldMode.String())

	c.subscribe()

	newMode := Mode{
		Mode:   linux.VT_PROCESS,
		RelSig: int16(c.relSig),
		AcqSig: int16(c.acqSig),
		FrSig:  0,
	}
	logx.Info(`new mode`, c, `mode`, newMode.String())
	if err := c.dev.SetMode(newMode); err != nil {
		return fail(StepInstall, err)
	}
	c.newMode = newMode
	c.setState(StateActive)
	return c, nil
}

func (c *Controller) validateSignals() error {
	for _, sig := range []syscall.Signal{c.relSig, c.acqSig} {
		if err := validSignal(sig); err != nil {
			return errors.WrapPrefix(err, `release/acquire signal`, 0)
		}
	}
	for _, sigs := range [][]syscall.Signal{c.termSigs, c.extraSigs} {
		for _, sig := range sigs {
			if err := validSignal(sig); err != nil {
				return err
			}
		}
	}
	switch {
	case c.relSig == c.acqSig:
		return errors.Errorf(`release and acquire signal are both %s`, sigName(c.relSig))
	case c.isTermination(c.relSig), c.isTermination(c.acqSig):
		return errors.New(`release/acquire signal is also a termination signal`)
	case len(c.termSigs) == 0:
		return errors.New(`no termination signals`)
	}
	return nil
}

// Run dispatches notifications one at a time in delivery order until a
// termination signal is received.
func (c *Controller) Run() error {
	if c == nil {
		return errors.NilReceiver()
	}
	if st := c.State(); st != StateActive {
		return errors.Errorf(`%w: %s`, ErrNotActive, st)
	}
	for sig := range c.sigs {
		if c.Handle(sig) {
			break
		}
	}
	c.mu.Lock()
	if c.state == StateActive {
		c.state = StateTerminating
	}
	c.mu.Unlock()
	return nil
}

// Handle dispatches a single notification and reports whether the
// dispatch loop has to stop. Nothing is dispatched once the controller
// left the active state.
func (c *Controller) Handle(sig os.Signal) (terminate bool) {
	if c == nil || c.State() != StateActive {
		return true
	}
	s, _ := sig.(syscall.Signal)
	switch {
	case s == c.relSig:
		logx.Info(`release`, c, `signal`, sigName(s))
		_ = c.Release()
	case s == c.acqSig:
		logx.Info(`acquire`, c, `signal`, sigName(s))
		_ = c.Acquire()
	case c.isTermination(s):
		logx.Info(sigName(s)+` received, terminating`, c)
		return true
	default:
		c.mu.Lock()
		c.stats.Unexpected++
		c.mu.Unlock()
		logx.Warn(`unexpected signal`, c, `signal`, sig.String(), `name`, sigName(s))
	}
	return false
}

// Release grants the pending switch away from the VT.
// A rejected disposition is logged and returned but is not fatal.
func (c *Controller) Release() error {
	return c.acknowledge(EventRelease, DispositionGrant)
}

// Acquire acknowledges that the VT is in the foreground again.
func (c *Controller) Acquire() error {
	return c.acknowledge(EventAcquire, DispositionAckAcquire)
}

func (c *Controller) acknowledge(ev Event, disp Disposition) error {
	if c == nil || c.dev == nil {
		return errors.NilReceiver()
	}
	err := c.dev.Disposition(disp)
	c.mu.Lock()
	switch ev {
	case EventRelease:
		c.stats.Releases++
	case EventAcquire:
		c.stats.Acquires++
	}
	if err != nil {
		c.stats.FailedAcks++
	}
	c.mu.Unlock()
	if err != nil {
		logx.IsErr(err, c, slog.LevelError, `event`, ev.String(), `disposition`, disp.String())
	}
	if c.observer != nil {
		c.observer(ev, err)
	}
	return err
}

// Restore writes the recorded mode back to the device. The device is only
// written once; repeated calls return the first outcome.
func (c *Controller) Restore() error {
	if c == nil {
		return errors.NilReceiver()
	}
	if c.State() == StateUnregistered {
		return errors.New(ErrNotActive)
	}
	c.restoreOnce.Do(func() {
		c.setState(StateTerminating)
		logx.Info(`restoring mode`, c, `mode`, c.oldMode.String())
		var restoreErr error
		if err := c.dev.SetMode(c.oldMode); err != nil {
			restoreErr = errors.Mark(ErrRestoreFailed, err)
			logx.IsErr(restoreErr, c, slog.LevelError)
		} else {
			logx.Info(`mode restored`, c)
		}
		c.mu.Lock()
		c.restoreErr = restoreErr
		c.state = StateRestored
		c.mu.Unlock()
	})
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.restoreErr
}

// Close restores the previous mode if that has not happened yet, stops the
// signal subscription and closes the device.
func (c *Controller) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	switch c.State() {
	case StateActive, StateTerminating:
		errs = append(errs, c.Restore())
	}
	errs = append(errs, c.closer.Close())
	return errors.Join(errs...)
}

func (c *Controller) State() State {
	if c == nil {
		return StateUnregistered
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(st State) {
	c.mu.Lock()
	c.state = st
	c.mu.Unlock()
}

func (c *Controller) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// OldMode is the mode found on the device before registration.
func (c *Controller) OldMode() Mode { return c.oldMode }

// InstalledMode is the process-controlled mode installed by Register.
func (c *Controller) InstalledMode() Mode { return c.newMode }

func (c *Controller) DeviceName() string {
	if c == nil || c.dev == nil {
		return ``
	}
	return c.dev.Name()
}

func (c *Controller) Logger() *slog.Logger {
	if c == nil || c.logger == nil {
		return nil
	}
	return c.logger
}

func sigName(sig syscall.Signal) string { return linux.SignalString(int(sig)) }
