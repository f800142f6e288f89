package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/srlehn/vtswitch/internal/config"
	"github.com/srlehn/vtswitch/internal/errors"
	"github.com/srlehn/vtswitch/internal/logx"
	"github.com/srlehn/vtswitch/vt"
)

const (
	exitOK           = 0
	exitRegistration = 1
	exitRestore      = 2
	exitConfig       = 3
)

// run drives the handshake and returns the process exit code.
// The previous mode is restored on every path out of here,
// including panics, once registration has succeeded.
// opts are applied after the ones derived from cfg.
func run(cfg *config.Config, stdout, stderr io.Writer, opts ...vt.Option) (code int) {
	if cfg == nil {
		reportErr(stderr, errors.NilParam())
		return exitConfig
	}
	logger, closeLog, err := newLogger(cfg, stdout)
	if err != nil {
		reportErr(stderr, err)
		return exitConfig
	}
	defer closeLog()

	var ctrl *vt.Controller
	defer func() {
		if r := recover(); r != nil {
			code = exitRegistration
			if !silentFlag {
				if stackFramer, ok := r.(interface{ ErrorStack() string }); ok {
					fmt.Fprintln(stderr, "\n"+stackFramer.ErrorStack())
				} else {
					fmt.Fprintf(stderr, "panic: %v\n%s", r, debug.Stack())
				}
			}
		}
		if ctrl == nil {
			return
		}
		if err := ctrl.Close(); err != nil {
			reportErr(stderr, err)
			if errors.Is(err, vt.ErrRestoreFailed) && code == exitOK {
				code = exitRestore
			}
		}
	}()

	ctrl, err = vt.Register(append([]vt.Option{
		vt.SetDevicePath(cfg.Device),
		vt.SetLogger(logger),
		vt.SetReleaseSignal(cfg.ReleaseSignal),
		vt.SetAcquireSignal(cfg.AcquireSignal),
		vt.SetTerminationSignals(cfg.TerminationSignals...),
		vt.SetExtraSignals(cfg.WatchSignals...),
	}, opts...)...)
	if err != nil {
		reportErr(stderr, err)
		return exitRegistration
	}
	if err := ctrl.Run(); err != nil {
		reportErr(stderr, err)
		return exitRegistration
	}
	return exitOK
}

// newLogger writes human readable progress lines to stdout
// and, if configured, to the log file.
func newLogger(cfg *config.Config, stdout io.Writer) (*slog.Logger, func(), error) {
	var writers []io.Writer
	if !silentFlag && stdout != nil {
		writers = append(writers, stdout)
	}
	closeLog := func() {}
	if len(cfg.LogFile) > 0 {
		f, err := os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, errors.New(err)
		}
		writers = append(writers, f)
		closeLog = func() { _ = f.Close() }
	}
	if len(writers) == 0 {
		return logx.Discard(), closeLog, nil
	}
	lvl := slog.LevelInfo
	if verboseFlag {
		lvl = slog.LevelDebug
	}
	h := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: lvl})
	return slog.New(h), closeLog, nil
}

func reportErr(w io.Writer, err error) {
	if err == nil || silentFlag || w == nil {
		return
	}
	if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
		fmt.Fprintln(w, "\n"+stackFramer.ErrorStack())
	} else {
		fmt.Fprintln(w, err.Error())
	}
}
