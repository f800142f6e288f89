package main

import (
	"github.com/spf13/cobra"

	"github.com/srlehn/vtswitch/internal/config"
	"github.com/srlehn/vtswitch/internal/errors"
)

const (
	flagTTY           = `tty`
	flagReleaseSignal = `release-signal`
	flagAcquireSignal = `acquire-signal`
	flagTermSignal    = `term-signal`
	flagWatchSignal   = `watch-signal`
	flagConfig        = `config`
	flagLogFile       = `log-file`
	flagDebug         = `debug`
	flagSilent        = `silent`
	flagVerbose       = `verbose`
)

var (
	ttyFlag           string
	releaseSignalFlag string
	acquireSignalFlag string
	termSignalFlag    []string
	watchSignalFlag   []string
	configFlag        string
	logFileFlag       string
	debugFlag         bool
	silentFlag        bool
	verboseFlag       bool
)

func addFlags(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&ttyFlag, flagTTY, `t`, ``, `virtual terminal device (default /dev/tty)`)
	fl.StringVar(&releaseSignalFlag, flagReleaseSignal, ``, `signal raised by the kernel to request release (default SIGUSR2)`)
	fl.StringVar(&acquireSignalFlag, flagAcquireSignal, ``, `signal raised by the kernel on acquisition (default SIGUSR1)`)
	fl.StringSliceVar(&termSignalFlag, flagTermSignal, nil, `signals ending the handshake (default SIGTERM,SIGINT,SIGQUIT)`)
	fl.StringSliceVar(&watchSignalFlag, flagWatchSignal, nil, `additional signals that are only logged`)
	fl.StringVarP(&configFlag, flagConfig, `c`, ``, `config file (default `+config.DefaultPath()+`)`)
	fl.StringVarP(&logFileFlag, flagLogFile, `l`, ``, `log file`)
	fl.BoolVarP(&debugFlag, flagDebug, `d`, false, `debug errors`)
	fl.BoolVarP(&silentFlag, flagSilent, `s`, false, `silence console output and errors`)
	fl.BoolVarP(&verboseFlag, flagVerbose, `v`, false, `log debug messages`)
}

// resolveConfig layers the changed flags over the config file over the defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	fl := cmd.Flags()
	path, required := config.DefaultPath(), false
	if fl.Changed(flagConfig) {
		path, required = configFlag, true
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}
	if fl.Changed(flagTTY) {
		cfg.Device = ttyFlag
	}
	if fl.Changed(flagLogFile) {
		cfg.LogFile = logFileFlag
	}
	if fl.Changed(flagReleaseSignal) {
		if cfg.ReleaseSignal, err = config.ParseSignal(releaseSignalFlag); err != nil {
			return nil, errors.WrapPrefix(err, `--`+flagReleaseSignal, 0)
		}
	}
	if fl.Changed(flagAcquireSignal) {
		if cfg.AcquireSignal, err = config.ParseSignal(acquireSignalFlag); err != nil {
			return nil, errors.WrapPrefix(err, `--`+flagAcquireSignal, 0)
		}
	}
	if fl.Changed(flagTermSignal) {
		if cfg.TerminationSignals, err = config.ParseSignals(termSignalFlag); err != nil {
			return nil, errors.WrapPrefix(err, `--`+flagTermSignal, 0)
		}
	}
	if fl.Changed(flagWatchSignal) {
		if cfg.WatchSignals, err = config.ParseSignals(watchSignalFlag); err != nil {
			return nil, errors.WrapPrefix(err, `--`+flagWatchSignal, 0)
		}
	}
	return cfg, nil
}
