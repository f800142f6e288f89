// Package config loads vtswitch settings from an XDG keyfile.
//
// Example:
//
//	[VT Switch]
//	Device=/dev/tty2
//	ReleaseSignal=SIGUSR2
//	AcquireSignal=SIGUSR1
//	TerminationSignals=SIGTERM;SIGINT;SIGQUIT
//	WatchSignals=SIGHUP
//	LogFile=/var/log/vtswitch.log
package config

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/rkoesters/xdg/keyfile"

	"github.com/srlehn/vtswitch/internal"
	"github.com/srlehn/vtswitch/internal/consts"
	"github.com/srlehn/vtswitch/internal/errors"
)

const (
	Group    = `VT Switch`
	FileName = consts.ProgramName + `.conf`

	KeyDevice             = `Device`
	KeyReleaseSignal      = `ReleaseSignal`
	KeyAcquireSignal      = `AcquireSignal`
	KeyTerminationSignals = `TerminationSignals`
	KeyWatchSignals       = `WatchSignals`
	KeyLogFile            = `LogFile`
)

type Config struct {
	Device             string
	ReleaseSignal      syscall.Signal
	AcquireSignal      syscall.Signal
	TerminationSignals []syscall.Signal
	WatchSignals       []syscall.Signal // informational only
	LogFile            string
}

// Default returns the settings of the stock handshake: /dev/tty,
// release on SIGUSR2, acquire on SIGUSR1.
func Default() *Config {
	return &Config{
		Device:             internal.DefaultTTYDevice(),
		ReleaseSignal:      defaultReleaseSignal,
		AcquireSignal:      defaultAcquireSignal,
		TerminationSignals: append([]syscall.Signal(nil), defaultTerminationSignals...),
	}
}

// DefaultPath is $XDG_CONFIG_HOME/vtswitch/vtswitch.conf.
func DefaultPath() string {
	dir, ok := os.LookupEnv(`XDG_CONFIG_HOME`)
	if !ok || !filepath.IsAbs(dir) {
		home, err := os.UserHomeDir()
		if err != nil {
			return ``
		}
		dir = filepath.Join(home, `.config`)
	}
	return filepath.Join(dir, consts.ProgramName, FileName)
}

// Load reads the keyfile at path on top of the defaults.
// A missing file is only an error if required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()
	if len(path) == 0 {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, errors.New(err)
	}
	defer f.Close()
	if err := cfg.Parse(f); err != nil {
		return nil, errors.WrapPrefix(err, path, 0)
	}
	return cfg, nil
}

// Parse overlays the keys present in r onto c.
func (c *Config) Parse(r io.Reader) error {
	if c == nil {
		return errors.NilReceiver()
	}
	kf, err := keyfile.New(r)
	if err != nil {
		return errors.New(err)
	}
	if !kf.GroupExists(Group) {
		return nil
	}
	if kf.KeyExists(Group, KeyDevice) {
		dev, err := kf.String(Group, KeyDevice)
		if err != nil {
			return errors.WrapPrefix(err, KeyDevice, 0)
		}
		c.Device = dev
	}
	if kf.KeyExists(Group, KeyLogFile) {
		logFile, err := kf.String(Group, KeyLogFile)
		if err != nil {
			return errors.WrapPrefix(err, KeyLogFile, 0)
		}
		c.LogFile = logFile
	}
	for key, dst := range map[string]*syscall.Signal{
		KeyReleaseSignal: &c.ReleaseSignal,
		KeyAcquireSignal: &c.AcquireSignal,
	} {
		if !kf.KeyExists(Group, key) {
			continue
		}
		sig, err := ParseSignal(kf.Value(Group, key))
		if err != nil {
			return errors.WrapPrefix(err, key, 0)
		}
		*dst = sig
	}
	for key, dst := range map[string]*[]syscall.Signal{
		KeyTerminationSignals: &c.TerminationSignals,
		KeyWatchSignals:       &c.WatchSignals,
	} {
		if !kf.KeyExists(Group, key) {
			continue
		}
		names, err := kf.StringList(Group, key)
		if err != nil {
			return errors.WrapPrefix(err, key, 0)
		}
		sigs, err := ParseSignals(names)
		if err != nil {
			return errors.WrapPrefix(err, key, 0)
		}
		*dst = sigs
	}
	return nil
}

// ParseSignal accepts "SIGUSR1", "usr1" or a decimal signal number.
func ParseSignal(name string) (syscall.Signal, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return 0, errors.New(`empty signal name`)
	}
	if n, err := strconv.Atoi(name); err == nil {
		if n <= 0 {
			return 0, errors.Errorf(`invalid signal number %d`, n)
		}
		return syscall.Signal(n), nil
	}
	name = strings.ToUpper(name)
	if !strings.HasPrefix(name, `SIG`) {
		name = `SIG` + name
	}
	sig := signalNum(name)
	if sig == 0 {
		return 0, errors.Errorf(`unknown signal %q`, name)
	}
	return sig, nil
}

func ParseSignals(names []string) ([]syscall.Signal, error) {
	var sigs []syscall.Signal
	for _, name := range names {
		if len(strings.TrimSpace(name)) == 0 {
			continue
		}
		sig, err := ParseSignal(name)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}
