//go:build unix

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/vtswitch/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, `/dev/tty`, cfg.Device)
	assert.Equal(t, syscall.SIGUSR2, cfg.ReleaseSignal)
	assert.Equal(t, syscall.SIGUSR1, cfg.AcquireSignal)
	assert.Equal(t, []syscall.Signal{syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT}, cfg.TerminationSignals)
	assert.Empty(t, cfg.WatchSignals)
}

func TestParse(t *testing.T) {
	const file = `
# vtswitch
[Other]
Device=/dev/ignored

[VT Switch]
Device=/dev/tty2
ReleaseSignal=usr1
AcquireSignal=SIGUSR2
TerminationSignals=SIGTERM;SIGHUP;
WatchSignals=SIGWINCH
LogFile=/tmp/vtswitch\slog
`
	cfg := config.Default()
	require.NoError(t, cfg.Parse(strings.NewReader(file)))
	assert.Equal(t, `/dev/tty2`, cfg.Device)
	assert.Equal(t, syscall.SIGUSR1, cfg.ReleaseSignal)
	assert.Equal(t, syscall.SIGUSR2, cfg.AcquireSignal)
	assert.Equal(t, []syscall.Signal{syscall.SIGTERM, syscall.SIGHUP}, cfg.TerminationSignals)
	assert.Equal(t, []syscall.Signal{syscall.SIGWINCH}, cfg.WatchSignals)
	assert.Equal(t, `/tmp/vtswitch log`, cfg.LogFile)
}

func TestParseKeepsDefaultsWithoutGroup(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Parse(strings.NewReader("[Unrelated]\nDevice=/dev/tty9\n")))
	assert.Equal(t, config.Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		`invalid line`:   "[VT Switch]\nnot a key value line\n",
		`unknown signal`: "[VT Switch]\nReleaseSignal=SIGBOGUS\n",
		`bad list`:       "[VT Switch]\nWatchSignals=SIGHUP;0\n",
	}
	for name, file := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, config.Default().Parse(strings.NewReader(file)))
		})
	}
}

func TestParseSignal(t *testing.T) {
	tests := map[string]syscall.Signal{
		`SIGUSR1`: syscall.SIGUSR1,
		`usr2`:    syscall.SIGUSR2,
		` term `:  syscall.SIGTERM,
		`10`:      syscall.Signal(10),
	}
	for name, want := range tests {
		sig, err := config.ParseSignal(name)
		if assert.NoError(t, err, name) {
			assert.Equal(t, want, sig, name)
		}
	}
	for _, bad := range []string{``, `-3`, `0`, `NOPE`} {
		_, err := config.ParseSignal(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(filepath.Join(dir, `missing.conf`), false)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(filepath.Join(dir, `missing.conf`), true)
	assert.Error(t, err)

	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("[VT Switch]\nDevice=/dev/tty5\n"), 0o600))
	cfg, err = config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, `/dev/tty5`, cfg.Device)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(`XDG_CONFIG_HOME`, `/xdg/config`)
	assert.Equal(t, `/xdg/config/vtswitch/vtswitch.conf`, config.DefaultPath())
}
