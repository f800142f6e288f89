// Package procextra resolves which terminal a process is attached to.
package procextra

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/srlehn/vtswitch/internal/errors"
	"github.com/srlehn/vtswitch/internal/exc"
)

// ControllingTTY returns the terminal of the current process, e.g. "/tty2".
// An empty name without error means the process has no controlling terminal.
func ControllingTTY() (string, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ``, errors.New(err)
	}
	return TTYOfProc(proc)
}

func TTYOfProc(proc *process.Process) (string, error) {
	if proc == nil {
		return ``, errors.NilParam()
	}
	tty, err := proc.Terminal()
	if err == nil {
		return tty, nil
	}
	// github.com/shirou/gopsutil/internal/common.ErrNotImplementedError
	if err.Error() != `not implemented yet` {
		return ``, errors.New(err)
	}
	psAbs, err := exc.LookSystemDirs(`ps`)
	if err != nil {
		return ``, err
	}
	psOut, err := exec.Command(psAbs, `-o`, `tty=`, `-p`, strconv.Itoa(int(proc.Pid))).Output()
	if err != nil {
		return ``, errors.New(err)
	}
	return parsePSTTY(psOut), nil
}

func parsePSTTY(psOut []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(psOut))
	for scanner.Scan() {
		tty := strings.TrimSpace(scanner.Text())
		if len(tty) == 0 || strings.HasPrefix(tty, `?`) {
			return ``
		}
		return string(filepath.Separator) + tty
	}
	return ``
}
