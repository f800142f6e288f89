// Package exc locates helper executables in the system directories only.
package exc

import (
	"os"
	"os/user"
	"sync"

	"github.com/srlehn/vtswitch/internal/errors"
)

var systemDirs = []string{
	`/usr/bin/`,
	`/bin/`,
	// likely not in the following
	`/usr/sbin/`,
	`/sbin/`,
}

var (
	mu sync.Mutex
	// key: rel. path, value: abs. path
	exePaths            = make(map[string]string)
	rootChecked, isRoot bool
)

const ErrRootExecStr = `command execution disabled for root user`

// LookSystemDirs returns the absolute path of an executable found in the
// system directories. Helpers are never executed as root.
func LookSystemDirs(exe string) (string, error) {
	if len(exe) == 0 {
		return ``, errors.New(`empty executable name`)
	}
	mu.Lock()
	defer mu.Unlock()
	if !rootChecked {
		u, err := user.Current()
		if err != nil {
			return ``, errors.New(err)
		}
		isRoot = u.Uid == `0`
		rootChecked = true
	}
	if isRoot {
		return ``, errors.New(ErrRootExecStr)
	}
	if exeAbs, ok := exePaths[exe]; ok && len(exeAbs) > 0 && exeAbs[0] == '/' {
		return exeAbs, nil
	}
	for _, systemDir := range systemDirs {
		exeAbs := systemDir + exe
		fi, err := os.Stat(exeAbs)
		if err != nil || fi == nil || fi.IsDir() {
			continue
		}
		// check if executable for others
		if fi.Mode()&0b001 == 0b001 {
			exePaths[exe] = exeAbs
			return exeAbs, nil
		}
	}
	return ``, errors.Errorf(`executable %q not found in system directories`, exe)
}
