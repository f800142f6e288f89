package exc_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/vtswitch/internal/exc"
)

func TestLookSystemDirs(t *testing.T) {
	_, err := exc.LookSystemDirs(``)
	assert.Error(t, err)

	_, err = exc.LookSystemDirs(`vtswitch-no-such-helper`)
	assert.Error(t, err)

	if os.Geteuid() == 0 {
		_, err = exc.LookSystemDirs(`sh`)
		assert.ErrorContains(t, err, exc.ErrRootExecStr)
	}
}
