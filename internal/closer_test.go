package internal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/vtswitch/internal"
)

type closeRecorder struct {
	name  string
	order *[]string
	err   error
}

func (c *closeRecorder) Close() error {
	*c.order = append(*c.order, c.name)
	return c.err
}

func TestCloserLIFO(t *testing.T) {
	var order []string
	errB := errors.New(`b failed`)
	cl := internal.NewCloser()
	cl.AddClosers(&closeRecorder{name: `a`, order: &order})
	cl.OnClose(func() error { order = append(order, `fn`); return nil })
	cl.AddClosers(&closeRecorder{name: `b`, order: &order, err: errB})

	err := cl.Close()
	assert.Equal(t, []string{`b`, `fn`, `a`}, order)
	assert.ErrorIs(t, err, errB)

	// second close runs nothing
	assert.NoError(t, cl.Close())
	assert.Len(t, order, 3)
}

func TestDefaultTTY(t *testing.T) {
	assert.True(t, internal.IsDefaultTTY(internal.DefaultTTYDevice()))
	assert.True(t, internal.IsDefaultTTY(``))
	assert.False(t, internal.IsDefaultTTY(`/dev/tty3`))
}
