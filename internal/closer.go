package internal

import (
	"sync"

	"github.com/srlehn/vtswitch/internal/errors"
)

// Closer runs registered teardown functions in reverse registration order.
type Closer interface {
	Close() error
	OnClose(onClose func() error)
	AddClosers(closers ...interface{ Close() error })
}

var _ Closer = (*lifoCloser)(nil)

type lifoCloser struct {
	mu           sync.Mutex
	onCloseFuncs []func() error
}

func NewCloser() Closer { return &lifoCloser{} }

// Close runs every registered function once. Later calls are no-ops.
func (c *lifoCloser) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	funcs := c.onCloseFuncs
	c.onCloseFuncs = nil
	c.mu.Unlock()

	var errs []error
	for i := len(funcs) - 1; i > -1; i-- {
		if onCloseFunc := funcs[i]; onCloseFunc != nil {
			if err := onCloseFunc(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (c *lifoCloser) OnClose(onClose func() error) {
	if c == nil || onClose == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onCloseFuncs = append(c.onCloseFuncs, onClose)
}

func (c *lifoCloser) AddClosers(closers ...interface{ Close() error }) {
	for _, cl := range closers {
		if cl == nil {
			continue
		}
		c.OnClose(cl.Close)
	}
}
