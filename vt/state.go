package vt

import "strconv"

// State is the lifecycle stage of a Controller.
type State int

const (
	StateUnregistered State = iota
	StateActive
	StateTerminating
	StateRestored
)

func (s State) String() string {
	switch s {
	case StateUnregistered:
		return `unregistered`
	case StateActive:
		return `active`
	case StateTerminating:
		return `terminating`
	case StateRestored:
		return `restored`
	}
	return `state(` + strconv.Itoa(int(s)) + `)`
}

// Event is a switch notification passed to a switch observer
// after it has been acknowledged.
type Event int

const (
	EventRelease Event = iota
	EventAcquire
)

func (e Event) String() string {
	switch e {
	case EventRelease:
		return `release`
	case EventAcquire:
		return `acquire`
	}
	return `event(` + strconv.Itoa(int(e)) + `)`
}

// Stats counts dispatched notifications.
type Stats struct {
	Releases   int
	Acquires   int
	Unexpected int
	FailedAcks int
}
