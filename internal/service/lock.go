package service

import "sync"

// EventLocks serializes mutations per event id. Every read-modify-write holds
// the event's lock until persistence and side-effect dispatch finish, so
// concurrent writers on different events never contend.
type EventLocks struct {
	mu sync.Map // event id -> *sync.Mutex
}

func NewEventLocks() *EventLocks {
	return &EventLocks{}
}

// Lock acquires the mutex for the given event id and returns its unlock func.
func (l *EventLocks) Lock(eventID string) func() {
	v, _ := l.mu.LoadOrStore(eventID, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
