package bookings

import "sync"

// roomLocks serializes booking attempts per room within this process.
// The storage transaction alone cannot close the check-then-write window
// under read-committed isolation, so the service holds a room's lock across
// the whole conflict scan and insert.
type roomLocks struct {
	mu    sync.Mutex
	locks map[int]*roomLock
}

type roomLock struct {
	mu   sync.Mutex
	refs int
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[int]*roomLock)}
}

// Lock acquires the mutex for the given room number. Entries are
// reference-counted and removed once the last holder releases, so the map
// only holds rooms with bookings in flight.
func (r *roomLocks) Lock(roomNumber int) func() {
	r.mu.Lock()
	lock, ok := r.locks[roomNumber]
	if !ok {
		lock = &roomLock{}
		r.locks[roomNumber] = lock
	}
	lock.refs++
	r.mu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()

		r.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(r.locks, roomNumber)
		}
		r.mu.Unlock()
	}
}
