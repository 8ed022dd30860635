package term

import "sync"

// FairMutex guards the terminal's state against writer starvation when a
// PTY reader thread is producing a steady flood of output. A plain
// sync.RWMutex lets a continuous stream of short-held reader locks starve a
// caller that's waiting to take the lock for rendering; FairMutex adds a
// reservation queue so a waiting caller gets a turn between reader chunks.
//
// The reader thread calls Lease to reserve the next fair-lock turn before it
// blocks on a PTY read, then LockUnfair/TryLockUnfair to take the data lock
// directly once its read completes, bypassing the queue it already holds a
// place in. Every other caller uses the ordinary Lock/Unlock/RLock/RUnlock
// pair, which waits behind any outstanding lease.
type FairMutex struct {
	data sync.RWMutex
	next sync.Mutex
}

// NewFairMutex creates an unlocked FairMutex.
func NewFairMutex() *FairMutex {
	return &FairMutex{}
}

// Lock acquires the mutex for writing, waiting behind any outstanding lease.
func (m *FairMutex) Lock() {
	m.next.Lock()
	m.data.Lock()
	m.next.Unlock()
}

// Unlock releases a write lock taken with Lock or LockUnfair.
func (m *FairMutex) Unlock() {
	m.data.Unlock()
}

// RLock acquires the mutex for reading, waiting behind any outstanding lease.
func (m *FairMutex) RLock() {
	m.next.Lock()
	m.data.RLock()
	m.next.Unlock()
}

// RUnlock releases a read lock taken with RLock.
func (m *FairMutex) RUnlock() {
	m.data.RUnlock()
}

// Lease reserves the next fair-lock turn without taking the data lock. Hold
// the returned Lease for as long as the reservation should block ordinary
// Lock/RLock callers — typically for the duration of a blocking PTY read —
// then call Release. While a lease is held, no new Lock/RLock call can
// proceed past the reservation queue, so the lease holder's own eventual
// LockUnfair/TryLockUnfair call cannot be indefinitely passed over.
func (m *FairMutex) Lease() *Lease {
	m.next.Lock()
	return &Lease{m: m}
}

// Lease is a reservation on a FairMutex's next fair-lock turn.
type Lease struct {
	m        *FairMutex
	released bool
}

// Release gives up the reservation. Safe to call more than once.
func (l *Lease) Release() {
	if l == nil || l.released {
		return
	}
	l.released = true
	l.m.next.Unlock()
}

// LockUnfair acquires the data lock directly, bypassing the reservation
// queue. Used by a caller that already holds (or has released) a Lease for
// this turn, so it doesn't need to queue behind itself.
func (m *FairMutex) LockUnfair() {
	m.data.Lock()
}

// TryLockUnfair attempts to acquire the data lock without blocking,
// bypassing the reservation queue. Reports whether the lock was acquired.
func (m *FairMutex) TryLockUnfair() bool {
	return m.data.TryLock()
}
