// Package concurrency provides the named locks that serialize mutating
// operations on a player's save. Crafting, storage, profile and sync
// services share a single LockManager so concurrent requests touching
// the same player never interleave their read-modify-write cycles.
package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Locks are created on first
// use and kept for the lifetime of the manager; the key space (player
// ids) stays small.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates an empty LockManager.
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use.
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
