// Package concurrency provides named locks for serializing work per key.
package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per name. The zero value is ready to use.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the mutex for key and returns it for the caller to release
func (lm *LockManager) Lock(key string) *sync.Mutex {
	m := lm.GetLock(key)
	m.Lock()
	return m
}
