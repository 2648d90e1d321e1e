package store

import "sync"

// safeRef gives goroutines shared access to a mutable value. Reads take a
// shared lock; Update takes an exclusive one.
type safeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

func newRef[T any](val T) *safeRef[T] {
	return &safeRef[T]{val: val}
}

// View calls fn with the value under a read lock. fn must not retain or
// modify it.
func (r *safeRef[T]) View(fn func(T)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn(r.val)
}

// Update applies fn to the value under a write lock.
func (r *safeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}
