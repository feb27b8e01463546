package lock

import (
	"context"
	"sync"
	"time"
)

// KeyedMutex serializes mutations per key (one lock per room id). Acquisition
// is bounded: a caller that cannot take the lock within its timeout gets
// false back instead of blocking indefinitely.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]chan struct{}),
	}
}

func (km *KeyedMutex) slot(key string) chan struct{} {
	km.mu.Lock()
	defer km.mu.Unlock()

	ch, ok := km.locks[key]
	if !ok {
		ch = make(chan struct{}, 1)
		km.locks[key] = ch
	}
	return ch
}

// Acquire takes the lock for key, waiting at most timeout. It also gives up
// early if ctx is cancelled. Returns true when the lock is held; the caller
// must Release with the same key.
func (km *KeyedMutex) Acquire(ctx context.Context, key string, timeout time.Duration) bool {
	ch := km.slot(key)

	select {
	case ch <- struct{}{}:
		return true
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ch <- struct{}{}:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}

// Release frees the lock for key. Calling Release without a matching Acquire
// is a programming error.
func (km *KeyedMutex) Release(key string) {
	ch := km.slot(key)
	select {
	case <-ch:
	default:
		panic("lock: release of unheld key " + key)
	}
}
