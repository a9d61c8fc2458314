package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutualExclusion(t *testing.T) {
	k := NewKeyed()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("team:1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyedIndependentKeys(t *testing.T) {
	k := NewKeyed()

	unlockA := k.Lock("team:1")
	// a different key must not block
	done := make(chan struct{})
	go func() {
		unlockB := k.Lock("team:2")
		unlockB()
		close(done)
	}()
	<-done
	unlockA()
}

func TestKeyedEntriesReclaimed(t *testing.T) {
	k := NewKeyed()

	unlock := k.Lock("team:1")
	unlock()
	// double release is a no-op
	unlock()

	k.mu.Lock()
	defer k.mu.Unlock()
	assert.Empty(t, k.entries)
}
