package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventLocks_SerializesSameEvent(t *testing.T) {
	locks := NewEventLocks()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("e1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestEventLocks_DifferentEventsDoNotBlock(t *testing.T) {
	locks := NewEventLocks()

	unlockA := locks.Lock("e1")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("e2")
		unlockB()
		close(done)
	}()

	<-done
}
