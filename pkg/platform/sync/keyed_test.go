package sync

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	m := NewKeyedMutex()
	counter := 0
	var wg sync.WaitGroup

	for range 200 {
		wg.Go(func() {
			m.Lock("otp:+447700900123")
			defer m.Unlock("otp:+447700900123")
			counter++
		})
	}
	wg.Wait()

	assert.Equal(t, 200, counter)
}

func TestShardForIsStable(t *testing.T) {
	assert.Equal(t, uint32(0), shardFor(""))
	assert.Equal(t, shardFor("otp:+15550001111"), shardFor("otp:+15550001111"))
	assert.Less(t, shardFor("otp:+15550001111"), uint32(shardCount))
}
