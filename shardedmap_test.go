package searchengine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShardedAccumulatorAddAccumulates(t *testing.T) {
	sa := newShardedAccumulator()
	sa.add(5, 1.5)
	sa.add(5, 2.5)
	sa.add(21, 1.0) // same shard as 5 (21 % 16 == 5)

	merged := sa.buildOrdinaryMap()
	assert.InDelta(t, 4.0, merged[5], EPS)
	assert.InDelta(t, 1.0, merged[21], EPS)
}

func TestShardedAccumulatorConcurrentAdd(t *testing.T) {
	sa := newShardedAccumulator()
	var wg sync.WaitGroup
	for i := 0; i < 1000; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sa.add(7, 1.0)
		}()
	}
	wg.Wait()

	merged := sa.buildOrdinaryMap()
	assert.InDelta(t, 1000.0, merged[7], EPS)
}
