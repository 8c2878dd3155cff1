package searchengine

import "sync"

// shardCount is the fixed number of shards backing shardedAccumulator.
const shardCount = 16

// shard is one independently-lockable partition of a shardedAccumulator.
type shard struct {
	mu     sync.Mutex
	values map[int32]float64
}

// shardedAccumulator is a concurrency-safe map from non-negative int32 doc
// ids to float64 accumulators, partitioned into shardCount shards selected
// by key % shardCount. It exists only to let the parallel scorer accumulate
// per-document relevance without a single global lock on the hot path.
type shardedAccumulator struct {
	shards [shardCount]*shard
}

func newShardedAccumulator() *shardedAccumulator {
	sa := &shardedAccumulator{}
	for i := range sa.shards {
		sa.shards[i] = &shard{values: make(map[int32]float64)}
	}
	return sa
}

func (sa *shardedAccumulator) shardFor(key int32) *shard {
	return sa.shards[int(key)%shardCount]
}

// add atomically adds delta to the accumulator slot for key, creating the
// slot with value 0.0 first if it does not yet exist. This is the Go
// realization of get_ref(key): the shard lock is held only for the
// duration of the single read-modify-write, not handed back to the caller.
func (sa *shardedAccumulator) add(key int32, delta float64) {
	s := sa.shardFor(key)
	s.mu.Lock()
	s.values[key] += delta
	s.mu.Unlock()
}

// buildOrdinaryMap merges all shards into a single map. Callers must ensure
// all writers have finished adding before calling this.
func (sa *shardedAccumulator) buildOrdinaryMap() map[int32]float64 {
	merged := make(map[int32]float64)
	for _, s := range sa.shards {
		s.mu.Lock()
		for k, v := range s.values {
			merged[k] = v
		}
		s.mu.Unlock()
	}
	return merged
}
