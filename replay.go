package histsearch

// ReplayBuffer wraps a forward-only producer so the sequence can be
// traversed again from the start without re-invoking the producer for
// items it already yielded.
//
// Next drains a replay queue of previously seen items before pulling new
// ones from the producer, and memoizes everything it hands out. Reset
// turns the memo (plus any not-yet-replayed remainder) back into the
// replay queue, preserving original order. After the producer has yielded
// k items, a full traversal following a Reset costs O(k) replay plus one
// producer pull per item never seen before; no item is ever pulled twice.
type ReplayBuffer[T any] struct {
	produce   func() (T, bool)
	replay    []T
	replayPos int
	memo      []T
}

// NewReplayBuffer wraps produce, which must yield items in order and
// return false once exhausted.
func NewReplayBuffer[T any](produce func() (T, bool)) *ReplayBuffer[T] {
	return &ReplayBuffer[T]{
		produce: produce,
	}
}

// Next returns the next item in sequence order, replaying previously seen
// items first after a Reset. The second return value is false when both
// the replay queue and the producer are exhausted.
func (b *ReplayBuffer[T]) Next() (T, bool) {
	if b.replayPos < len(b.replay) {
		item := b.replay[b.replayPos]
		b.replayPos++
		b.memo = append(b.memo, item)
		return item, true
	}
	item, ok := b.produce()
	if !ok {
		var zero T
		return zero, false
	}
	b.memo = append(b.memo, item)
	return item, true
}

// Reset rewinds the sequence to its beginning. Subsequent Next calls
// replay every item produced so far, in original order, before pulling
// new items from the producer.
func (b *ReplayBuffer[T]) Reset() {
	b.memo = append(b.memo, b.replay[b.replayPos:]...)
	b.replay = b.memo
	b.replayPos = 0
	b.memo = nil
}
