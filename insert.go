package linebuffer

import "errors"

// ErrEntryTooLarge is returned by Insert when a record cannot fit even in an
// empty buffer. The insert has no side effects and no index is consumed.
var ErrEntryTooLarge = errors.New("record exceeds byte capacity")

// Insert appends a record and its flag, evicting oldest records as needed to
// satisfy the count and byte bounds and to reclaim the bytes about to be
// overwritten. It returns the record's newly assigned global index.
//
// Insert is all-or-nothing: on ErrEntryTooLarge the buffer is left exactly as
// before the call.
func (b *Buffer[F]) Insert(data []byte, flag F) (uint64, error) {
	n := len(data)
	if n > len(b.arena) {
		return 0, ErrEntryTooLarge
	}

	// Prospective write region. When the contiguous space to the arena's
	// physical end is too small the cursor skips ahead to offset 0 so the
	// record is never split across the wrap boundary. The skipped tail
	// becomes garbage, and anything still stored there goes with it.
	start := b.writeOff
	skip := -1
	if n > len(b.arena)-b.writeOff {
		skip = b.writeOff
		start = 0
	}

	// Evict oldest-first until the record is admissible. Retained records lie
	// along the arena in age order, so the write sweep can only collide with
	// a prefix of the ring; checking the oldest entry each round is enough.
	for b.count > 0 {
		if b.count+1 > len(b.ring) ||
			b.live+n > len(b.arena) ||
			b.overlapsWrite(&b.ring[b.head], start, n, skip) {
			b.evictOldest()
			continue
		}
		break
	}

	copy(b.arena[start:], data)
	b.writeOff = start + n
	if b.writeOff == len(b.arena) {
		b.writeOff = 0
	}

	b.ring[(b.head+b.count)%len(b.ring)] = entry[F]{
		index:  b.next,
		start:  start,
		length: n,
		flag:   flag,
	}
	b.count++
	b.live += n

	index := b.next
	b.next++
	b.gen++
	return index, nil
}

// overlapsWrite reports whether e's byte range falls inside the prospective
// write region: [start, start+n), plus [skip, len(arena)) when a tail-skip
// is pending.
func (b *Buffer[F]) overlapsWrite(e *entry[F], start, n, skip int) bool {
	if skip >= 0 {
		return touches(e, skip, len(b.arena)) || touches(e, 0, n)
	}
	return touches(e, start, start+n)
}

// touches reports whether the entry's byte range intersects [lo, hi). A
// zero-length entry counts when its start offset lies inside the region:
// once the write sweep passes that offset the entry sits behind the cursor
// and must not outlive its older neighbours.
func touches[F any](e *entry[F], lo, hi int) bool {
	if e.length == 0 {
		return lo <= e.start && e.start < hi
	}
	return e.start < hi && lo < e.start+e.length
}

// evictOldest removes the oldest retained entry and releases its byte range
// as garbage.
func (b *Buffer[F]) evictOldest() {
	b.live -= b.ring[b.head].length
	b.ring[b.head] = entry[F]{} // drop the flag so it can be collected
	b.head = (b.head + 1) % len(b.ring)
	b.count--
}
