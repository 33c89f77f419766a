package linebuffer

import "iter"

// Record is one retained record as produced by Records.
type Record[F any] struct {
	Index uint64
	Data  []byte
	Flag  *F
}

// Get returns the record with the given global index, or ok == false when
// that index was never assigned or its record has since been evicted. Absent
// is a normal outcome, not an error.
//
// The returned slice and flag pointer alias the buffer's internal storage
// and are valid only until the next Insert.
func (b *Buffer[F]) Get(index uint64) (data []byte, flag *F, ok bool) {
	if b.count == 0 {
		return nil, nil, false
	}
	oldest := b.ring[b.head].index
	if index < oldest || index-oldest >= uint64(b.count) {
		return nil, nil, false
	}
	e := &b.ring[(b.head+int(index-oldest))%len(b.ring)]
	return b.payload(e), &e.flag, true
}

// Records returns an iterator over the currently retained records, oldest to
// newest. The sequence is finite and restartable; calling Records again
// starts a fresh snapshot of whatever is retained at that point.
//
// Mutating the buffer while an iteration is in progress is not allowed and
// panics, since an Insert may overwrite the bytes being yielded.
func (b *Buffer[F]) Records() iter.Seq[Record[F]] {
	return func(yield func(Record[F]) bool) {
		gen := b.gen
		for i := 0; i < b.count; i++ {
			if b.gen != gen {
				panic("linebuffer: Buffer modified during iteration")
			}
			e := &b.ring[(b.head+i)%len(b.ring)]
			if !yield(Record[F]{Index: e.index, Data: b.payload(e), Flag: &e.flag}) {
				return
			}
		}
	}
}

// payload returns e's arena bytes. The capacity is clipped so a caller
// appending to the returned slice cannot scribble over neighbouring records.
func (b *Buffer[F]) payload(e *entry[F]) []byte {
	return b.arena[e.start : e.start+e.length : e.start+e.length]
}
