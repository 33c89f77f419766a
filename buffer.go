package linebuffer

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity is returned by New when a capacity is not positive.
var ErrInvalidCapacity = errors.New("capacity must be positive")

// entry describes one retained record. The payload lives in the arena at
// [start, start+length); the range never wraps the arena's physical end.
type entry[F any] struct {
	index  uint64
	start  int
	length int
	flag   F
}

// Buffer is a bounded, append-only store for variable-length byte records.
//
// It retains at most entryCapacity records totalling at most byteCapacity
// payload bytes, evicting oldest-first on Insert. The flag type F is carried
// opaquely per record and returned by reference from Get and Records.
//
// A Buffer is not safe for concurrent use.
type Buffer[F any] struct {
	arena []byte
	ring  []entry[F]

	head  int // ring position of the oldest retained entry
	count int

	writeOff int // next free arena offset
	live     int // sum of retained record lengths

	next uint64 // next global index to assign
	gen  uint64 // bumped by every successful Insert
}

// New creates a Buffer holding at most byteCapacity payload bytes across at
// most entryCapacity records. Both memory blocks are allocated up front;
// the buffer never grows or reallocates afterwards.
func New[F any](byteCapacity, entryCapacity int) (*Buffer[F], error) {
	if byteCapacity <= 0 {
		return nil, fmt.Errorf("%w: byte capacity %d", ErrInvalidCapacity, byteCapacity)
	}
	if entryCapacity <= 0 {
		return nil, fmt.Errorf("%w: entry capacity %d", ErrInvalidCapacity, entryCapacity)
	}
	return &Buffer[F]{
		arena: make([]byte, byteCapacity),
		ring:  make([]entry[F], entryCapacity),
	}, nil
}

// Count returns the number of currently retained records.
func (b *Buffer[F]) Count() int { return b.count }

// Bytes returns the total payload size of currently retained records.
// It is always <= ByteCapacity.
func (b *Buffer[F]) Bytes() int { return b.live }

// ByteCapacity returns the arena size in bytes.
//
// Due to tail-skip fragmentation the free payload space at any moment may be
// less than ByteCapacity() - Bytes().
func (b *Buffer[F]) ByteCapacity() int { return len(b.arena) }

// EntryCapacity returns the maximum number of retained records.
func (b *Buffer[F]) EntryCapacity() int { return len(b.ring) }

// Inserted returns the total number of successful inserts over the buffer's
// lifetime, which is also the global index the next Insert will assign.
// Rejected inserts do not advance it.
func (b *Buffer[F]) Inserted() uint64 { return b.next }

// OldestIndex returns the global index of the oldest retained record.
// ok is false when the buffer is empty.
func (b *Buffer[F]) OldestIndex() (index uint64, ok bool) {
	if b.count == 0 {
		return 0, false
	}
	return b.ring[b.head].index, true
}

// NewestIndex returns the global index of the most recently inserted record.
// ok is false when the buffer is empty.
func (b *Buffer[F]) NewestIndex() (index uint64, ok bool) {
	if b.count == 0 {
		return 0, false
	}
	return b.ring[(b.head+b.count-1)%len(b.ring)].index, true
}
