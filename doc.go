// Package linebuffer implements a bounded, append-only buffer for
// variable-length byte records.
//
// # Overview
//
// A Buffer retains the most recent records under two independent bounds: a
// maximum record count and a maximum total payload size. Records are stored
// in a single preallocated byte arena addressed circularly, with per-record
// metadata kept in a fixed-size ring. Every successfully inserted record is
// assigned a globally increasing uint64 index that is never reused, so a
// caller can refer to "record N" even after older records have been evicted.
//
// The canonical use is capturing the recent output lines of a running
// process without unbounded memory growth. The buffer itself only knows
// about byte records; splitting a stream into lines is the caller's job.
//
// # API surface
//
//	// 64 KiB of payload across at most 2048 records, tagged with a time.
//	buf, _ := linebuffer.New[time.Time](64<<10, 2048)
//
//	// Insert returns the record's global index.
//	idx, err := buf.Insert([]byte("some line"), time.Now())
//
//	// Get returns the payload and a pointer to the stored flag, or
//	// ok == false once the record has been evicted.
//	data, flag, ok := buf.Get(idx)
//	_, _, _ = data, flag, ok
//
//	// Iterate the retained records, oldest to newest.
//	for rec := range buf.Records() {
//	    _ = rec.Index
//	}
//
// Insert never allocates on the hot path and never blocks; eviction of the
// oldest records happens synchronously inside Insert whenever admitting the
// new record would violate a bound or overwrite live bytes.
//
// # Sharing and reference validity
//
// The buffer performs no internal locking. Callers sharing a Buffer across
// goroutines must serialize all access externally. Byte slices and flag
// pointers returned by Get and Records alias the buffer's internal storage
// and are valid only until the next call to Insert on the same buffer.
package linebuffer
