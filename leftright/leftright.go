// Package leftright implements the left-right concurrency primitive: two
// copies of a container, a single writer, and any number of wait-free
// readers.
//
// https://www.youtube.com/watch?v=eLNAMEoKAAc
package leftright

import (
	"sync"
	"sync/atomic"
)

// registry is the shared, mutex-guarded set of readers a ReaderFactory
// registers into and a Writer snapshots during refresh. It is never
// accessed directly by callers; ReaderFactory and Writer each hold a
// pointer to the same registry so that reader creation and refresh
// synchronize with each other.
type registry[C any] struct {
	mu      sync.Mutex
	readers []*Reader[C]
}

// Create builds a left-right primitive over a container of type C. factory
// is invoked exactly twice, to produce the two independently-allocated
// copies; it must return an empty/zero-value container each time.
//
// The returned ReaderFactory can mint any number of Readers from any
// goroutine, concurrently with each other and with the Writer. The
// returned Writer is not safe for concurrent use and must be owned by a
// single goroutine (or otherwise externally serialized).
func Create[C any](factory func() C) (*ReaderFactory[C], *Writer[C]) {
	readerCopy := new(C)
	*readerCopy = factory()

	writeCopy := new(C)
	*writeCopy = factory()

	pub := &atomic.Pointer[C]{}
	pub.Store(readerCopy)

	reg := &registry[C]{}

	rf := &ReaderFactory[C]{pub: pub, reg: reg}
	w := &Writer[C]{
		pub:        pub,
		reg:        reg,
		readerCopy: readerCopy,
		writeCopy:  writeCopy,
	}

	return rf, w
}
