package leftright

import "sync/atomic"

// ReaderFactory mints Readers and registers them into the shared registry a
// Writer snapshots during refresh. It is safe to call CreateReader from any
// goroutine, at any time, including concurrently with a Refresh.
type ReaderFactory[C any] struct {
	pub *atomic.Pointer[C]
	reg *registry[C]
}

// CreateReader returns a new Reader bound to this primitive's publication
// pointer, registered into the shared reader set. Once registered, a
// Reader is tracked for the lifetime of the primitive (there is no
// deregistration): refresh's drain cost is therefore proportional to the
// number of readers ever created, not the number currently live. Callers
// whose goroutine population churns heavily should prefer lrmap.Pool
// (sync.Pool-backed reuse) over minting a fresh Reader per goroutine.
func (f *ReaderFactory[C]) CreateReader() *Reader[C] {
	r := &Reader[C]{pub: f.pub}

	f.reg.mu.Lock()
	f.reg.readers = append(f.reg.readers, r)
	f.reg.mu.Unlock()

	return r
}

// ReaderCount reports how many Readers this factory has ever registered.
// Since readers are never deregistered, this is a monotonically
// increasing count of readers created, not readers currently live.
func (f *ReaderFactory[C]) ReaderCount() int {
	f.reg.mu.Lock()
	defer f.reg.mu.Unlock()
	return len(f.reg.readers)
}
