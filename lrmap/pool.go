package lrmap

import "sync"

// Pool is the Go rendering of "a per-thread reader handle that lazily
// constructs and caches a Reader bound to the calling thread": it backs a
// sync.Pool with this map's ReaderFactory, so that WithReader always hands
// its callback a Reader no other goroutine is using at that moment.
//
// Unlike a literal thread-local, a Pool does not keep one Reader per
// goroutine forever — sync.Pool may create many Readers under concurrent
// load and may also let the garbage collector reclaim idle ones. Every
// Reader a Pool ever creates stays registered in the underlying
// leftright primitive for its lifetime regardless (leftright's I5), so
// Pool does not fully avoid the "registry grows with churn" tradeoff the
// original design calls out — it only avoids creating a brand new Reader,
// and therefore a brand new permanent registry entry, on every single
// call. Callers with a small, stable set of long-lived goroutines should
// prefer explicit Reader handles from ReaderFactory instead.
type Pool[K comparable, V any] struct {
	pool sync.Pool
}

// NewPool builds a Pool that lazily mints Readers from rf.
func NewPool[K comparable, V any](rf *ReaderFactory[K, V]) *Pool[K, V] {
	p := &Pool[K, V]{}
	p.pool.New = func() any { return rf.CreateReader() }
	return p
}

// WithReader checks out a Reader (creating one on a pool miss), runs fn
// with it, and returns it to the pool. fn must not retain the Reader past
// the call, matching the no-reentrancy rule leftright.PerformRead already
// imposes on its own closure.
func (p *Pool[K, V]) WithReader(fn func(*Reader[K, V])) {
	r := p.pool.Get().(*Reader[K, V])
	defer p.pool.Put(r)
	fn(r)
}
