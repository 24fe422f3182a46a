package ehh

import "sync/atomic"

// Progress is told how many loci have been finished. Implementations must be
// safe for concurrent use.
type Progress interface {
	Advance(n int)
}

// Counter is a Progress that only counts.
type Counter struct {
	n int64
}

func (c *Counter) Advance(n int) {
	atomic.AddInt64(&c.n, int64(n))
}

func (c *Counter) Count() int64 {
	return atomic.LoadInt64(&c.n)
}

type discardProgress struct{}

func (discardProgress) Advance(int) {}
