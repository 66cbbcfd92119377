package core

import "sync/atomic"

// Counter is the shared population counter mutated by the count kernel. The
// host resets it to zero before each count dispatch; kernel invocations only
// increment it; consumers read a snapshot taken after the dispatch barrier.
// Linearizability of Inc across concurrent invocations is the only
// synchronization the kernels rely on.
type Counter struct {
	v atomic.Uint32
}

// Reset zeroes the counter. Host side only, never from a kernel.
func (c *Counter) Reset() { c.v.Store(0) }

// Inc atomically increments the counter by one.
func (c *Counter) Inc() { c.v.Add(1) }

// Value returns the current count.
func (c *Counter) Value() uint32 { return c.v.Load() }
