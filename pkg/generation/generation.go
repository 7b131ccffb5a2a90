// Package generation stamps requests with a monotonic sequence number so that a response
// belonging to a superseded request can be recognised when it arrives.
package generation

import "sync/atomic"

// Counter tracks the generations of one logical slot, such as the search suggestion list.
type Counter struct {
	current atomic.Uint64
}

// Next starts a new generation and returns its token. Earlier tokens become stale.
func (c *Counter) Next() uint64 {
	return c.current.Add(1)
}

// IsCurrent reports whether token belongs to the latest generation.
func (c *Counter) IsCurrent(token uint64) bool {
	return c.current.Load() == token
}
