// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package pool provides a typed wrapper around [sync.Pool] for values that are
// reset before being handed back.
package pool

import "sync"

// Resetter is implemented by pooled values. Reset must drop any references the
// value holds so that nothing leaks between borrowers.
type Resetter interface {
	Reset()
}

// Pool hands out *T values. The zero value is ready to use; a fresh T is
// allocated when the pool is empty.
type Pool[T any, PT interface {
	*T
	Resetter
}] struct {
	entries sync.Pool
}

// Get borrows a value from the pool.
func (p *Pool[T, PT]) Get() PT {
	if v, ok := p.entries.Get().(PT); ok {
		return v
	}
	return PT(new(T))
}

// Put resets v and returns it to the pool. Nil values are ignored.
func (p *Pool[T, PT]) Put(v PT) {
	if v == nil {
		return
	}
	v.Reset()
	p.entries.Put(v)
}
