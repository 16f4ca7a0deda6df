// internal/entity/pool.go
package entity

import (
	"fmt"
	"iter"
)

// Entity is the lifecycle flag every pooled record carries.
type Entity interface {
	IsAlive() bool
	SetAlive(alive bool)
}

// Pool is a fixed-capacity array of records. Live records always occupy
// indices [0, Len()); the rest of the storage is dead and never read.
//
// Kill moves the last live record into the freed slot, so an index is only
// meaningful until the next Kill on the same pool.
type Pool[T any, P interface {
	*T
	Entity
}] struct {
	items []T
	count int
}

// NewPool allocates storage for capacity records up front.
func NewPool[T any, P interface {
	*T
	Entity
}](capacity int) *Pool[T, P] {
	return &Pool[T, P]{items: make([]T, capacity)}
}

func (p *Pool[T, P]) Len() int   { return p.count }
func (p *Pool[T, P]) Cap() int   { return len(p.items) }
func (p *Pool[T, P]) Full() bool { return p.count >= len(p.items) }

// Spawn writes a fresh record at the end of the live range, runs init on it
// and marks it alive. A full pool is left untouched and reports ok=false;
// callers treat that as a skipped spawn, not a failure.
func (p *Pool[T, P]) Spawn(init func(P)) (index int, ok bool) {
	if p.Full() {
		return -1, false
	}
	index = p.count
	var zero T
	p.items[index] = zero
	e := P(&p.items[index])
	if init != nil {
		init(e)
	}
	e.SetAlive(true)
	p.count++
	return index, true
}

// At returns the live record at index i.
func (p *Pool[T, P]) At(i int) P {
	if i < 0 || i >= p.count {
		violated("read index %d outside live range [0, %d)", i, p.count)
		return nil
	}
	return P(&p.items[i])
}

// Kill marks the record at i dead and swaps the last live record into i.
func (p *Pool[T, P]) Kill(i int) {
	if i < 0 || i >= p.count {
		violated("kill index %d outside live range [0, %d)", i, p.count)
		return
	}
	P(&p.items[i]).SetAlive(false)
	last := p.count - 1
	if i != last {
		p.items[i], p.items[last] = p.items[last], p.items[i]
	}
	p.count--
}

// Sweep calls update on every live record. A record for which update
// returns false, or which marked itself dead, is killed and its slot is
// visited again because it now holds the record swapped in from the end.
func (p *Pool[T, P]) Sweep(update func(P) bool) {
	for i := 0; i < p.count; {
		e := P(&p.items[i])
		if update(e) && e.IsAlive() {
			i++
			continue
		}
		p.Kill(i)
	}
}

// All iterates the live records in storage order. The body must not kill.
func (p *Pool[T, P]) All() iter.Seq2[int, P] {
	return func(yield func(int, P) bool) {
		for i := 0; i < p.count; i++ {
			if !yield(i, P(&p.items[i])) {
				return
			}
		}
	}
}

// Reset kills every record without releasing storage.
func (p *Pool[T, P]) Reset() {
	for i := range p.items {
		P(&p.items[i]).SetAlive(false)
	}
	p.count = 0
}

// Check verifies the live-range invariant.
func (p *Pool[T, P]) Check() error {
	if p.count < 0 || p.count > len(p.items) {
		return fmt.Errorf("entity: live count %d outside [0, %d]", p.count, len(p.items))
	}
	for i := 0; i < p.count; i++ {
		if !P(&p.items[i]).IsAlive() {
			return fmt.Errorf("entity: dead record at live index %d", i)
		}
	}
	return nil
}
