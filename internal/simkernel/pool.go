package simkernel

// Pool recycles Event records by kind so a long run's steady-state path
// performs no allocations: once warmed, Acquire/Release only push and pop
// a per-kind free list.
type Pool struct {
	free map[Kind][]*Event
}

// NewPool returns an empty pool; all three free lists start empty and are
// populated lazily as events are released back into it.
func NewPool() *Pool {
	return &Pool{free: make(map[Kind][]*Event, 3)}
}

// Acquire returns an idle record of the given kind, reusing one from the
// free list if available, else allocating a fresh one.
func (p *Pool) Acquire(kind Kind) *Event {
	list := p.free[kind]
	if len(list) == 0 {
		return &Event{Kind: kind}
	}
	n := len(list) - 1
	e := list[n]
	p.free[kind] = list[:n]
	return e
}

// Release returns a record to its kind's free list. The caller must not
// hold any other reference to e after this call — it may be handed back
// out by a subsequent Acquire at any time.
func (p *Pool) Release(e *Event) {
	e.Time = 0
	e.Station = 0
	p.free[e.Kind] = append(p.free[e.Kind], e)
}
