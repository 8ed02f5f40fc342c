package simkernel

import "container/heap"

// PendingSet is the time-ordered pending-event multiset: a binary heap of
// *Event keyed by (Time, insertion sequence), giving O(log n)
// Insert/PopEarliest and a stable FIFO tie-break among events scheduled
// for the same Time rather than a priority ordering between event kinds.
type PendingSet struct {
	items   eventSlice
	nextSeq uint64
}

// NewPendingSet returns an empty pending-event set.
func NewPendingSet() *PendingSet {
	ps := &PendingSet{}
	heap.Init(&ps.items)
	return ps
}

// Insert places e so PopEarliest later returns it in non-decreasing Time
// order, tied events returned in the order they were Inserted.
func (ps *PendingSet) Insert(e *Event) {
	ps.nextSeq++
	e.seq = ps.nextSeq
	heap.Push(&ps.items, e)
}

// PopEarliest removes and returns the event with the smallest Time (ties
// broken by insertion order), or nil if the set is empty.
func (ps *PendingSet) PopEarliest() *Event {
	if len(ps.items) == 0 {
		return nil
	}
	return heap.Pop(&ps.items).(*Event)
}

// Empty reports whether the set has no pending events.
func (ps *PendingSet) Empty() bool {
	return len(ps.items) == 0
}

// Clear drains every remaining event and returns each one to pool.
func (ps *PendingSet) Clear(pool *Pool) {
	for len(ps.items) > 0 {
		e := heap.Pop(&ps.items).(*Event)
		pool.Release(e)
	}
}

// eventSlice implements container/heap.Interface over *Event.
type eventSlice []*Event

func (a eventSlice) Len() int { return len(a) }

func (a eventSlice) Less(i, j int) bool {
	if a[i].Time != a[j].Time {
		return a[i].Time < a[j].Time
	}
	return a[i].seq < a[j].seq
}

func (a eventSlice) Swap(i, j int) { a[i], a[j] = a[j], a[i] }

func (a *eventSlice) Push(x any) {
	*a = append(*a, x.(*Event))
}

func (a *eventSlice) Pop() any {
	old := *a
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*a = old[:n-1]
	return item
}
