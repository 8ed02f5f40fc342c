package simkernel

import "testing"

func TestPool_AcquireWithoutReleaseAllocatesFresh(t *testing.T) {
	p := NewPool()
	e := p.Acquire(Walkout)
	if e == nil {
		t.Fatal("Acquire must never return nil")
	}
	if e.Kind != Walkout {
		t.Fatalf("Kind = %v, want Walkout", e.Kind)
	}
}

func TestPool_ReleaseThenAcquire_ReusesRecord(t *testing.T) {
	p := NewPool()
	e := p.Acquire(ExternalArrival)
	e.Time = 42
	e.Station = 7
	p.Release(e)

	reused := p.Acquire(ExternalArrival)
	if reused != e {
		t.Fatal("Acquire after Release should return the same pointer (LIFO reuse)")
	}
	if reused.Time != 0 || reused.Station != 0 {
		t.Fatalf("released record must be reset before reuse, got Time=%v Station=%v", reused.Time, reused.Station)
	}
}

func TestPool_FreeListsAreIndependentPerKind(t *testing.T) {
	p := NewPool()
	wo := p.Acquire(Walkout)
	p.Release(wo)

	// Acquiring a different kind must not be handed the Walkout record.
	ia := p.Acquire(InternalArrival)
	if ia == wo {
		t.Fatal("free lists must not cross kinds")
	}
	if ia.Kind != InternalArrival {
		t.Fatalf("Kind = %v, want InternalArrival", ia.Kind)
	}
}
