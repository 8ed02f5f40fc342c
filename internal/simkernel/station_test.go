package simkernel

import "testing"

func TestStation_IsFull(t *testing.T) {
	st := NewStation("A", Internal, 0, 1.0, 2)
	if st.IsFull() {
		t.Fatal("fresh station should not be full")
	}
	st.IncUse()
	if st.IsFull() {
		t.Fatal("station with 1/2 capacity in use should not be full")
	}
	st.IncUse()
	if !st.IsFull() {
		t.Fatal("station with 2/2 capacity in use should be full")
	}
}

func TestStation_DecUse_UnderflowPanics(t *testing.T) {
	st := NewStation("A", Internal, 0, 1.0, 1)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on in_service underflow")
		}
		if _, ok := r.(*UnderflowError); !ok {
			t.Fatalf("expected *UnderflowError, got %T", r)
		}
	}()
	st.DecUse()
}

func TestStation_DecQueue_UnderflowPanics(t *testing.T) {
	st := NewStation("A", Internal, 0, 1.0, 1)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on queue_len underflow")
		}
		if _, ok := r.(*UnderflowError); !ok {
			t.Fatalf("expected *UnderflowError, got %T", r)
		}
	}()
	st.DecQueue()
}

func TestStation_IncQueue_TracksMaxQueue(t *testing.T) {
	st := NewStation("A", Internal, 0, 1.0, 1)
	st.IncQueue()
	st.IncQueue()
	st.DecQueue()
	if st.Stats.MaxQueue != 2 {
		t.Fatalf("max_queue = %d, want 2 (running max, not current)", st.Stats.MaxQueue)
	}
	if st.QueueLen != 1 {
		t.Fatalf("queue_len = %d, want 1", st.QueueLen)
	}
}

func TestStation_AddTarget_KeepsAscendingByProbability(t *testing.T) {
	st := NewStation("A", Internal, 0, 1.0, 1)
	st.AddTarget(2, 0.5)
	st.AddTarget(0, 0.1)
	st.AddTarget(1, 0.3)

	want := []int{0, 1, 2}
	for i, target := range st.Targets {
		if target.Station != want[i] {
			t.Errorf("Targets[%d].Station = %d, want %d", i, target.Station, want[i])
		}
	}
}

func TestStation_PickTarget_CumulativeSampler(t *testing.T) {
	st := NewStation("A", Internal, 0, 1.0, 1)
	st.AddTarget(0, 0.3) // [0, 0.3)
	st.AddTarget(1, 0.3) // [0.3, 0.6)
	// residual mass 0.4 -> drop

	cases := []struct {
		u       float64
		wantOK  bool
		wantTgt int
	}{
		{0.0, true, 0},
		{0.29, true, 0},
		{0.3, true, 1},
		{0.59, true, 1},
		{0.6, false, 0},
		{0.999, false, 0},
	}

	for _, c := range cases {
		tgt, ok := st.PickTarget(c.u)
		if ok != c.wantOK {
			t.Errorf("PickTarget(%.3f) ok = %v, want %v", c.u, ok, c.wantOK)
			continue
		}
		if ok && tgt != c.wantTgt {
			t.Errorf("PickTarget(%.3f) = %d, want %d", c.u, tgt, c.wantTgt)
		}
	}
}

func TestStation_PickTarget_NoTargetsAlwaysDrops(t *testing.T) {
	st := NewStation("A", Internal, 0, 1.0, 1)
	if _, ok := st.PickTarget(0.0); ok {
		t.Fatal("station with no outgoing arcs must always drop")
	}
}
