package simkernel

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Simulator is the discrete-event driver. It owns the RNG, the
// pending-event set, the event pool, and the station network for the
// lifetime of one run; nothing here is shared across concurrent
// Simulators — each run is single-threaded and non-cooperative.
type Simulator struct {
	Seed        int64
	RNG         *PartitionedRNG
	CurrentTime float64
	FinalTime   float64

	InitialClients int
	Network        *Network

	Pending *PendingSet
	Pool    *Pool
}

// NewSimulator creates a driver seeded with seed. Call Init before Exec.
func NewSimulator(seed int64) *Simulator {
	return &Simulator{
		Seed:    seed,
		RNG:     NewPartitionedRNG(seed),
		Pending: NewPendingSet(),
		Pool:    NewPool(),
	}
}

// Init wires a parsed Network into the driver: it distributes
// initialClients round-robin over the stations starting at index 0, then
// seeds one ExternalArrival per External station.
func (s *Simulator) Init(net *Network, finalTime float64, initialClients int) error {
	if finalTime < 0 {
		return &DomainError{Msg: "final_time must be >= 0"}
	}
	if net == nil || net.NumStations() == 0 {
		return &DomainError{Msg: "network must have at least one station"}
	}

	s.Network = net
	s.FinalTime = finalTime
	s.InitialClients = initialClients
	s.CurrentTime = 0

	n := net.NumStations()
	idx := 0
	for c := 0; c < initialClients; c++ {
		st := net.Stations[idx]
		st.IncQueue()
		st.Stats.InitQueue++
		st.Stats.Arrived++
		idx++
		if idx == n {
			idx = 0
		}
	}

	for i, st := range net.Stations {
		if st.Kind != External {
			continue
		}
		ev := s.Pool.Acquire(ExternalArrival)
		ev.Station = i
		ev.Time = Exp(s.RNG.ForStation(i), st.MeanInterarrival)
		s.Pending.Insert(ev)
		logrus.Debugf("seeded ExternalArrival for station %q at t=%.6f", st.Label, ev.Time)
	}

	return nil
}

// Exec runs the main loop until simulation time passes FinalTime, then
// performs the end-of-run statistics fixup for the tail interval
// [CurrentTime, FinalTime) against each station's final occupancy. Any
// invariant violation inside a transition surfaces as a panic carrying
// *UnderflowError — the kernel never recovers one itself.
func (s *Simulator) Exec() {
	e := s.Pending.PopEarliest()
	if e != nil {
		s.CurrentTime = e.Time
		for s.CurrentTime < s.FinalTime {
			s.fire(e)
			e = s.Pending.PopEarliest()
			if e == nil {
				break
			}
			s.CurrentTime = e.Time
		}
		if e != nil {
			s.Pool.Release(e)
		}
	}

	s.Pending.Clear(s.Pool)

	for _, st := range s.Network.Stations {
		st.finalizeTail(s.CurrentTime, s.FinalTime)
	}

	logrus.Infof("simulation complete: seed=%d final_time=%.2f stopped_at=%.2f",
		s.Seed, s.FinalTime, s.CurrentTime)
}

// fire dispatches e to the transition matching its Kind. Every variant
// runs the shared base transition first, then its own epilogue.
func (s *Simulator) fire(e *Event) {
	st := s.Network.Stations[e.Station]
	s.baseTransition(st, e.Time)

	switch e.Kind {
	case ExternalArrival:
		s.arrival(e, st)
		rng := s.RNG.ForStation(e.Station)
		e.Time = e.Time + Exp(rng, st.MeanInterarrival)
		s.Pending.Insert(e)
	case InternalArrival:
		s.arrival(e, st)
		s.Pool.Release(e)
	case Walkout:
		s.walkout(e, st)
	default:
		panic(fmt.Sprintf("simkernel: unknown event kind %v", e.Kind))
	}
}

// baseTransition accounts the interval since the station's last recorded
// event against the queue-wait and server-occupancy integrals. Runs
// before every variant's own transition.
func (s *Simulator) baseTransition(st *Station, currentTime float64) {
	dt := currentTime - st.Stats.PrevEventTime
	st.Stats.TotalWaitTime += float64(st.QueueLen) * dt
	st.Stats.PondUse += float64(st.InService) * dt
}

// arrival implements the transition shared by ExternalArrival and
// InternalArrival: admit to service if a slot is free, scheduling its
// completion; otherwise join the queue.
func (s *Simulator) arrival(e *Event, st *Station) {
	st.Stats.Arrived++
	if st.IsFull() {
		st.IncQueue()
	} else {
		if st.InService == 0 {
			st.Stats.EmptyTime += e.Time - st.Stats.PrevEventTime
		}
		rng := s.RNG.ForStation(e.Station)
		wo := s.Pool.Acquire(Walkout)
		wo.Station = e.Station
		wo.Time = e.Time + Exp(rng, st.MeanService)
		s.Pending.Insert(wo)
		st.IncUse()
	}
	st.Stats.PrevEventTime = e.Time
}

// walkout implements the service-completion transition: route the
// departing item, then either pull the next queued item into service
// (recycling this same record) or free the server slot.
func (s *Simulator) walkout(e *Event, st *Station) {
	now := e.Time
	rng := s.RNG.ForStation(e.Station)
	u := rng.Float64()
	if target, ok := st.PickTarget(u); ok {
		ia := s.Pool.Acquire(InternalArrival)
		ia.Station = target
		ia.Time = now
		s.Pending.Insert(ia)
	}

	st.Stats.Served++
	if st.QueueLen > 0 {
		st.DecQueue()
		e.Time = now + Exp(rng, st.MeanService)
		s.Pending.Insert(e)
	} else {
		st.DecUse()
		s.Pool.Release(e)
	}
	st.Stats.PrevEventTime = now
}
