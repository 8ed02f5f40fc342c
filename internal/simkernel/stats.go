package simkernel

// Stats holds the plain accumulators maintained for a station across a
// run: counts, the queue-wait and server-occupancy integrals, and the
// timestamp bookkeeping used to compute the Δt fed into those integrals.
type Stats struct {
	Arrived       uint64
	Served        uint64
	TotalWaitTime float64
	PondUse       float64
	EmptyTime     float64
	PrevEventTime float64
	InitQueue     uint64
	MaxQueue      uint64
}

// finalizeTail accounts the tail interval [currentTime, finalTime) of a
// run against a station's final occupancy: spec.md §4.5's end-of-run
// fixup, applied once per station after the main loop stops because
// CurrentTime has passed FinalTime.
func (st *Station) finalizeTail(currentTime, finalTime float64) {
	delta := finalTime - currentTime
	if st.InService == 0 {
		st.Stats.EmptyTime += delta
	} else {
		st.Stats.PondUse += float64(st.InService) * delta
	}
	st.Stats.TotalWaitTime += float64(st.QueueLen) * delta
}
