package simkernel

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Report renders the end-of-run statistics block: the seed, the final
// time, and per-station counters plus the derived rates (average wait,
// average queue length, average occupation). It then appends a
// cross-station summary — the mean and standard deviation of per-station
// average occupation — computed with gonum/stat, supplementing rather
// than replacing the raw per-station accumulators.
func (s *Simulator) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "seed=%d final_time=%.6f\n", s.Seed, s.FinalTime)

	occupations := make([]float64, 0, s.Network.NumStations())
	for _, st := range s.Network.Stations {
		avgWait := safeDiv(st.Stats.TotalWaitTime, float64(st.Stats.Arrived))
		avgQueueLen := safeDiv(st.Stats.TotalWaitTime, s.FinalTime)
		avgOccupation := safeDiv(st.Stats.PondUse, s.FinalTime)
		occupations = append(occupations, avgOccupation)

		fmt.Fprintf(&b, "station=%q kind=%s arrived=%d served=%d in_service=%d queue_len=%d "+
			"max_queue=%d init_queue=%d avg_wait=%.6f avg_queue_len=%.6f empty_time=%.6f avg_occupation=%.6f\n",
			st.Label, st.Kind, st.Stats.Arrived, st.Stats.Served, st.InService, st.QueueLen,
			st.Stats.MaxQueue, st.Stats.InitQueue, avgWait, avgQueueLen, st.Stats.EmptyTime, avgOccupation)
	}

	if len(occupations) > 0 {
		mean := stat.Mean(occupations, nil)
		stddev := stat.StdDev(occupations, nil)
		fmt.Fprintf(&b, "summary: mean_occupation=%.6f stddev_occupation=%.6f across %d stations\n",
			mean, stddev, len(occupations))
	}

	return b.String()
}

func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
