package simkernel

// Network is an ordered sequence of stations with stable indices for the
// duration of a run — events and routing arcs reference stations by
// index, never by pointer.
type Network struct {
	Stations []*Station
}

// NewNetwork wraps a slice of stations into a Network. The slice order
// becomes the stable 0-based index space every Target and Event refers to.
func NewNetwork(stations []*Station) *Network {
	return &Network{Stations: stations}
}

func (n *Network) NumStations() int {
	return len(n.Stations)
}
