package simkernel

// Kind tags which transition an Event fires: a tagged variant over a
// single record shape, dispatched with one function per kind rather than
// a virtual-method hierarchy.
type Kind int

const (
	ExternalArrival Kind = iota
	InternalArrival
	Walkout
)

func (k Kind) String() string {
	switch k {
	case ExternalArrival:
		return "ExternalArrival"
	case InternalArrival:
		return "InternalArrival"
	case Walkout:
		return "Walkout"
	default:
		return "Unknown"
	}
}

// Event is the uniform record shared by every variant. It carries no
// subtype-specific fields and no list-node pointer: the pending set holds
// events in a heap slice, and the pool holds them in per-kind slices, so
// neither container needs an embedded "next" link.
type Event struct {
	Time    float64
	Station int
	Kind    Kind

	// seq is assigned by PendingSet.Insert and breaks ties between events
	// scheduled for the same Time, in insertion order.
	seq uint64
}
