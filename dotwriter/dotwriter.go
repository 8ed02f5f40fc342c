// Package dotwriter renders a simkernel.Network as a Graphviz DOT digraph:
// one vertex per station labelled with kind, capacity, service time and
// (External only) interarrival time, one edge per arc labelled with its
// probability. Shape conventions: box for External stations, ellipse for
// Internal.
package dotwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/R3mmurd/Resources-Simulator/internal/simkernel"
)

// Write renders net as a DOT digraph to w.
func Write(w io.Writer, net *simkernel.Network) error {
	var b strings.Builder

	b.WriteString("digraph {\n")
	b.WriteString("  rankdir = LR;\n\n")
	b.WriteString("  // Stations\n")

	for i, st := range net.Stations {
		shape := "ellipse"
		interarrival := ""
		if st.Kind == simkernel.External {
			shape = "box"
			interarrival = fmt.Sprintf("\\nInterarrival: %.4f", st.MeanInterarrival)
		}
		fmt.Fprintf(&b, "  %d [shape=%s, label=\"%s\\nType: %s%s\\nService: %.4f\\nCapacity: %d\"];\n",
			i, shape, escape(st.Label), st.Kind, interarrival, st.MeanService, st.Capacity)
	}

	b.WriteString("\n  // Arcs\n")
	for i, st := range net.Stations {
		for _, t := range st.Targets {
			fmt.Fprintf(&b, "  %d -> %d [label=\"p = %.4f\"];\n", i, t.Station, t.Probability)
		}
	}

	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}
