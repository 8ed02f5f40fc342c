// Package netfile parses the whitespace-delimited network-description
// format into plain data — it has no dependency on the simulation
// kernel. The caller (cmd) is responsible for turning a *Description
// into a simkernel.Network.
package netfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Kind mirrors the file format's integer station kind (0=External,
// 1=Internal), kept distinct from simkernel.StationKind so this package
// stays free of a simkernel import.
type Kind int

const (
	KindExternal Kind = 0
	KindInternal Kind = 1
)

// StationSpec is one parsed station line.
type StationSpec struct {
	Label            string
	Kind             Kind
	MeanInterarrival float64 // present iff Kind == KindExternal
	MeanService      float64
	Capacity         int
}

// ArcSpec is one parsed routing arc line.
type ArcSpec struct {
	Source      int
	Target      int
	Probability float64
}

// Description is the fully parsed contents of a network-description file.
type Description struct {
	FinalTime      float64
	InitialClients int
	Stations       []StationSpec
	Arcs           []ArcSpec
}

// Parse reads and parses the network-description file at path.
func Parse(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IoError{Path: path, Err: err}
	}
	defer f.Close()
	return ParseReader(f, path)
}

// ParseReader parses a network description from r. name is used only to
// annotate error messages (typically the source file path).
func ParseReader(r io.Reader, name string) (*Description, error) {
	toks := newTokenizer(r)

	finalTime, err := toks.nextFloat()
	if err != nil {
		return nil, wrapFormat(name, toks.line, "final_time", err)
	}
	initialClients, err := toks.nextInt()
	if err != nil {
		return nil, wrapFormat(name, toks.line, "initial_clients", err)
	}

	numStations, err := toks.nextInt()
	if err != nil {
		return nil, wrapFormat(name, toks.line, "num_stations", err)
	}
	if numStations < 0 {
		return nil, &DomainError{Msg: "num_stations must be >= 0"}
	}

	stations := make([]StationSpec, 0, numStations)
	for i := 0; i < numStations; i++ {
		label, err := toks.nextToken()
		if err != nil {
			return nil, wrapFormat(name, toks.line, fmt.Sprintf("station %d label", i), err)
		}
		kindInt, err := toks.nextInt()
		if err != nil {
			return nil, wrapFormat(name, toks.line, fmt.Sprintf("station %d kind", i), err)
		}
		if kindInt != int(KindExternal) && kindInt != int(KindInternal) {
			return nil, &DomainError{Msg: fmt.Sprintf("station %d: kind must be 0 or 1, got %d", i, kindInt)}
		}
		kind := Kind(kindInt)

		var meanInterarrival float64
		if kind == KindExternal {
			meanInterarrival, err = toks.nextFloat()
			if err != nil {
				return nil, wrapFormat(name, toks.line, fmt.Sprintf("station %d mean_interarrival", i), err)
			}
			if meanInterarrival <= 0 {
				return nil, &DomainError{Msg: fmt.Sprintf("station %d: mean_interarrival must be > 0", i)}
			}
		}

		meanService, err := toks.nextFloat()
		if err != nil {
			return nil, wrapFormat(name, toks.line, fmt.Sprintf("station %d mean_service", i), err)
		}
		if meanService <= 0 {
			return nil, &DomainError{Msg: fmt.Sprintf("station %d: mean_service must be > 0", i)}
		}

		capacity, err := toks.nextInt()
		if err != nil {
			return nil, wrapFormat(name, toks.line, fmt.Sprintf("station %d capacity", i), err)
		}
		if capacity <= 0 {
			return nil, &DomainError{Msg: fmt.Sprintf("station %d: capacity must be > 0", i)}
		}

		stations = append(stations, StationSpec{
			Label:            label,
			Kind:             kind,
			MeanInterarrival: meanInterarrival,
			MeanService:      meanService,
			Capacity:         capacity,
		})
	}

	numArcs, err := toks.nextInt()
	if err != nil {
		return nil, wrapFormat(name, toks.line, "num_arcs", err)
	}
	if numArcs < 0 {
		return nil, &DomainError{Msg: "num_arcs must be >= 0"}
	}

	outgoing := make([]float64, numStations)
	arcs := make([]ArcSpec, 0, numArcs)
	for i := 0; i < numArcs; i++ {
		source, err := toks.nextInt()
		if err != nil {
			return nil, wrapFormat(name, toks.line, fmt.Sprintf("arc %d source", i), err)
		}
		target, err := toks.nextInt()
		if err != nil {
			return nil, wrapFormat(name, toks.line, fmt.Sprintf("arc %d target", i), err)
		}
		if source < 0 || source >= numStations || target < 0 || target >= numStations {
			return nil, &DomainError{Msg: fmt.Sprintf("arc %d: source/target index out of range [0, %d)", i, numStations)}
		}
		probability, err := toks.nextFloat()
		if err != nil {
			return nil, wrapFormat(name, toks.line, fmt.Sprintf("arc %d probability", i), err)
		}
		if probability < 0 || probability > 1 {
			return nil, &DomainError{Msg: fmt.Sprintf("arc %d: probability must be in [0, 1]", i)}
		}

		outgoing[source] += probability
		if outgoing[source] > 1.0000001 {
			return nil, &DomainError{Msg: fmt.Sprintf("station %d: outgoing arc probabilities sum to %.6f, must be <= 1.0", source, outgoing[source])}
		}

		arcs = append(arcs, ArcSpec{Source: source, Target: target, Probability: probability})
	}

	return &Description{
		FinalTime:      finalTime,
		InitialClients: initialClients,
		Stations:       stations,
		Arcs:           arcs,
	}, nil
}

// tokenizer extracts whitespace-delimited tokens across lines, tracking
// the most recently consumed line number for error messages. Blank lines
// are simply skipped.
type tokenizer struct {
	scanner *bufio.Scanner
	fields  []string
	line    int
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{scanner: bufio.NewScanner(r)}
}

func (t *tokenizer) nextToken() (string, error) {
	for len(t.fields) == 0 {
		if !t.scanner.Scan() {
			if err := t.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		t.line++
		t.fields = strings.Fields(t.scanner.Text())
	}
	tok := t.fields[0]
	t.fields = t.fields[1:]
	return tok, nil
}

func (t *tokenizer) nextInt() (int, error) {
	tok, err := t.nextToken()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

func (t *tokenizer) nextFloat() (float64, error) {
	tok, err := t.nextToken()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(tok, 64)
}

func wrapFormat(name string, line int, field string, err error) error {
	return &FormatError{Line: line, Msg: fmt.Sprintf("%s: %s: %v", name, field, err)}
}
