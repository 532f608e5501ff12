// SPDX-License-Identifier: MIT
// Package: qubitmap/internal/document
//
// document.go — YAML job documents: a device and a circuit.
//
// Example:
//
//	device:
//	  kind: ring
//	  qubits: 4
//	  groups: 2
//	circuit:
//	  qubits: 3
//	  clbits: 3
//	  ops:
//	    - {gate: h, qubits: [0]}
//	    - {gate: cx, qubits: [0, 2]}
//	    - {gate: rz, qubits: [1], params: [0.5]}
//	    - {gate: barrier}
//	    - {gate: measure, qubits: [0], clbits: [0]}

// Package document decodes the YAML job files read by qroute.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qubitmap/circuit"
	"github.com/katalvlaran/qubitmap/coupling"
	"github.com/katalvlaran/qubitmap/topology"
)

// Device kinds understood by Device.Constructor.
const (
	KindLine   = "line"
	KindRing   = "ring"
	KindGrid   = "grid"
	KindFull   = "full"
	KindStar   = "star"
	KindTShape = "tshape"
)

// Sentinel errors for document decoding.
var (
	// ErrInvalid is returned when a document fails validation.
	ErrInvalid = errors.New("document: invalid document")

	// ErrUnknownKind is returned for a device kind outside the Kind* set.
	ErrUnknownKind = errors.New("document: unknown device kind")
)

var validate = validator.New()

// Document is one routing job.
type Document struct {
	Device  Device  `yaml:"device"`
	Circuit Circuit `yaml:"circuit"`
}

// Device describes a device either by a named layout or by an explicit edge list.
type Device struct {
	// Kind names a layout; empty means Edges.
	Kind string `yaml:"kind,omitempty" validate:"omitempty,oneof=line ring grid full star tshape"`

	// Qubits sizes line, ring, full and star layouts.
	Qubits int `yaml:"qubits,omitempty" validate:"gte=0"`

	// Rows and Cols size a grid.
	Rows int `yaml:"rows,omitempty" validate:"gte=0"`
	Cols int `yaml:"cols,omitempty" validate:"gte=0"`

	// Groups > 1 chains that many copies, bridged Link apart (default 1).
	Groups int `yaml:"groups,omitempty" validate:"gte=0"`
	Link   int `yaml:"link,omitempty" validate:"gte=0"`

	// Size and Edges describe an explicit device.
	Size  int     `yaml:"size,omitempty" validate:"gte=0"`
	Edges [][]int `yaml:"edges,omitempty" validate:"dive,len=2,dive,gte=0"`
}

// Circuit is the YAML form of a circuit over one register pair.
type Circuit struct {
	Qubits int  `yaml:"qubits" validate:"gte=0"`
	Clbits int  `yaml:"clbits,omitempty" validate:"gte=0"`
	Ops    []Op `yaml:"ops" validate:"dive"`
}

// Op is one instruction. Kind follows from Gate and the qubit count:
// "measure" and "barrier" are special, otherwise one qubit is a single-qubit
// gate and two qubits a two-qubit gate.
type Op struct {
	Gate   string    `yaml:"gate" validate:"required"`
	Qubits []int     `yaml:"qubits,omitempty" validate:"dive,gte=0"`
	Clbits []int     `yaml:"clbits,omitempty" validate:"dive,gte=0"`
	Params []float64 `yaml:"params,omitempty"`
}

// Decode reads and validates one document.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("document: decode: %w", err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return &doc, nil
}

// Load opens and decodes the file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Constructor returns the topology constructor for a named device.
func (d Device) Constructor() (topology.Constructor, error) {
	var unit topology.Constructor
	switch d.Kind {
	case KindLine:
		unit = topology.Line(d.Qubits)
	case KindRing:
		unit = topology.Ring(d.Qubits)
	case KindGrid:
		unit = topology.Grid(d.Rows, d.Cols)
	case KindFull:
		unit = topology.Full(d.Qubits)
	case KindStar:
		unit = topology.Star(d.Qubits)
	case KindTShape:
		unit = topology.TShape()
	default:
		return nil, fmt.Errorf("Constructor: %q: %w", d.Kind, ErrUnknownKind)
	}
	if d.Groups <= 1 {
		return unit, nil
	}
	link := d.Link
	if link == 0 {
		link = 1
	}

	return topology.Distributed(d.Groups, link, unit), nil
}

// Build returns the device's coupling map: FromEdges over Edges when Kind is
// empty, topology.Build over Constructor otherwise.
//
// Errors: ErrUnknownKind, or the coupling and topology errors wrapped as
// "Build: %w".
func (d Device) Build() (*coupling.Map, error) {
	if d.Kind == "" {
		edges := make([]coupling.Edge, len(d.Edges))
		for i, e := range d.Edges {
			edges[i] = coupling.Edge{A: e[0], B: e[1]}
		}
		cm, err := coupling.FromEdges(d.Size, edges)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		return cm, nil
	}

	cons, err := d.Constructor()
	if err != nil {
		return nil, err
	}
	cm, err := topology.Build(cons)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return cm, nil
}

// Build converts the document form into a validated circuit.
func (c Circuit) Build() (*circuit.Circuit, error) {
	out, err := circuit.New(c.Qubits, c.Clbits)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for i, op := range c.Ops {
		if err = out.Append(op.operation(c.Qubits)); err != nil {
			return nil, fmt.Errorf("Build: op %d: %w", i, err)
		}
	}

	return out, nil
}

func (o Op) operation(numQubits int) circuit.Operation {
	op := circuit.Operation{Name: o.Gate, Qubits: o.Qubits, Clbits: o.Clbits, Params: o.Params}
	switch {
	case o.Gate == circuit.NameMeasure:
		op.Kind = circuit.KindMeasure
	case o.Gate == circuit.NameBarrier:
		op.Kind = circuit.KindBarrier
		if len(op.Qubits) == 0 {
			op.Qubits = make([]int, numQubits)
			for q := range op.Qubits {
				op.Qubits[q] = q
			}
		}
	case len(o.Qubits) == 2:
		op.Kind = circuit.KindTwo
	default:
		// wrong arities surface as circuit.ErrArity
		op.Kind = circuit.KindSingle
	}

	return op
}

// FromCircuit returns the document form of c; registers collapse to their totals.
func FromCircuit(c *circuit.Circuit) Circuit {
	out := Circuit{Qubits: c.NumQubits(), Clbits: c.NumClbits(), Ops: make([]Op, len(c.Ops))}
	for i, op := range c.Ops {
		out.Ops[i] = Op{Gate: op.Name, Qubits: op.Qubits, Clbits: op.Clbits, Params: op.Params}
	}

	return out
}

// Encode writes doc as YAML.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("document: encode: %w", err)
	}

	return enc.Close()
}
