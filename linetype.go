package draft

import (
	"fmt"
	"math"
)

// Linetype defines the stroking pattern entities reference by name.
// Segments alternate pen-down and pen-up lengths: a positive segment is a
// dash, a negative segment is a gap, and zero is a dot. An empty segment
// list draws a continuous line.
//
// During normal use many entities share one *Linetype; cloning an entity
// gives the clone its own copy.
type Linetype struct {
	// Description is the human-readable sample text shown by editors,
	// e.g. "Dashed - - - -".
	Description string

	name     string
	segments []float64
}

// NewLinetype creates a linetype with the given name and pattern segments.
// The name must not be empty.
func NewLinetype(name string, segments ...float64) (*Linetype, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: linetype name", ErrNilValue)
	}
	return &Linetype{
		name:     name,
		segments: append([]float64(nil), segments...),
	}, nil
}

// Predefined linetypes. Each call returns a fresh instance so callers can
// never observe shared mutations through a predefined value.
func LinetypeContinuous() *Linetype {
	return &Linetype{name: "Continuous", Description: "Solid line"}
}

func LinetypeDashed() *Linetype {
	return &Linetype{
		name:        "Dashed",
		Description: "Dashed - - - - - - -",
		segments:    []float64{0.5, -0.25},
	}
}

func LinetypeDotted() *Linetype {
	return &Linetype{
		name:        "Dot",
		Description: "Dot . . . . . . . .",
		segments:    []float64{0, -0.25},
	}
}

func LinetypeDashDot() *Linetype {
	return &Linetype{
		name:        "Dashdot",
		Description: "Dash dot _ . _ . _ .",
		segments:    []float64{0.5, -0.25, 0, -0.25},
	}
}

func LinetypeCenter() *Linetype {
	return &Linetype{
		name:        "Center",
		Description: "Center ____ _ ____ _",
		segments:    []float64{1.25, -0.25, 0.25, -0.25},
	}
}

// Name returns the linetype name. Names identify table resources and are
// immutable here; renaming is a registry operation.
func (lt *Linetype) Name() string {
	return lt.name
}

// Segments returns a copy of the pattern segments.
func (lt *Linetype) Segments() []float64 {
	return append([]float64(nil), lt.segments...)
}

// PatternLength returns the total length of one pattern cycle, counting
// gaps by their magnitude.
func (lt *Linetype) PatternLength() float64 {
	var total float64
	for _, s := range lt.segments {
		total += math.Abs(s)
	}
	return total
}

// IsContinuous reports whether the linetype draws a solid line.
func (lt *Linetype) IsContinuous() bool {
	return len(lt.segments) == 0
}

// Clone creates a deep copy of the linetype.
func (lt *Linetype) Clone() *Linetype {
	return &Linetype{
		Description: lt.Description,
		name:        lt.name,
		segments:    append([]float64(nil), lt.segments...),
	}
}
