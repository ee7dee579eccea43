package draft

import "fmt"

// Layer groups entities and supplies the defaults entities resolve their
// by-layer color, lineweight, and transparency against.
//
// Entities hold layers by pointer, so several entities normally share one
// *Layer; Clone on an entity deep-copies the layer so the clone is
// independent.
type Layer struct {
	// Color is the color entities on this layer resolve ColorByLayer to.
	Color Color
	// Lineweight is the stroke width entities resolve LineweightByLayer to.
	Lineweight Lineweight
	// Transparency is resolved for entities using TransparencyByLayer.
	Transparency Transparency

	// Visible hides the layer's entities without discarding them.
	Visible bool
	// Frozen excludes the layer from regeneration and display.
	Frozen bool
	// Locked prevents edits to the layer's entities.
	Locked bool
	// Plot controls whether the layer's entities appear in plotted output.
	Plot bool

	name     string
	linetype *Linetype
}

// NewLayer creates a layer with the given name and default properties:
// white color, default lineweight, opaque, visible, plottable, with the
// continuous linetype. The name must not be empty.
func NewLayer(name string) (*Layer, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: layer name", ErrNilValue)
	}
	return &Layer{
		Color:        White,
		Lineweight:   LineweightDefault,
		Transparency: Transparency{},
		Visible:      true,
		Plot:         true,
		name:         name,
		linetype:     LinetypeContinuous(),
	}, nil
}

// DefaultLayer returns the layer "0" every drawing carries.
func DefaultLayer() *Layer {
	l, _ := NewLayer("0")
	return l
}

// Name returns the layer name. Names identify table resources and are
// immutable here; renaming is a registry operation.
func (l *Layer) Name() string {
	return l.name
}

// Linetype returns the layer's linetype.
func (l *Layer) Linetype() *Linetype {
	return l.linetype
}

// SetLinetype assigns the layer's linetype. A nil linetype is rejected.
func (l *Layer) SetLinetype(lt *Linetype) error {
	if lt == nil {
		return fmt.Errorf("%w: layer linetype", ErrNilValue)
	}
	l.linetype = lt
	return nil
}

// Clone creates a deep copy of the layer, including its linetype.
func (l *Layer) Clone() *Layer {
	c := *l
	c.linetype = l.linetype.Clone()
	return &c
}
