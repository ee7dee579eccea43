package draft

import "fmt"

// EntityType identifies the concrete kind of an Entity.
type EntityType int

const (
	// EntityLine is a straight segment between two points.
	EntityLine EntityType = iota
	// EntityFace3D is a three- or four-sided planar face.
	EntityFace3D
	// EntityImage is a raster image reference.
	EntityImage
	// EntityWipeout is a masking area that hides what lies beneath it.
	EntityWipeout
	// EntityPolyline2D is a planar polyline with per-vertex widths.
	EntityPolyline2D
	// EntityPolyfaceMesh is a mesh of faces indexing a shared vertex list.
	EntityPolyfaceMesh
)

// String returns the entity type name.
func (t EntityType) String() string {
	switch t {
	case EntityLine:
		return "Line"
	case EntityFace3D:
		return "Face3D"
	case EntityImage:
		return "Image"
	case EntityWipeout:
		return "Wipeout"
	case EntityPolyline2D:
		return "Polyline2D"
	case EntityPolyfaceMesh:
		return "PolyfaceMesh"
	default:
		return fmt.Sprintf("EntityType(%d)", int(t))
	}
}

// Entity is the behavior every drawing entity shares. Concrete entities
// embed Attributes and add their own geometry.
//
// Entities are not safe for concurrent mutation. To hand an entity to
// another goroutine, Clone it and transfer the copy.
type Entity interface {
	// Type returns the concrete entity kind.
	Type() EntityType
	// Attributes returns the entity's shared display attributes. The
	// pointer stays valid for the entity's lifetime; mutations through
	// it are visible immediately.
	Attributes() *Attributes
	// TransformBy applies the linear transformation m followed by the
	// translation to the entity's geometry in place.
	TransformBy(m Matrix3, translation Vector3)
	// Clone creates an independent deep copy of the entity.
	Clone() Entity
}

// BeforeChange is a hook invoked before a guarded field changes. It
// receives the current and the proposed value and returns the value to
// actually store, so a hook can veto by returning old or rewrite the
// proposal entirely. A nil hook stores the proposed value unchanged.
type BeforeChange[T any] func(old, proposed T) T

// apply runs the hook, passing the proposal through when the hook is nil.
func (h BeforeChange[T]) apply(old, proposed T) T {
	if h == nil {
		return proposed
	}
	return h(old, proposed)
}

// Attributes are the display properties common to all entities.
type Attributes struct {
	// Color is the entity color; ColorByLayer defers to the layer.
	Color Color
	// Lineweight is the stroke width; LineweightByLayer defers to the layer.
	Lineweight Lineweight
	// Transparency is the entity transparency; TransparencyByLayer defers
	// to the layer.
	Transparency Transparency
	// Visible toggles display of the entity.
	Visible bool
	// XData holds the entity's extended data per application.
	XData XDataCollection

	layer         *Layer
	linetype      *Linetype
	linetypeScale float64
	normal        Vector3
}

// newAttributes returns attributes with drawing defaults: layer "0",
// continuous linetype, all by-layer properties, unit linetype scale, and
// the world Z axis as normal.
func newAttributes() Attributes {
	return Attributes{
		Color:         ColorByLayer,
		Lineweight:    LineweightByLayer,
		Transparency:  TransparencyByLayer,
		Visible:       true,
		layer:         DefaultLayer(),
		linetype:      LinetypeContinuous(),
		linetypeScale: 1,
		normal:        UnitZ,
	}
}

// Layer returns the entity's layer.
func (a *Attributes) Layer() *Layer {
	return a.layer
}

// SetLayer assigns the entity's layer. A nil layer is rejected.
func (a *Attributes) SetLayer(layer *Layer) error {
	if layer == nil {
		return fmt.Errorf("%w: entity layer", ErrNilValue)
	}
	a.layer = layer
	return nil
}

// Linetype returns the entity's linetype.
func (a *Attributes) Linetype() *Linetype {
	return a.linetype
}

// SetLinetype assigns the entity's linetype. A nil linetype is rejected.
func (a *Attributes) SetLinetype(lt *Linetype) error {
	if lt == nil {
		return fmt.Errorf("%w: entity linetype", ErrNilValue)
	}
	a.linetype = lt
	return nil
}

// LinetypeScale returns the linetype pattern scale.
func (a *Attributes) LinetypeScale() float64 {
	return a.linetypeScale
}

// SetLinetypeScale sets the linetype pattern scale. The scale must be
// greater than zero.
func (a *Attributes) SetLinetypeScale(scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("%w: linetype scale %v, must be greater than zero", ErrOutOfRange, scale)
	}
	a.linetypeScale = scale
	return nil
}

// Normal returns the entity's extrusion normal. It is always unit length.
func (a *Attributes) Normal() Vector3 {
	return a.normal
}

// SetNormal sets the entity's extrusion normal. The vector is normalized
// before storing; a zero vector is rejected.
func (a *Attributes) SetNormal(normal Vector3) error {
	if normal.IsZero() {
		return fmt.Errorf("%w: entity normal", ErrNilValue)
	}
	a.normal = normal.Normalize()
	return nil
}

// transformNormal applies m to the stored normal under the degenerate
// geometry policy: a transformed normal that collapses to zero leaves the
// previous normal in place, otherwise the result is normalized and stored.
func (a *Attributes) transformNormal(m Matrix3) {
	n := m.MulVector(a.normal)
	if n.IsZero() {
		Logger().Debug("transform collapsed entity normal, keeping previous",
			"normal", a.normal)
		return
	}
	a.normal = n.Normalize()
}

// clone creates a deep copy of the attributes: layer, linetype, and
// extended data are duplicated so the copy shares nothing with the
// original.
func (a *Attributes) clone() Attributes {
	c := *a
	c.layer = a.layer.Clone()
	c.linetype = a.linetype.Clone()
	c.XData = a.XData.Clone()
	return c
}

// planeBases returns the matrices that move plane-local geometry between
// coordinate systems during a transformation: transOW maps the entity's
// current local plane to world coordinates, and transWO maps world
// coordinates onto the plane of the transformed normal.
func planeBases(oldNormal, newNormal Vector3) (transOW, transWO Matrix3) {
	transOW = ArbitraryAxis(oldNormal)
	transWO = ArbitraryAxis(newNormal).Transpose()
	return transOW, transWO
}
