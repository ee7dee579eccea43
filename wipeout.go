package draft

import "fmt"

// Wipeout is a masking area that hides whatever lies beneath it. Its
// shape is a clipping boundary with vertices in the plane of the entity's
// normal, placed at the stored elevation along that normal.
type Wipeout struct {
	// Elevation places the wipeout plane along the entity normal.
	Elevation float64

	boundary *ClippingBoundary

	attr Attributes
}

// NewWipeout creates a wipeout with the given boundary, taking ownership
// of it. A nil boundary is rejected.
func NewWipeout(boundary *ClippingBoundary) (*Wipeout, error) {
	if boundary == nil {
		return nil, fmt.Errorf("%w: wipeout clipping boundary", ErrNilValue)
	}
	return &Wipeout{
		boundary: boundary,
		attr:     newAttributes(),
	}, nil
}

// Type returns EntityWipeout.
func (w *Wipeout) Type() EntityType {
	return EntityWipeout
}

// Attributes returns the wipeout's display attributes.
func (w *Wipeout) Attributes() *Attributes {
	return &w.attr
}

// ClippingBoundary returns the wipeout's boundary.
func (w *Wipeout) ClippingBoundary() *ClippingBoundary {
	return w.boundary
}

// SetClippingBoundary assigns the wipeout's boundary, taking ownership of
// it. A nil boundary is rejected.
func (w *Wipeout) SetClippingBoundary(boundary *ClippingBoundary) error {
	if boundary == nil {
		return fmt.Errorf("%w: wipeout clipping boundary", ErrNilValue)
	}
	w.boundary = boundary
	return nil
}

// TransformBy applies the linear transformation m followed by the
// translation to the wipeout.
//
// Each boundary vertex is lifted from the wipeout plane at the current
// elevation into world coordinates, transformed with translation, and
// projected onto the plane of the transformed normal. The boundary keeps
// its shape kind, and the elevation becomes the projected Z of the last
// vertex.
func (w *Wipeout) TransformBy(m Matrix3, translation Vector3) {
	oldNormal := w.attr.normal
	w.attr.transformNormal(m)
	transOW, transWO := planeBases(oldNormal, w.attr.normal)

	vertices := w.boundary.Vertices()
	newElevation := w.Elevation
	for i, vertex := range vertices {
		v := transOW.MulVector(V3(vertex.X, vertex.Y, w.Elevation))
		v = m.MulVector(v).Add(translation)
		v = transWO.MulVector(v)
		vertices[i] = V2(v.X, v.Y)
		newElevation = v.Z
	}

	if w.boundary.Type() == ClipRectangular {
		w.boundary = NewRectangularClippingBoundary(vertices[0], vertices[1])
	} else {
		// The vertex count was validated when the boundary was built.
		w.boundary, _ = NewPolygonalClippingBoundary(vertices)
	}
	w.Elevation = newElevation
}

// Clone creates an independent deep copy of the wipeout.
func (w *Wipeout) Clone() Entity {
	c := *w
	c.boundary = w.boundary.Clone()
	c.attr = w.attr.clone()
	return &c
}
