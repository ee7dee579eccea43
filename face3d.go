package draft

import "fmt"

// Face3DEdgeFlags marks which edges of a Face3D are invisible.
type Face3DEdgeFlags int

const (
	// Face3DEdgeVisible shows all four edges.
	Face3DEdgeVisible Face3DEdgeFlags = 0
	// Face3DEdgeFirstHidden hides the edge from the first to the second vertex.
	Face3DEdgeFirstHidden Face3DEdgeFlags = 1
	// Face3DEdgeSecondHidden hides the edge from the second to the third vertex.
	Face3DEdgeSecondHidden Face3DEdgeFlags = 2
	// Face3DEdgeThirdHidden hides the edge from the third to the fourth vertex.
	Face3DEdgeThirdHidden Face3DEdgeFlags = 4
	// Face3DEdgeFourthHidden hides the edge from the fourth back to the first vertex.
	Face3DEdgeFourthHidden Face3DEdgeFlags = 8
)

// Face3D is a planar face with three or four corners. Triangular faces
// store the third corner twice, so the four vertex slots are always set.
type Face3D struct {
	// FirstVertex through FourthVertex are the face corners in order.
	FirstVertex  Vector3
	SecondVertex Vector3
	ThirdVertex  Vector3
	FourthVertex Vector3
	// EdgeFlags marks edges hidden from display.
	EdgeFlags Face3DEdgeFlags

	attr Attributes
}

// NewFace3D creates a face from three or four vertices. With three, the
// third vertex doubles as the fourth.
func NewFace3D(vertices ...Vector3) (*Face3D, error) {
	if len(vertices) < 3 || len(vertices) > 4 {
		return nil, fmt.Errorf("%w: face needs 3 or 4 vertices, got %d", ErrOutOfRange, len(vertices))
	}
	f := &Face3D{
		FirstVertex:  vertices[0],
		SecondVertex: vertices[1],
		ThirdVertex:  vertices[2],
		FourthVertex: vertices[2],
		attr:         newAttributes(),
	}
	if len(vertices) == 4 {
		f.FourthVertex = vertices[3]
	}
	return f, nil
}

// Type returns EntityFace3D.
func (f *Face3D) Type() EntityType {
	return EntityFace3D
}

// Attributes returns the face's display attributes.
func (f *Face3D) Attributes() *Attributes {
	return &f.attr
}

// TransformBy applies the linear transformation m followed by the
// translation to all four corners and maps the normal through m.
func (f *Face3D) TransformBy(m Matrix3, translation Vector3) {
	f.FirstVertex = m.MulVector(f.FirstVertex).Add(translation)
	f.SecondVertex = m.MulVector(f.SecondVertex).Add(translation)
	f.ThirdVertex = m.MulVector(f.ThirdVertex).Add(translation)
	f.FourthVertex = m.MulVector(f.FourthVertex).Add(translation)
	f.attr.transformNormal(m)
}

// Clone creates an independent deep copy of the face.
func (f *Face3D) Clone() Entity {
	c := *f
	c.attr = f.attr.clone()
	return &c
}
