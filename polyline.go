package draft

import "fmt"

// PolylineTypeFlags describe the kind and topology of a raw polyline
// record.
type PolylineTypeFlags int

const (
	// PolylineOpen is a plain open polyline.
	PolylineOpen PolylineTypeFlags = 0
	// PolylineClosed closes the polyline (or a polygon mesh in M).
	PolylineClosed PolylineTypeFlags = 1
	// PolylineCurveFit marks curve-fit vertices as present.
	PolylineCurveFit PolylineTypeFlags = 2
	// PolylineSplineFit marks spline-fit vertices as present.
	PolylineSplineFit PolylineTypeFlags = 4
	// Polyline3DFlag marks a 3D polyline.
	Polyline3DFlag PolylineTypeFlags = 8
	// PolylinePolygonMesh marks a 3D polygon mesh.
	PolylinePolygonMesh PolylineTypeFlags = 16
	// PolylineClosedInN closes a polygon mesh in the N direction.
	PolylineClosedInN PolylineTypeFlags = 32
	// PolylinePolyfaceMesh marks a polyface mesh.
	PolylinePolyfaceMesh PolylineTypeFlags = 64
	// PolylineContinuousPattern draws the linetype continuously around
	// vertices.
	PolylineContinuousPattern PolylineTypeFlags = 128
)

// VertexTypeFlags describe the role of a raw vertex record.
type VertexTypeFlags int

const (
	// VertexCurveFit marks an extra vertex created by curve fitting.
	VertexCurveFit VertexTypeFlags = 1
	// VertexCurveFitTangent marks a curve-fit tangent defined for the vertex.
	VertexCurveFitTangent VertexTypeFlags = 2
	// VertexSplineFit marks an extra vertex created by spline fitting.
	VertexSplineFit VertexTypeFlags = 8
	// VertexSplineControlPoint marks a spline frame control point.
	VertexSplineControlPoint VertexTypeFlags = 16
	// VertexPolyline3D marks a 3D polyline vertex.
	VertexPolyline3D VertexTypeFlags = 32
	// VertexPolygonMesh marks a 3D polygon mesh vertex.
	VertexPolygonMesh VertexTypeFlags = 64
	// VertexPolyfaceMesh marks a polyface mesh vertex.
	VertexPolyfaceMesh VertexTypeFlags = 128
)

// PolylineSmoothType selects the curve generated over polyline vertices.
type PolylineSmoothType int

const (
	// PolylineNoSmooth draws straight segments.
	PolylineNoSmooth PolylineSmoothType = 0
	// PolylineQuadratic fits a quadratic B-spline.
	PolylineQuadratic PolylineSmoothType = 5
	// PolylineCubic fits a cubic B-spline.
	PolylineCubic PolylineSmoothType = 6
	// PolylineBezier fits a Bezier curve.
	PolylineBezier PolylineSmoothType = 8
)

// Polyline2DVertex is one corner of a 2D polyline: a planar position with
// an arc bulge and the segment widths at each end.
type Polyline2DVertex struct {
	// Position is the vertex location in the polyline plane.
	Position Vector2
	// Bulge curves the segment leaving this vertex; it is the tangent of
	// a quarter of the included arc angle, zero for a straight segment.
	Bulge float64

	startWidth float64
	endWidth   float64
}

// NewPolyline2DVertex creates a vertex at the given position with zero
// bulge and widths.
func NewPolyline2DVertex(position Vector2) *Polyline2DVertex {
	return &Polyline2DVertex{Position: position}
}

// StartWidth returns the segment width at this vertex.
func (v *Polyline2DVertex) StartWidth() float64 {
	return v.startWidth
}

// SetStartWidth sets the segment width at this vertex. Negative widths
// are rejected.
func (v *Polyline2DVertex) SetStartWidth(width float64) error {
	if width < 0 {
		return fmt.Errorf("%w: vertex start width %v, must not be negative", ErrOutOfRange, width)
	}
	v.startWidth = width
	return nil
}

// EndWidth returns the segment width at the next vertex.
func (v *Polyline2DVertex) EndWidth() float64 {
	return v.endWidth
}

// SetEndWidth sets the segment width at the next vertex. Negative widths
// are rejected.
func (v *Polyline2DVertex) SetEndWidth(width float64) error {
	if width < 0 {
		return fmt.Errorf("%w: vertex end width %v, must not be negative", ErrOutOfRange, width)
	}
	v.endWidth = width
	return nil
}

// Clone creates a copy of the vertex.
func (v *Polyline2DVertex) Clone() *Polyline2DVertex {
	c := *v
	return &c
}

// Polyline2D is a polyline whose vertices lie in the plane of the entity
// normal at the stored elevation.
type Polyline2D struct {
	// Closed joins the last vertex back to the first.
	Closed bool
	// Elevation places the polyline plane along the entity normal.
	Elevation float64
	// Thickness extrudes the polyline along its normal.
	Thickness float64
	// SmoothType selects the curve fitted over the vertices.
	SmoothType PolylineSmoothType

	vertices []*Polyline2DVertex

	attr Attributes
}

// NewPolyline2D creates a polyline from the given vertices, taking
// ownership of them. At least two non-nil vertices are required.
func NewPolyline2D(vertices []*Polyline2DVertex, closed bool) (*Polyline2D, error) {
	if len(vertices) < 2 {
		return nil, fmt.Errorf("%w: polyline needs at least 2 vertices, got %d", ErrOutOfRange, len(vertices))
	}
	for i, v := range vertices {
		if v == nil {
			return nil, fmt.Errorf("%w: polyline vertex %d", ErrNilValue, i)
		}
	}
	return &Polyline2D{
		Closed:   closed,
		vertices: vertices,
		attr:     newAttributes(),
	}, nil
}

// Type returns EntityPolyline2D.
func (p *Polyline2D) Type() EntityType {
	return EntityPolyline2D
}

// Attributes returns the polyline's display attributes.
func (p *Polyline2D) Attributes() *Attributes {
	return &p.attr
}

// Vertices returns the polyline's vertices. The returned slice is a copy,
// but the vertices themselves are the entity's own and may be edited in
// place.
func (p *Polyline2D) Vertices() []*Polyline2DVertex {
	return append([]*Polyline2DVertex(nil), p.vertices...)
}

// Flags returns the raw polyline type flags this entity maps to.
func (p *Polyline2D) Flags() PolylineTypeFlags {
	flags := PolylineOpen
	if p.Closed {
		flags |= PolylineClosed
	}
	if p.SmoothType != PolylineNoSmooth {
		flags |= PolylineSplineFit
	}
	return flags
}

// TransformBy applies the linear transformation m followed by the
// translation to the polyline.
//
// Each vertex is lifted from the polyline plane at the current elevation
// into world coordinates, transformed with translation, and projected
// onto the plane of the transformed normal. The elevation becomes the
// projected Z of the last vertex. Bulges and widths are not scaled.
func (p *Polyline2D) TransformBy(m Matrix3, translation Vector3) {
	oldNormal := p.attr.normal
	p.attr.transformNormal(m)
	transOW, transWO := planeBases(oldNormal, p.attr.normal)

	newElevation := p.Elevation
	for _, vertex := range p.vertices {
		v := transOW.MulVector(V3(vertex.Position.X, vertex.Position.Y, p.Elevation))
		v = m.MulVector(v).Add(translation)
		v = transWO.MulVector(v)
		vertex.Position = V2(v.X, v.Y)
		newElevation = v.Z
	}
	p.Elevation = newElevation
}

// Clone creates an independent deep copy of the polyline.
func (p *Polyline2D) Clone() Entity {
	c := *p
	c.vertices = make([]*Polyline2DVertex, len(p.vertices))
	for i, v := range p.vertices {
		c.vertices[i] = v.Clone()
	}
	c.attr = p.attr.clone()
	return &c
}

// Vertex is the raw vertex record a codec reads and writes before it is
// interpreted as part of a 2D polyline, 3D polyline, or polyface mesh.
type Vertex struct {
	// Flags state the role of the vertex.
	Flags VertexTypeFlags
	// Position is the vertex location; 2D vertices use X and Y only.
	Position Vector3
	// StartWidth and EndWidth are the segment widths around the vertex.
	StartWidth float64
	EndWidth   float64
	// Bulge curves the segment leaving this vertex.
	Bulge float64
	// Color overrides the owning polyline's color; ColorByLayer defers.
	Color Color
	// Layer optionally overrides the owning polyline's layer.
	Layer *Layer
	// VertexIndexes holds the face vertex references of a polyface mesh
	// face record.
	VertexIndexes []int16
}

// Clone creates a deep copy of the record.
func (v *Vertex) Clone() *Vertex {
	c := *v
	if v.Layer != nil {
		c.Layer = v.Layer.Clone()
	}
	c.VertexIndexes = append([]int16(nil), v.VertexIndexes...)
	return &c
}

// Polyline is the raw polyline record a codec reads and writes: an
// uninterpreted vertex list plus the flags that decide whether it stands
// for a 2D polyline, a 3D polyline, or a polyface mesh. It carries no
// transform behavior; interpret it into one of the entity types first.
type Polyline struct {
	// Flags state the polyline kind and topology.
	Flags PolylineTypeFlags
	// SmoothType selects the curve fitted over the vertices.
	SmoothType PolylineSmoothType
	// Elevation and Thickness position and extrude planar polylines.
	Elevation float64
	Thickness float64
	// Normal is the plane normal of the record.
	Normal Vector3
	// Vertexes holds the raw vertex records in order.
	Vertexes []*Vertex
}

// Clone creates a deep copy of the record.
func (p *Polyline) Clone() *Polyline {
	c := *p
	c.Vertexes = make([]*Vertex, len(p.Vertexes))
	for i, v := range p.Vertexes {
		c.Vertexes[i] = v.Clone()
	}
	return &c
}
