package draft

import "fmt"

// PolyfaceMeshFace is one face of a polyface mesh. It references the mesh
// vertex list by 1-based indexes; a negative index hides the face edge
// that starts at that vertex.
type PolyfaceMeshFace struct {
	// Color overrides the mesh color for this face; ColorByLayer defers.
	Color Color

	// OnLayerChange, when set, runs before SetLayer swaps the layer
	// override and decides the value actually stored, so the layer owner
	// can veto or redirect the swap.
	OnLayerChange BeforeChange[*Layer]

	indexes []int16
	layer   *Layer
}

// NewPolyfaceMeshFace creates a face from one to four non-zero vertex
// indexes.
func NewPolyfaceMeshFace(indexes ...int16) (*PolyfaceMeshFace, error) {
	if len(indexes) < 1 || len(indexes) > 4 {
		return nil, fmt.Errorf("%w: face needs 1 through 4 vertex indexes, got %d", ErrOutOfRange, len(indexes))
	}
	for _, idx := range indexes {
		if idx == 0 {
			return nil, fmt.Errorf("%w: face vertex index 0, indexes are 1-based", ErrOutOfRange)
		}
	}
	return &PolyfaceMeshFace{
		Color:   ColorByLayer,
		indexes: append([]int16(nil), indexes...),
	}, nil
}

// VertexIndexes returns a copy of the face's signed vertex indexes.
func (f *PolyfaceMeshFace) VertexIndexes() []int16 {
	return append([]int16(nil), f.indexes...)
}

// IsEdgeVisible reports whether the edge starting at the given face
// vertex slot is visible.
func (f *PolyfaceMeshFace) IsEdgeVisible(slot int) (bool, error) {
	if slot < 0 || slot >= len(f.indexes) {
		return false, fmt.Errorf("%w: face vertex slot %d of %d", ErrOutOfRange, slot, len(f.indexes))
	}
	return f.indexes[slot] > 0, nil
}

// SetEdgeVisible shows or hides the edge starting at the given face
// vertex slot by flipping the sign of its index.
func (f *PolyfaceMeshFace) SetEdgeVisible(slot int, visible bool) error {
	if slot < 0 || slot >= len(f.indexes) {
		return fmt.Errorf("%w: face vertex slot %d of %d", ErrOutOfRange, slot, len(f.indexes))
	}
	idx := f.indexes[slot]
	if (idx > 0) != visible {
		f.indexes[slot] = -idx
	}
	return nil
}

// Layer returns the face's layer override, nil when the face follows the
// mesh layer.
func (f *PolyfaceMeshFace) Layer() *Layer {
	return f.layer
}

// SetLayer assigns the face's layer override; nil clears it so the face
// follows the mesh layer again. When OnLayerChange is set its return
// value is stored instead of the proposed one.
func (f *PolyfaceMeshFace) SetLayer(layer *Layer) {
	f.layer = f.OnLayerChange.apply(f.layer, layer)
}

// Clone creates an independent deep copy of the face. The OnLayerChange
// hook is not carried over.
func (f *PolyfaceMeshFace) Clone() *PolyfaceMeshFace {
	c := &PolyfaceMeshFace{
		Color:   f.Color,
		indexes: append([]int16(nil), f.indexes...),
	}
	if f.layer != nil {
		c.layer = f.layer.Clone()
	}
	return c
}

// PolyfaceMesh is a mesh of faces over a shared vertex list.
type PolyfaceMesh struct {
	vertices []Vector3
	faces    []*PolyfaceMeshFace

	attr Attributes
}

// NewPolyfaceMesh creates a mesh from at least three vertices and one
// face, taking ownership of the faces. Every face index must reference an
// existing vertex.
func NewPolyfaceMesh(vertices []Vector3, faces []*PolyfaceMeshFace) (*PolyfaceMesh, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: mesh needs at least 3 vertices, got %d", ErrOutOfRange, len(vertices))
	}
	if len(faces) < 1 {
		return nil, fmt.Errorf("%w: mesh needs at least 1 face, got %d", ErrOutOfRange, len(faces))
	}
	for i, face := range faces {
		if face == nil {
			return nil, fmt.Errorf("%w: mesh face %d", ErrNilValue, i)
		}
		for _, idx := range face.indexes {
			if n := int(abs16(idx)); n > len(vertices) {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d", ErrOutOfRange, i, n, len(vertices))
			}
		}
	}
	return &PolyfaceMesh{
		vertices: append([]Vector3(nil), vertices...),
		faces:    faces,
		attr:     newAttributes(),
	}, nil
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

// Type returns EntityPolyfaceMesh.
func (p *PolyfaceMesh) Type() EntityType {
	return EntityPolyfaceMesh
}

// Attributes returns the mesh's display attributes.
func (p *PolyfaceMesh) Attributes() *Attributes {
	return &p.attr
}

// Vertices returns a copy of the mesh vertex positions.
func (p *PolyfaceMesh) Vertices() []Vector3 {
	return append([]Vector3(nil), p.vertices...)
}

// Faces returns the mesh faces. The returned slice is a copy, but the
// faces themselves are the entity's own and may be edited in place.
func (p *PolyfaceMesh) Faces() []*PolyfaceMeshFace {
	return append([]*PolyfaceMeshFace(nil), p.faces...)
}

// TransformBy applies the linear transformation m followed by the
// translation to every mesh vertex and maps the normal through m. Face
// records reference vertices by index and are unaffected.
func (p *PolyfaceMesh) TransformBy(m Matrix3, translation Vector3) {
	for i, v := range p.vertices {
		p.vertices[i] = m.MulVector(v).Add(translation)
	}
	p.attr.transformNormal(m)
}

// Clone creates an independent deep copy of the mesh, its vertices, and
// its faces.
func (p *PolyfaceMesh) Clone() Entity {
	c := *p
	c.vertices = append([]Vector3(nil), p.vertices...)
	c.faces = make([]*PolyfaceMeshFace, len(p.faces))
	for i, f := range p.faces {
		c.faces[i] = f.Clone()
	}
	c.attr = p.attr.clone()
	return &c
}
