package draft

import "fmt"

// ClippingBoundaryType distinguishes the two clipping boundary shapes.
type ClippingBoundaryType int

const (
	// ClipRectangular is an axis-aligned rectangle defined by two corners.
	ClipRectangular ClippingBoundaryType = 1
	// ClipPolygonal is a closed polygon with at least three vertices.
	ClipPolygonal ClippingBoundaryType = 2
)

// String returns the boundary type name.
func (t ClippingBoundaryType) String() string {
	switch t {
	case ClipRectangular:
		return "Rectangular"
	case ClipPolygonal:
		return "Polygonal"
	default:
		return fmt.Sprintf("ClippingBoundaryType(%d)", int(t))
	}
}

// ClippingBoundary limits the displayed portion of an image or wipeout.
// Vertices are 2D coordinates in the owning entity's local plane: pixels
// for images, OCS coordinates for wipeouts.
type ClippingBoundary struct {
	kind     ClippingBoundaryType
	vertices []Vector2
}

// NewRectangularClippingBoundary creates a rectangular boundary from two
// opposite corners.
func NewRectangularClippingBoundary(first, second Vector2) *ClippingBoundary {
	return &ClippingBoundary{
		kind:     ClipRectangular,
		vertices: []Vector2{first, second},
	}
}

// NewPolygonalClippingBoundary creates a polygonal boundary. At least
// three vertices are required.
func NewPolygonalClippingBoundary(vertices []Vector2) (*ClippingBoundary, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: polygonal clipping boundary needs at least 3 vertices, got %d", ErrOutOfRange, len(vertices))
	}
	return &ClippingBoundary{
		kind:     ClipPolygonal,
		vertices: append([]Vector2(nil), vertices...),
	}, nil
}

// Type returns the boundary shape.
func (b *ClippingBoundary) Type() ClippingBoundaryType {
	return b.kind
}

// Vertices returns a copy of the boundary vertices: two corners for a
// rectangular boundary, the polygon vertices otherwise.
func (b *ClippingBoundary) Vertices() []Vector2 {
	return append([]Vector2(nil), b.vertices...)
}

// Clone creates a deep copy of the boundary.
func (b *ClippingBoundary) Clone() *ClippingBoundary {
	return &ClippingBoundary{
		kind:     b.kind,
		vertices: append([]Vector2(nil), b.vertices...),
	}
}
