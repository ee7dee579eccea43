// Package draft provides geometric transformation and deep cloning for
// CAD drawing entities.
//
// # Overview
//
// draft models the entity records of a 2D/3D drawing — lines, planar
// faces, raster images, wipeouts, polylines, polyface meshes, and hatch
// pattern definitions — together with the two operations every record
// supports: an in-place affine transformation and an independent deep
// copy. File I/O and table-resource registries are left to collaborating
// packages; draft owns the geometry and the ownership rules.
//
// # Quick Start
//
//	import "github.com/gocad/draft"
//
//	// Build an entity
//	line := draft.NewLine(draft.V3(0, 0, 0), draft.V3(10, 0, 0))
//
//	// Rotate it a quarter turn around Z and shift it up
//	line.TransformBy(draft.RotationZ(math.Pi/2), draft.V3(0, 0, 5))
//
//	// Hand an independent copy to another goroutine
//	copy := line.Clone()
//
// # Entities
//
// Every entity implements the Entity interface: Type, Attributes,
// TransformBy, and Clone. Attributes carries the display properties all
// variants share (layer, linetype, color, lineweight, transparency,
// visibility, extrusion normal, extended data).
//
// # Transformations
//
// TransformBy applies a 3x3 linear transformation followed by a
// translation. Point-like fields transform as points, directions as
// vectors, and planar entities (images, wipeouts, 2D polylines) conjugate
// their plane-local coordinates through the local frames of the old and
// new normals. Transformations never fail: geometry that degenerates is
// substituted by policy and reported through the debug logger.
//
// # Cloning
//
// Clone returns a deep copy: owned sub-objects (boundaries, vertices,
// faces, styles, extended data) are duplicated, so mutating one side
// never affects the other. The one documented exception is the raster
// image definition, a shared resource copied by reference.
//
// # Coordinate System
//
// Right-handed world coordinates with Z up. Angles are radians,
// normalized into [0, 2π) where stored. Plane-local frames are derived
// from a normal with the arbitrary axis algorithm (see ArbitraryAxis).
package draft

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
