package draft

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Entity = (*Line)(nil)
	_ Entity = (*Face3D)(nil)
	_ Entity = (*Image)(nil)
	_ Entity = (*Wipeout)(nil)
	_ Entity = (*Polyline2D)(nil)
	_ Entity = (*PolyfaceMesh)(nil)
)

// entityCmpOptions compares entities by value, reaching into unexported
// state. Change hooks are excluded: a clone never carries them and they
// have no geometric meaning.
func entityCmpOptions() cmp.Options {
	return cmp.Options{
		cmp.AllowUnexported(
			Attributes{},
			ClippingBoundary{},
			Color{},
			Face3D{},
			Image{},
			ImageDefinition{},
			Layer{},
			Line{},
			Linetype{},
			PolyfaceMesh{},
			PolyfaceMeshFace{},
			Polyline2D{},
			Polyline2DVertex{},
			Transparency{},
			Wipeout{},
			XDataCollection{},
		),
		cmpopts.IgnoreFields(Image{}, "OnDefinitionChange"),
		cmpopts.IgnoreFields(PolyfaceMeshFace{}, "OnLayerChange"),
	}
}

// testEntities builds one entity of each kind with non-default content.
// Repeated calls produce identical sets, so two calls give a before/after
// pair for in-place operations.
func testEntities(t *testing.T) []Entity {
	t.Helper()

	line := NewLine(V3(1, 2, 3), V3(4, 0, -2))
	line.Thickness = 0.5
	require.NoError(t, line.Attributes().XData.Add(XData{
		ApplicationName: "SURVEY",
		Records: []XDataRecord{
			{Code: XDataString, Value: "parcel"},
			{Code: XDataReal, Value: 12.5},
		},
	}))

	face, err := NewFace3D(V3(0, 0, 0), V3(4, 0, 0), V3(4, 2, 0), V3(0, 2, 0))
	require.NoError(t, err)
	face.EdgeFlags = Face3DEdgeFirstHidden | Face3DEdgeThirdHidden

	def, err := NewImageDefinition("chip", "chip.png", 640, 480)
	require.NoError(t, err)
	img, err := NewImage(def, V3(2, 2, 0), 5, 3)
	require.NoError(t, err)

	wip, err := NewWipeout(NewRectangularClippingBoundary(V2(0, 0), V2(4, 2)))
	require.NoError(t, err)
	wip.Elevation = 1.5

	v0 := NewPolyline2DVertex(V2(0, 0))
	v0.Bulge = 0.25
	v1 := NewPolyline2DVertex(V2(10, 0))
	require.NoError(t, v1.SetStartWidth(0.1))
	v2 := NewPolyline2DVertex(V2(10, 5))
	poly, err := NewPolyline2D([]*Polyline2DVertex{v0, v1, v2}, true)
	require.NoError(t, err)
	poly.Elevation = 2.5

	return []Entity{line, face, img, wip, poly, testMesh(t)}
}

func TestTransformByIdentityIsNoOp(t *testing.T) {
	want := testEntities(t)
	got := testEntities(t)

	for i, e := range got {
		e.TransformBy(Identity(), Vector3{})
		if diff := cmp.Diff(want[i], e, entityCmpOptions()); diff != "" {
			t.Errorf("%v changed under the identity transform (-want +got):\n%s", e.Type(), diff)
		}
	}
}

func TestTransformComposition(t *testing.T) {
	m1, t1 := RotationZ(math.Pi/3), V3(1, 2, 3)
	m2, t2 := RotationX(math.Pi/6).Multiply(Scaling(2, -1, 0.5)), V3(-4, 0, 1)

	sequential := testEntities(t)
	for _, e := range sequential {
		e.TransformBy(m1, t1)
		e.TransformBy(m2, t2)
	}

	// m2*(m1*p + t1) + t2 collapses into a single application.
	composed := testEntities(t)
	for _, e := range composed {
		e.TransformBy(m2.Multiply(m1), m2.MulVector(t1).Add(t2))
	}

	opts := append(entityCmpOptions(), cmpopts.EquateApprox(0, 1e-9))
	for i := range sequential {
		if diff := cmp.Diff(sequential[i], composed[i], opts); diff != "" {
			t.Errorf("%v: sequential and composed transforms disagree (-sequential +composed):\n%s",
				sequential[i].Type(), diff)
		}
	}
}

func TestTransformDegenerateNormalAllKinds(t *testing.T) {
	flatten := Scaling(1, 1, 0)
	for _, e := range testEntities(t) {
		before := e.Attributes().Normal()
		e.TransformBy(flatten, Vector3{})
		assert.Equal(t, before, e.Attributes().Normal(),
			"%v must keep its normal when the transform collapses it", e.Type())
	}
}
