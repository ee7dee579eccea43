package draft

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneDeepEquality(t *testing.T) {
	for _, e := range testEntities(t) {
		clone := e.Clone()
		require.IsType(t, e, clone, "Clone must preserve the concrete type")
		assert.Equal(t, e.Type(), clone.Type())
		if diff := cmp.Diff(e, clone, entityCmpOptions()); diff != "" {
			t.Errorf("%v clone differs from the original (-orig +clone):\n%s", e.Type(), diff)
		}
	}
}

func TestCloneSharesNoAttributeState(t *testing.T) {
	for _, e := range testEntities(t) {
		clone := e.Clone()
		require.NotSame(t, e.Attributes(), clone.Attributes())
		require.NotSame(t, e.Attributes().Layer(), clone.Attributes().Layer())
		require.NotSame(t, e.Attributes().Linetype(), clone.Attributes().Linetype())

		clone.Attributes().Layer().Color = Cyan
		assert.NotEqual(t, Cyan, e.Attributes().Layer().Color,
			"%v: the layer must be deep-copied", e.Type())

		require.NoError(t, clone.Attributes().XData.Add(XData{
			ApplicationName: "CLONE_ONLY",
			Records:         []XDataRecord{{Code: XDataInt16, Value: int16(1)}},
		}))
		_, found := e.Attributes().XData.Get("CLONE_ONLY")
		assert.False(t, found, "%v: extended data must be deep-copied", e.Type())
	}
}

func TestCloneGeometryIndependence(t *testing.T) {
	orig := testEntities(t)
	pristine := testEntities(t)

	for i, e := range orig {
		clone := e.Clone()
		clone.TransformBy(Scaling(3, 3, 3), V3(7, 7, 7))
		if diff := cmp.Diff(pristine[i], e, entityCmpOptions()); diff != "" {
			t.Errorf("%v: transforming a clone leaked into the original (-want +got):\n%s",
				e.Type(), diff)
		}
	}
}

func TestCloneDropsHooks(t *testing.T) {
	def, err := NewImageDefinition("chip", "chip.png", 640, 480)
	require.NoError(t, err)
	img, err := NewImage(def, V3(0, 0, 0), 5, 3)
	require.NoError(t, err)
	img.OnDefinitionChange = func(old, proposed *ImageDefinition) *ImageDefinition { return old }

	clone, ok := img.Clone().(*Image)
	require.True(t, ok)
	assert.Nil(t, clone.OnDefinitionChange)

	mesh := testMesh(t)
	mesh.Faces()[0].OnLayerChange = func(old, proposed *Layer) *Layer { return old }
	meshClone, ok := mesh.Clone().(*PolyfaceMesh)
	require.True(t, ok)
	assert.Nil(t, meshClone.Faces()[0].OnLayerChange)
}

func TestCloneResourceOwnership(t *testing.T) {
	def, err := NewImageDefinition("chip", "chip.png", 640, 480)
	require.NoError(t, err)
	img, err := NewImage(def, V3(0, 0, 0), 5, 3)
	require.NoError(t, err)

	clone, ok := img.Clone().(*Image)
	require.True(t, ok)

	// The definition is a shared resource; the boundary is the entity's own.
	require.Same(t, img.Definition(), clone.Definition())
	require.NotSame(t, img.ClippingBoundary(), clone.ClippingBoundary())

	wip, err := NewWipeout(NewRectangularClippingBoundary(V2(0, 0), V2(4, 2)))
	require.NoError(t, err)
	wipClone, ok := wip.Clone().(*Wipeout)
	require.True(t, ok)
	require.NotSame(t, wip.ClippingBoundary(), wipClone.ClippingBoundary())
}
