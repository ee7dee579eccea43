package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesDefaults(t *testing.T) {
	attr := NewLine(V3(0, 0, 0), V3(1, 0, 0)).Attributes()

	assert.Equal(t, "0", attr.Layer().Name())
	assert.True(t, attr.Linetype().IsContinuous())
	assert.True(t, attr.Color.IsByLayer())
	assert.Equal(t, LineweightByLayer, attr.Lineweight)
	assert.True(t, attr.Transparency.IsByLayer())
	assert.Equal(t, 1.0, attr.LinetypeScale())
	assert.True(t, attr.Visible)
	assert.Equal(t, UnitZ, attr.Normal())
	assert.Zero(t, attr.XData.Len())
}

func TestAttributesSetLayer(t *testing.T) {
	attr := NewLine(V3(0, 0, 0), V3(1, 0, 0)).Attributes()

	custom, err := NewLayer("custom")
	require.NoError(t, err)
	require.NoError(t, attr.SetLayer(custom))
	assert.Same(t, custom, attr.Layer())

	err = attr.SetLayer(nil)
	require.ErrorIs(t, err, ErrNilValue)
	assert.Same(t, custom, attr.Layer(), "failed assignment must not change the layer")
}

func TestAttributesSetLinetype(t *testing.T) {
	attr := NewLine(V3(0, 0, 0), V3(1, 0, 0)).Attributes()

	dashed := LinetypeDashed()
	require.NoError(t, attr.SetLinetype(dashed))
	assert.Same(t, dashed, attr.Linetype())

	require.ErrorIs(t, attr.SetLinetype(nil), ErrNilValue)
	assert.Same(t, dashed, attr.Linetype())
}

func TestAttributesSetLinetypeScale(t *testing.T) {
	attr := NewLine(V3(0, 0, 0), V3(1, 0, 0)).Attributes()

	require.NoError(t, attr.SetLinetypeScale(2.5))
	assert.Equal(t, 2.5, attr.LinetypeScale())

	for _, bad := range []float64{0, -1} {
		require.ErrorIs(t, attr.SetLinetypeScale(bad), ErrOutOfRange)
		assert.Equal(t, 2.5, attr.LinetypeScale(), "failed assignment must not change the scale")
	}
}

func TestAttributesSetNormal(t *testing.T) {
	attr := NewLine(V3(0, 0, 0), V3(1, 0, 0)).Attributes()

	// The stored normal is the normalized direction.
	require.NoError(t, attr.SetNormal(V3(0, 0, 7)))
	assert.Equal(t, UnitZ, attr.Normal())

	require.NoError(t, attr.SetNormal(V3(3, 0, 4)))
	assert.True(t, attr.Normal().Approx(V3(0.6, 0, 0.8), 1e-12))

	err := attr.SetNormal(V3(0, 0, 0))
	require.ErrorIs(t, err, ErrNilValue)
	assert.True(t, attr.Normal().Approx(V3(0.6, 0, 0.8), 1e-12), "failed assignment must not change the normal")
}

func TestTransformKeepsDegenerateNormal(t *testing.T) {
	line := NewLine(V3(0, 0, 1), V3(1, 0, 1))

	// Flattening onto the XY plane maps the +Z normal to zero; the
	// previous normal must survive.
	line.TransformBy(Scaling(1, 1, 0), V3(0, 0, 0))
	assert.Equal(t, UnitZ, line.Attributes().Normal())
	assert.Equal(t, 0.0, line.Start.Z)
	assert.Equal(t, 0.0, line.End.Z)
}

func TestTransformRenormalizesNormal(t *testing.T) {
	line := NewLine(V3(0, 0, 0), V3(1, 0, 0))

	// Uniform scaling stretches the normal; the stored value stays unit.
	line.TransformBy(Scaling(3, 3, 3), V3(0, 0, 0))
	assert.True(t, line.Attributes().Normal().Approx(UnitZ, 1e-12))
}

func TestBeforeChangeNilPassesThrough(t *testing.T) {
	var hook BeforeChange[int]
	assert.Equal(t, 42, hook.apply(1, 42))

	hook = func(old, proposed int) int { return old }
	assert.Equal(t, 1, hook.apply(1, 42))
}

func TestEntityTypeString(t *testing.T) {
	tests := []struct {
		typ  EntityType
		want string
	}{
		{EntityLine, "Line"},
		{EntityFace3D, "Face3D"},
		{EntityImage, "Image"},
		{EntityWipeout, "Wipeout"},
		{EntityPolyline2D, "Polyline2D"},
		{EntityPolyfaceMesh, "PolyfaceMesh"},
		{EntityType(99), "EntityType(99)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}
