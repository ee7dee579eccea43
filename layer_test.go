package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayer(t *testing.T) {
	l, err := NewLayer("walls")
	require.NoError(t, err)
	assert.Equal(t, "walls", l.Name())
	assert.Equal(t, White, l.Color)
	assert.Equal(t, LineweightDefault, l.Lineweight)
	assert.Equal(t, 0, l.Transparency.Value())
	assert.True(t, l.Visible)
	assert.False(t, l.Frozen)
	assert.False(t, l.Locked)
	assert.True(t, l.Plot)
	require.NotNil(t, l.Linetype())
	assert.True(t, l.Linetype().IsContinuous())

	_, err = NewLayer("")
	require.ErrorIs(t, err, ErrNilValue)
}

func TestDefaultLayer(t *testing.T) {
	l := DefaultLayer()
	assert.Equal(t, "0", l.Name())

	// Every call yields an independent instance.
	require.NotSame(t, l, DefaultLayer())
}

func TestLayerSetLinetype(t *testing.T) {
	l, err := NewLayer("axes")
	require.NoError(t, err)

	dashed := LinetypeDashed()
	require.NoError(t, l.SetLinetype(dashed))
	assert.Same(t, dashed, l.Linetype())

	err = l.SetLinetype(nil)
	require.ErrorIs(t, err, ErrNilValue)
	assert.Same(t, dashed, l.Linetype(), "failed assignment must not change the linetype")
}

func TestLayerClone(t *testing.T) {
	orig, err := NewLayer("detail")
	require.NoError(t, err)
	orig.Color = Red
	orig.Frozen = true
	require.NoError(t, orig.SetLinetype(LinetypeDashDot()))

	clone := orig.Clone()
	require.NotSame(t, orig, clone)
	assert.Equal(t, orig.Name(), clone.Name())
	assert.Equal(t, Red, clone.Color)
	assert.True(t, clone.Frozen)

	// The linetype is deep-copied, not shared.
	require.NotSame(t, orig.Linetype(), clone.Linetype())
	clone.Linetype().Description = "changed"
	assert.Equal(t, "Dash dot _ . _ . _ .", orig.Linetype().Description)

	clone.Color = Blue
	assert.Equal(t, Red, orig.Color)
}
