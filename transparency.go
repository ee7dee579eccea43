package draft

import "fmt"

// Transparency describes how see-through an entity draws, as a percentage
// from 0 (opaque) to 90. The zero value is fully opaque; the sentinels
// defer resolution to the layer or block. Transparency is a value type:
// copies are always independent.
type Transparency struct {
	value int16
}

// Transparency sentinels.
var (
	TransparencyByLayer = Transparency{value: -1}
	TransparencyByBlock = Transparency{value: -2}
)

// NewTransparency creates a transparency from a percentage in [0, 90].
func NewTransparency(percent int) (Transparency, error) {
	if percent < 0 || percent > 90 {
		return Transparency{}, fmt.Errorf("%w: transparency %d, must be 0 through 90", ErrOutOfRange, percent)
	}
	return Transparency{value: int16(percent)}, nil
}

// Value returns the transparency percentage. Sentinels return 0.
func (t Transparency) Value() int {
	if t.value < 0 {
		return 0
	}
	return int(t.value)
}

// IsByLayer reports whether the transparency is the ByLayer sentinel.
func (t Transparency) IsByLayer() bool {
	return t.value == -1
}

// IsByBlock reports whether the transparency is the ByBlock sentinel.
func (t Transparency) IsByBlock() bool {
	return t.value == -2
}
