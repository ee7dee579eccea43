package draft

import "fmt"

// ImageDisplayFlags control how a raster image is shown.
type ImageDisplayFlags int

const (
	// ImageShow displays the image.
	ImageShow ImageDisplayFlags = 1
	// ImageShowWhenNotAligned displays the image even when it is not
	// aligned with the view.
	ImageShowWhenNotAligned ImageDisplayFlags = 2
	// ImageUseClippingBoundary honors the clipping boundary.
	ImageUseClippingBoundary ImageDisplayFlags = 4
	// ImageTransparencyOn makes transparent pixels show what is below.
	ImageTransparencyOn ImageDisplayFlags = 8
)

// Image places a raster image definition in the drawing. The image plane
// is spanned by two unit axes U and V local to the entity's normal; Width
// and Height stretch those axes to the displayed size.
type Image struct {
	// Position is the insertion point of the image's bottom-left corner.
	Position Vector3
	// DisplayFlags control image visibility details.
	DisplayFlags ImageDisplayFlags
	// Clipping toggles the clipping boundary on and off.
	Clipping bool

	// OnDefinitionChange, when set, runs before SetDefinition swaps the
	// definition and decides the value actually stored, so the resource
	// owner can veto or redirect the swap.
	OnDefinitionChange BeforeChange[*ImageDefinition]

	definition *ImageDefinition
	boundary   *ClippingBoundary
	uvector    Vector2
	vvector    Vector2
	width      float64
	height     float64
	brightness float64
	contrast   float64
	fade       float64

	attr Attributes
}

// NewImage creates an image of the given definition at a position, with
// the displayed size in drawing units. The definition must not be nil and
// the size must be positive. The clipping boundary starts as the full
// image extent in pixel coordinates.
func NewImage(definition *ImageDefinition, position Vector3, width, height float64) (*Image, error) {
	if definition == nil {
		return nil, fmt.Errorf("%w: image definition", ErrNilValue)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: image width %v, must be greater than zero", ErrOutOfRange, width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: image height %v, must be greater than zero", ErrOutOfRange, height)
	}
	return &Image{
		Position:     position,
		DisplayFlags: ImageShow | ImageShowWhenNotAligned | ImageUseClippingBoundary,
		definition:   definition,
		boundary:     fullPixelBoundary(definition),
		uvector:      V2(1, 0),
		vvector:      V2(0, 1),
		width:        width,
		height:       height,
		brightness:   50,
		contrast:     50,
		attr:         newAttributes(),
	}, nil
}

// fullPixelBoundary is the clipping rectangle covering the whole image.
// Raster clipping coordinates place pixel centers on integers, so the
// extent runs from -0.5 to size-0.5.
func fullPixelBoundary(d *ImageDefinition) *ClippingBoundary {
	return NewRectangularClippingBoundary(
		V2(-0.5, -0.5),
		V2(float64(d.Width())-0.5, float64(d.Height())-0.5),
	)
}

// Type returns EntityImage.
func (img *Image) Type() EntityType {
	return EntityImage
}

// Attributes returns the image's display attributes.
func (img *Image) Attributes() *Attributes {
	return &img.attr
}

// Definition returns the displayed image definition.
func (img *Image) Definition() *ImageDefinition {
	return img.definition
}

// SetDefinition swaps the displayed image definition. A nil definition is
// rejected. When OnDefinitionChange is set its return value is stored
// instead of the proposed one; a nil return keeps the current definition.
func (img *Image) SetDefinition(definition *ImageDefinition) error {
	if definition == nil {
		return fmt.Errorf("%w: image definition", ErrNilValue)
	}
	if next := img.OnDefinitionChange.apply(img.definition, definition); next != nil {
		img.definition = next
	}
	return nil
}

// ClippingBoundary returns the image's clipping boundary, expressed in
// image pixel coordinates.
func (img *Image) ClippingBoundary() *ClippingBoundary {
	return img.boundary
}

// SetClippingBoundary assigns the clipping boundary, taking ownership of
// it. Passing nil restores the full-image boundary.
func (img *Image) SetClippingBoundary(boundary *ClippingBoundary) {
	if boundary == nil {
		img.boundary = fullPixelBoundary(img.definition)
		return
	}
	img.boundary = boundary
}

// Uvector returns the unit axis spanning the image width.
func (img *Image) Uvector() Vector2 {
	return img.uvector
}

// SetUvector sets the axis spanning the image width. The vector is
// normalized before storing; a zero vector is rejected.
func (img *Image) SetUvector(u Vector2) error {
	if u.IsZero() {
		return fmt.Errorf("%w: image U vector", ErrNilValue)
	}
	img.uvector = u.Normalize()
	return nil
}

// Vvector returns the unit axis spanning the image height.
func (img *Image) Vvector() Vector2 {
	return img.vvector
}

// SetVvector sets the axis spanning the image height. The vector is
// normalized before storing; a zero vector is rejected.
func (img *Image) SetVvector(v Vector2) error {
	if v.IsZero() {
		return fmt.Errorf("%w: image V vector", ErrNilValue)
	}
	img.vvector = v.Normalize()
	return nil
}

// Width returns the displayed image width in drawing units.
func (img *Image) Width() float64 {
	return img.width
}

// SetWidth sets the displayed width. It must be greater than zero.
func (img *Image) SetWidth(width float64) error {
	if width <= 0 {
		return fmt.Errorf("%w: image width %v, must be greater than zero", ErrOutOfRange, width)
	}
	img.width = width
	return nil
}

// Height returns the displayed image height in drawing units.
func (img *Image) Height() float64 {
	return img.height
}

// SetHeight sets the displayed height. It must be greater than zero.
func (img *Image) SetHeight(height float64) error {
	if height <= 0 {
		return fmt.Errorf("%w: image height %v, must be greater than zero", ErrOutOfRange, height)
	}
	img.height = height
	return nil
}

// Rotation returns the image rotation in radians, derived from the U axis.
func (img *Image) Rotation() float64 {
	return img.uvector.Angle()
}

// SetRotation rotates the image to the given angle in radians. Both axes
// turn by the same amount, so a sheared image keeps its shape. The angle
// is normalized into [0,2π).
func (img *Image) SetRotation(angle float64) {
	delta := NormalizeAngle(angle) - img.uvector.Angle()
	img.uvector = img.uvector.Rotate(delta)
	img.vvector = img.vvector.Rotate(delta)
}

// Brightness returns the image brightness, 0-100.
func (img *Image) Brightness() float64 {
	return img.brightness
}

// SetBrightness sets the image brightness. Values outside 0-100 are
// rejected.
func (img *Image) SetBrightness(value float64) error {
	if value < 0 || value > 100 {
		return fmt.Errorf("%w: image brightness %v, must be 0 through 100", ErrOutOfRange, value)
	}
	img.brightness = value
	return nil
}

// Contrast returns the image contrast, 0-100.
func (img *Image) Contrast() float64 {
	return img.contrast
}

// SetContrast sets the image contrast. Values outside 0-100 are rejected.
func (img *Image) SetContrast(value float64) error {
	if value < 0 || value > 100 {
		return fmt.Errorf("%w: image contrast %v, must be 0 through 100", ErrOutOfRange, value)
	}
	img.contrast = value
	return nil
}

// Fade returns the image fade, 0-100.
func (img *Image) Fade() float64 {
	return img.fade
}

// SetFade sets the image fade. Values outside 0-100 are rejected.
func (img *Image) SetFade(value float64) error {
	if value < 0 || value > 100 {
		return fmt.Errorf("%w: image fade %v, must be 0 through 100", ErrOutOfRange, value)
	}
	img.fade = value
	return nil
}

// TransformBy applies the linear transformation m followed by the
// translation to the image.
//
// The position transforms as a point. The U and V axes, scaled to the
// displayed width and height, are lifted from the image plane into world
// coordinates, transformed without translation, and projected onto the
// plane of the transformed normal; their new lengths become the new width
// and height. An axis that collapses to zero keeps its previous direction
// with Epsilon for the corresponding size. The clipping boundary lives in
// pixel coordinates and is not touched.
func (img *Image) TransformBy(m Matrix3, translation Vector3) {
	newPosition := m.MulVector(img.Position).Add(translation)
	oldNormal := img.attr.normal
	img.attr.transformNormal(m)
	transOW, transWO := planeBases(oldNormal, img.attr.normal)

	u := transOW.MulVector(V3(img.uvector.X*img.width, img.uvector.Y*img.width, 0))
	u = transWO.MulVector(m.MulVector(u))
	newU := V2(u.X, u.Y)
	newWidth := newU.Length()
	if IsZero(newWidth) {
		Logger().Debug("transform collapsed image U axis, keeping direction",
			"uvector", img.uvector)
		newU = img.uvector
		newWidth = Epsilon
	}

	v := transOW.MulVector(V3(img.vvector.X*img.height, img.vvector.Y*img.height, 0))
	v = transWO.MulVector(m.MulVector(v))
	newV := V2(v.X, v.Y)
	newHeight := newV.Length()
	if IsZero(newHeight) {
		Logger().Debug("transform collapsed image V axis, keeping direction",
			"vvector", img.vvector)
		newV = img.vvector
		newHeight = Epsilon
	}

	img.Position = newPosition
	img.uvector = newU.Normalize()
	img.vvector = newV.Normalize()
	img.width = newWidth
	img.height = newHeight
}

// Clone creates an independent deep copy of the image. The image
// definition is a shared resource, so the clone references the same
// definition; the clipping boundary is deep-copied. The
// OnDefinitionChange hook is not carried over.
func (img *Image) Clone() Entity {
	c := *img
	c.OnDefinitionChange = nil
	c.boundary = img.boundary.Clone()
	c.attr = img.attr.clone()
	return &c
}
