package draft

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Register the common raster formats so NewImageDefinitionFromFile can
	// read their headers.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ImageResolutionUnits states the unit the image resolution is measured in.
type ImageResolutionUnits int

const (
	// ImageResolutionNone leaves the resolution unitless.
	ImageResolutionNone ImageResolutionUnits = 0
	// ImageResolutionCentimeters measures pixels per centimeter.
	ImageResolutionCentimeters ImageResolutionUnits = 2
	// ImageResolutionInches measures pixels per inch.
	ImageResolutionInches ImageResolutionUnits = 5
)

// ImageDefinition describes a raster image resource: where its file lives
// and how large it is in pixels. Several Image entities may display the
// same definition; the definition is owned by whoever registered it, so
// Image.Clone shares the pointer instead of copying the resource.
type ImageDefinition struct {
	// Units is the resolution measurement unit.
	Units ImageResolutionUnits
	// HorizontalResolution and VerticalResolution are the pixel densities
	// in Units.
	HorizontalResolution float64
	VerticalResolution   float64

	name   string
	source string
	width  int
	height int
}

// NewImageDefinition creates an image definition with the given resource
// name, source file path, and pixel dimensions. The name and source must
// be non-empty and the dimensions positive.
func NewImageDefinition(name, source string, width, height int) (*ImageDefinition, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: image definition name", ErrNilValue)
	}
	if source == "" {
		return nil, fmt.Errorf("%w: image definition source", ErrNilValue)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: image width %d, must be greater than zero", ErrOutOfRange, width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: image height %d, must be greater than zero", ErrOutOfRange, height)
	}
	return &ImageDefinition{
		Units:                ImageResolutionNone,
		HorizontalResolution: 72,
		VerticalResolution:   72,
		name:                 name,
		source:               source,
		width:                width,
		height:               height,
	}, nil
}

// NewImageDefinitionFromFile creates an image definition by reading the
// pixel dimensions from the file header. Only the header is decoded, never
// the pixel data. The definition is named after the file, without its
// extension.
func NewImageDefinitionFromFile(source string) (*ImageDefinition, error) {
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", source, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decode image header %q: %w", source, err)
	}
	base := filepath.Base(source)
	name := base[:len(base)-len(filepath.Ext(base))]
	return NewImageDefinition(name, source, cfg.Width, cfg.Height)
}

// Name returns the definition's resource name.
func (d *ImageDefinition) Name() string {
	return d.name
}

// Source returns the path of the image file.
func (d *ImageDefinition) Source() string {
	return d.source
}

// Width returns the image width in pixels.
func (d *ImageDefinition) Width() int {
	return d.width
}

// Height returns the image height in pixels.
func (d *ImageDefinition) Height() int {
	return d.height
}

// Clone creates a copy of the definition.
func (d *ImageDefinition) Clone() *ImageDefinition {
	c := *d
	return &c
}
