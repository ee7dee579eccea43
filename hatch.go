package draft

import "fmt"

// HatchPatternType states where a hatch pattern definition comes from.
type HatchPatternType int

const (
	// HatchUserDefined patterns are built from the entity's own line data.
	HatchUserDefined HatchPatternType = 0
	// HatchPredefined patterns come from the standard pattern set.
	HatchPredefined HatchPatternType = 1
	// HatchCustom patterns come from an external pattern file.
	HatchCustom HatchPatternType = 2
)

// HatchFillType distinguishes solid fills from pattern fills.
type HatchFillType int

const (
	// HatchPatternFill fills with the pattern's line definitions.
	HatchPatternFill HatchFillType = 0
	// HatchSolidFill fills the area with solid color.
	HatchSolidFill HatchFillType = 1
)

// HatchStyle states how islands inside the hatch area are treated.
type HatchStyle int

const (
	// HatchStyleNormal hatches odd-numbered nesting levels.
	HatchStyleNormal HatchStyle = 0
	// HatchStyleOuter hatches only the outermost level.
	HatchStyleOuter HatchStyle = 1
	// HatchStyleIgnore hatches everything, ignoring islands.
	HatchStyleIgnore HatchStyle = 2
)

// HatchPatternLineDefinition is one family of parallel lines inside a
// hatch pattern: a direction, a seed origin, the offset between
// neighboring lines, and an optional dash pattern along each line.
type HatchPatternLineDefinition struct {
	// Origin is the seed point the line family grows from.
	Origin Vector2
	// Delta is the displacement between consecutive lines, expressed in
	// the line's own rotated frame.
	Delta Vector2
	// DashPattern alternates dash (positive), gap (negative), and dot
	// (zero) lengths along each line; empty draws solid lines.
	DashPattern []float64

	angle float64
}

// Angle returns the line family direction in radians, within [0,2π).
func (d *HatchPatternLineDefinition) Angle() float64 {
	return d.angle
}

// SetAngle sets the line family direction in radians, normalizing it
// into [0,2π).
func (d *HatchPatternLineDefinition) SetAngle(angle float64) {
	d.angle = NormalizeAngle(angle)
}

// Clone creates a deep copy of the line definition.
func (d *HatchPatternLineDefinition) Clone() *HatchPatternLineDefinition {
	c := *d
	c.DashPattern = append([]float64(nil), d.DashPattern...)
	return &c
}

// HatchPattern describes how a hatched area is filled: a named set of
// line families plus the angle, scale, and origin applied to all of them.
type HatchPattern struct {
	// Description is the human-readable pattern summary.
	Description string
	// Type states where the pattern definition comes from.
	Type HatchPatternType
	// Fill distinguishes solid from pattern fill.
	Fill HatchFillType
	// Style states how islands are treated.
	Style HatchStyle
	// Origin anchors the pattern in the hatch plane.
	Origin Vector2
	// LineDefinitions holds the pattern's line families. Solid fills
	// carry none.
	LineDefinitions []*HatchPatternLineDefinition

	name  string
	angle float64
	scale float64
}

// NewHatchPattern creates a pattern-fill hatch pattern with the given
// name, unit scale, and zero angle. The name may be empty for anonymous
// user-defined patterns.
func NewHatchPattern(name string) *HatchPattern {
	return &HatchPattern{
		Type:  HatchUserDefined,
		Fill:  HatchPatternFill,
		Style: HatchStyleNormal,
		name:  name,
		scale: 1,
	}
}

// Predefined hatch patterns. Each call returns a fresh instance.

// HatchPatternSolid fills the area with solid color.
func HatchPatternSolid() *HatchPattern {
	p := NewHatchPattern("SOLID")
	p.Description = "Solid fill"
	p.Type = HatchPredefined
	p.Fill = HatchSolidFill
	return p
}

// HatchPatternLine fills with single horizontal lines.
func HatchPatternLine() *HatchPattern {
	p := NewHatchPattern("LINE")
	p.Description = "Single horizontal lines"
	p.Type = HatchPredefined
	p.LineDefinitions = []*HatchPatternLineDefinition{
		{Delta: V2(0, 0.125)},
	}
	return p
}

// HatchPatternNet fills with a horizontal and vertical grid.
func HatchPatternNet() *HatchPattern {
	p := NewHatchPattern("NET")
	p.Description = "Horizontal and vertical grid"
	p.Type = HatchPredefined
	horizontal := &HatchPatternLineDefinition{Delta: V2(0, 0.125)}
	vertical := &HatchPatternLineDefinition{Delta: V2(0, 0.125)}
	vertical.SetAngle(90 * DegToRad)
	p.LineDefinitions = []*HatchPatternLineDefinition{horizontal, vertical}
	return p
}

// HatchPatternDots fills with a series of dots.
func HatchPatternDots() *HatchPattern {
	p := NewHatchPattern("DOTS")
	p.Description = "A series of dots"
	p.Type = HatchPredefined
	p.LineDefinitions = []*HatchPatternLineDefinition{
		{Delta: V2(0.03125, 0.0625), DashPattern: []float64{0, -0.0625}},
	}
	return p
}

// Name returns the pattern name.
func (p *HatchPattern) Name() string {
	return p.name
}

// Angle returns the rotation applied to the whole pattern, in radians
// within [0,2π).
func (p *HatchPattern) Angle() float64 {
	return p.angle
}

// SetAngle rotates the whole pattern to the given angle in radians,
// normalizing it into [0,2π).
func (p *HatchPattern) SetAngle(angle float64) {
	p.angle = NormalizeAngle(angle)
}

// Scale returns the scale applied to the whole pattern.
func (p *HatchPattern) Scale() float64 {
	return p.scale
}

// SetScale scales the whole pattern. The scale must be greater than zero.
func (p *HatchPattern) SetScale(scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("%w: hatch pattern scale %v, must be greater than zero", ErrOutOfRange, scale)
	}
	p.scale = scale
	return nil
}

// Clone creates a deep copy of the pattern and its line definitions.
func (p *HatchPattern) Clone() *HatchPattern {
	c := *p
	if p.LineDefinitions != nil {
		c.LineDefinitions = make([]*HatchPatternLineDefinition, len(p.LineDefinitions))
		for i, d := range p.LineDefinitions {
			c.LineDefinitions[i] = d.Clone()
		}
	}
	return &c
}

// HatchGradientPatternType selects the shape of a gradient fill.
type HatchGradientPatternType int

const (
	// GradientLinear blends along a straight axis.
	GradientLinear HatchGradientPatternType = iota
	// GradientCylinder blends along a cylinder profile.
	GradientCylinder
	// GradientInvCylinder is GradientCylinder with the colors swapped.
	GradientInvCylinder
	// GradientSpherical blends along a sphere profile.
	GradientSpherical
	// GradientInvSpherical is GradientSpherical with the colors swapped.
	GradientInvSpherical
	// GradientHemispherical blends along a hemisphere profile.
	GradientHemispherical
	// GradientInvHemispherical is GradientHemispherical with the colors
	// swapped.
	GradientInvHemispherical
	// GradientCurved blends along a curved profile.
	GradientCurved
	// GradientInvCurved is GradientCurved with the colors swapped.
	GradientInvCurved
)

// String returns the gradient pattern name.
func (t HatchGradientPatternType) String() string {
	switch t {
	case GradientLinear:
		return "LINEAR"
	case GradientCylinder:
		return "CYLINDER"
	case GradientInvCylinder:
		return "INVCYLINDER"
	case GradientSpherical:
		return "SPHERICAL"
	case GradientInvSpherical:
		return "INVSPHERICAL"
	case GradientHemispherical:
		return "HEMISPHERICAL"
	case GradientInvHemispherical:
		return "INVHEMISPHERICAL"
	case GradientCurved:
		return "CURVED"
	case GradientInvCurved:
		return "INVCURVED"
	default:
		return fmt.Sprintf("HatchGradientPatternType(%d)", int(t))
	}
}

// HatchGradientPattern is a solid-fill pattern that blends between two
// colors, or between tints of a single color.
//
// The two-color and single-color states never desynchronize: while
// SingleColor is set, Color2 always equals Color1's hue and saturation at
// the lightness given by Tint, and every write to Color1, Tint, or the
// single-color flag re-derives it. Writing Color2 directly switches the
// pattern back to two-color mode.
type HatchGradientPattern struct {
	HatchPattern

	// Centered centers the gradient in the hatch area instead of
	// anchoring it at the area's edge.
	Centered bool

	gradientType HatchGradientPatternType
	color1       Color
	color2       Color
	singleColor  bool
	tint         float64
}

// NewHatchGradientPattern creates a two-color gradient of the given shape.
func NewHatchGradientPattern(color1, color2 Color, gradientType HatchGradientPatternType) *HatchGradientPattern {
	g := &HatchGradientPattern{
		HatchPattern: *NewHatchPattern(gradientType.String()),
		Centered:     true,
		gradientType: gradientType,
		color1:       color1,
		color2:       color2,
		tint:         1,
	}
	g.Type = HatchPredefined
	g.Fill = HatchSolidFill
	return g
}

// NewHatchGradientPatternSingleColor creates a single-color gradient of
// the given shape: a blend from color1 toward its tinted variant at the
// given lightness.
func NewHatchGradientPatternSingleColor(color1 Color, tint float64, gradientType HatchGradientPatternType) *HatchGradientPattern {
	g := NewHatchGradientPattern(color1, color1, gradientType)
	g.singleColor = true
	g.tint = tint
	g.color2 = g.color2FromTint(tint)
	return g
}

// color2FromTint derives the dependent color: Color1's hue and
// saturation at the given lightness.
func (g *HatchGradientPattern) color2FromTint(tint float64) Color {
	h, s, _ := g.color1.ToHSL()
	return ColorFromHSL(h, s, tint)
}

// GradientType returns the gradient shape.
func (g *HatchGradientPattern) GradientType() HatchGradientPatternType {
	return g.gradientType
}

// SetGradientType changes the gradient shape. The pattern name follows
// the shape.
func (g *HatchGradientPattern) SetGradientType(gradientType HatchGradientPatternType) {
	g.gradientType = gradientType
	g.name = gradientType.String()
}

// Color1 returns the gradient's first color.
func (g *HatchGradientPattern) Color1() Color {
	return g.color1
}

// SetColor1 sets the gradient's first color. In single-color mode Color2
// is re-derived from the new color and the tint.
func (g *HatchGradientPattern) SetColor1(c Color) {
	g.color1 = c
	if g.singleColor {
		g.color2 = g.color2FromTint(g.tint)
	}
}

// Color2 returns the gradient's second color. In single-color mode it is
// the derived tint of Color1.
func (g *HatchGradientPattern) Color2() Color {
	return g.color2
}

// SetColor2 sets the gradient's second color and switches the pattern to
// two-color mode.
func (g *HatchGradientPattern) SetColor2(c Color) {
	g.singleColor = false
	g.color2 = c
}

// SingleColor reports whether the gradient blends tints of Color1 only.
func (g *HatchGradientPattern) SingleColor() bool {
	return g.singleColor
}

// SetSingleColor switches between single-color and two-color mode.
// Enabling it derives Color2 from Color1 and the tint immediately.
func (g *HatchGradientPattern) SetSingleColor(single bool) {
	if single {
		g.color2 = g.color2FromTint(g.tint)
	}
	g.singleColor = single
}

// Tint returns the lightness used for the derived color in single-color
// mode.
func (g *HatchGradientPattern) Tint() float64 {
	return g.tint
}

// SetTint sets the single-color lightness. In single-color mode Color2 is
// re-derived immediately.
func (g *HatchGradientPattern) SetTint(tint float64) {
	g.tint = tint
	if g.singleColor {
		g.color2 = g.color2FromTint(tint)
	}
}

// Clone creates a deep copy of the gradient pattern.
func (g *HatchGradientPattern) Clone() *HatchGradientPattern {
	c := *g
	c.HatchPattern = *g.HatchPattern.Clone()
	return &c
}
