package draft

// Line is a straight segment between two points in space.
type Line struct {
	// Start is the segment's first endpoint.
	Start Vector3
	// End is the segment's second endpoint.
	End Vector3
	// Thickness extrudes the line along its normal.
	Thickness float64

	attr Attributes
}

// NewLine creates a line between two points with default attributes.
func NewLine(start, end Vector3) *Line {
	return &Line{
		Start: start,
		End:   end,
		attr:  newAttributes(),
	}
}

// Type returns EntityLine.
func (l *Line) Type() EntityType {
	return EntityLine
}

// Attributes returns the line's display attributes.
func (l *Line) Attributes() *Attributes {
	return &l.attr
}

// Direction returns the vector from Start to End. It is recomputed from
// the endpoints, so it is always current after a transformation.
func (l *Line) Direction() Vector3 {
	return l.End.Sub(l.Start)
}

// TransformBy applies the linear transformation m followed by the
// translation to both endpoints and maps the normal through m.
func (l *Line) TransformBy(m Matrix3, translation Vector3) {
	l.Start = m.MulVector(l.Start).Add(translation)
	l.End = m.MulVector(l.End).Add(translation)
	l.attr.transformNormal(m)
}

// Clone creates an independent deep copy of the line.
func (l *Line) Clone() Entity {
	c := *l
	c.attr = l.attr.clone()
	return &c
}
