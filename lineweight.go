package draft

// Lineweight expresses the plotted line width in hundredths of a millimeter.
// Only the listed values are meaningful to drawing interchange formats;
// the negative values are the inheritance sentinels.
type Lineweight int16

const (
	LineweightDefault Lineweight = -3
	LineweightByBlock Lineweight = -2
	LineweightByLayer Lineweight = -1

	Lineweight0   Lineweight = 0
	Lineweight5   Lineweight = 5
	Lineweight9   Lineweight = 9
	Lineweight13  Lineweight = 13
	Lineweight15  Lineweight = 15
	Lineweight18  Lineweight = 18
	Lineweight20  Lineweight = 20
	Lineweight25  Lineweight = 25
	Lineweight30  Lineweight = 30
	Lineweight35  Lineweight = 35
	Lineweight40  Lineweight = 40
	Lineweight50  Lineweight = 50
	Lineweight53  Lineweight = 53
	Lineweight60  Lineweight = 60
	Lineweight70  Lineweight = 70
	Lineweight80  Lineweight = 80
	Lineweight90  Lineweight = 90
	Lineweight100 Lineweight = 100
	Lineweight106 Lineweight = 106
	Lineweight120 Lineweight = 120
	Lineweight140 Lineweight = 140
	Lineweight158 Lineweight = 158
	Lineweight200 Lineweight = 200
	Lineweight211 Lineweight = 211
)

// lineweights holds the valid values in ascending order.
var lineweights = []Lineweight{
	LineweightDefault, LineweightByBlock, LineweightByLayer,
	Lineweight0, Lineweight5, Lineweight9, Lineweight13, Lineweight15,
	Lineweight18, Lineweight20, Lineweight25, Lineweight30, Lineweight35,
	Lineweight40, Lineweight50, Lineweight53, Lineweight60, Lineweight70,
	Lineweight80, Lineweight90, Lineweight100, Lineweight106, Lineweight120,
	Lineweight140, Lineweight158, Lineweight200, Lineweight211,
}

// Valid reports whether the lineweight is one of the defined values.
func (w Lineweight) Valid() bool {
	for _, lw := range lineweights {
		if w == lw {
			return true
		}
	}
	return false
}
