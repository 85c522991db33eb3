package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorNavy
	ColorMaroon
	ColorTeal
)

// Attr is a set of text attributes applied on top of a cell's color.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrReverse
)

// Has reports whether every attribute in other is set.
func (a Attr) Has(other Attr) bool {
	return a&other == other
}

// Style is the color and attributes of a cell.
type Style struct {
	Color Color
	Attr  Attr
}

// Plain is the default style.
var Plain = Style{}

// Fg returns a style with the given foreground color and no attributes.
func Fg(c Color) Style {
	return Style{Color: c}
}

// With returns a copy of s with the given attributes added.
func (s Style) With(a Attr) Style {
	s.Attr |= a
	return s
}
