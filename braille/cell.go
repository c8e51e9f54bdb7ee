// Package braille defines the Grade-1 braille data model shared by the
// encoder, transcoder, validator and analyzer: cells, glyph tables, the
// paginated document structure and the pipeline configuration.
package braille

// Cell is a single braille cell, one code point in the Unicode Braille
// Patterns block (U+2800..U+28FF). The low eight bits of the code point
// are a dot mask: bit 0 is dot 1, bit 7 is dot 8. Grade-1 literary
// braille uses dots 1-6 only.
type Cell rune

const blockBase = 0x2800

// Cells with a fixed structural meaning.
const (
	// Blank is the empty cell (no dots raised). It separates words and
	// fills lines to the configured width.
	Blank Cell = blockBase

	// CapitalIndicator (dot 6) precedes a capitalized letter. Doubled, it
	// precedes a fully capitalized word.
	CapitalIndicator Cell = blockBase + 0x20

	// NumberIndicator (dots 3-4-5-6) precedes a run of digits.
	NumberIndicator Cell = blockBase + 0x3C
)

// FromDots builds a cell from raised dot numbers (1-8). Dot numbers
// outside that range are ignored.
func FromDots(dots ...int) Cell {
	var mask rune
	for _, d := range dots {
		if d >= 1 && d <= 8 {
			mask |= 1 << (d - 1)
		}
	}
	return Cell(blockBase + mask)
}

// IsBraille reports whether c lies in the Braille Patterns block.
func (c Cell) IsBraille() bool {
	return c >= blockBase && c <= blockBase+0xFF
}

// Mask returns the dot mask of the cell, or -1 for a rune outside the
// Braille Patterns block (a pass-through character carried verbatim).
func (c Cell) Mask() int {
	if !c.IsBraille() {
		return -1
	}
	return int(c - blockBase)
}

// Dots returns the raised dot numbers in ascending order.
func (c Cell) Dots() []int {
	m := c.Mask()
	if m <= 0 {
		return nil
	}
	var dots []int
	for d := 1; d <= 8; d++ {
		if m&(1<<(d-1)) != 0 {
			dots = append(dots, d)
		}
	}
	return dots
}

func (c Cell) String() string { return string(rune(c)) }
