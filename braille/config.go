package braille

// Config controls encoding, transcoding and validation. A Config is
// supplied fresh per call and never mutated by the pipeline; start from
// DefaultConfig and override fields rather than building a zero value,
// because several defaults are true.
type Config struct {
	// TabWidth is the number of blank cells a tab expands to.
	TabWidth int

	// PreserveLineBreaks keeps hard line breaks from the source text as
	// line boundaries. When false, newlines collapse to word separators
	// and text wraps only at the width boundary.
	PreserveLineBreaks bool

	// SkipCarriageReturns drops \r during normalization. When false a
	// carriage return is treated like any other unmapped character.
	SkipCarriageReturns bool

	// LineLength is the exact cell width of every line except possibly
	// the final line of the final page.
	LineLength int

	// PageLength is the exact line count of every page except the last.
	PageLength int

	// IncludePageNumbers appends a right-aligned page number footer as
	// the last line of each page, reducing the content budget by one.
	IncludePageNumbers bool

	// ValidateOutput runs the compliance validator on transcoded output
	// in the pipeline.
	ValidateOutput bool

	// RejectUnmapped makes the encoder fail on characters outside the
	// glyph table instead of passing them through verbatim.
	RejectUnmapped bool
}

// Geometry defaults match the 40x25 embosser page.
const (
	DefaultTabWidth   = 4
	DefaultLineLength = 40
	DefaultPageLength = 25
)

func DefaultConfig() Config {
	return Config{
		TabWidth:            DefaultTabWidth,
		PreserveLineBreaks:  true,
		SkipCarriageReturns: true,
		LineLength:          DefaultLineLength,
		PageLength:          DefaultPageLength,
		IncludePageNumbers:  true,
		ValidateOutput:      true,
	}
}

// Normalized returns a copy with out-of-range numeric fields replaced by
// their defaults. Applied once at each component's construction; never
// re-read mid-call.
func (c Config) Normalized() Config {
	if c.TabWidth < 1 {
		c.TabWidth = DefaultTabWidth
	}
	if c.LineLength < 1 {
		c.LineLength = DefaultLineLength
	}
	if c.PageLength < 2 {
		c.PageLength = DefaultPageLength
	}
	return c
}

// ContentLines is the number of content lines per page: PageLength, minus
// one when a page number footer occupies the last line.
func (c Config) ContentLines() int {
	if c.IncludePageNumbers {
		return c.PageLength - 1
	}
	return c.PageLength
}
