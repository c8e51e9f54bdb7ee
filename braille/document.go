package braille

import "strings"

// Line is an ordered sequence of cells. A rune outside the Braille Patterns
// block is a pass-through character the encoder carried verbatim.
type Line []Cell

func (l Line) String() string {
	var sb strings.Builder
	sb.Grow(len(l) * 3)
	for _, c := range l {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

// Blank reports whether every cell in the line is the blank cell.
func (l Line) Blank() bool {
	for _, c := range l {
		if c != Blank {
			return false
		}
	}
	return true
}

// Page is an ordered sequence of lines. Number is the 1-based page number.
type Page struct {
	Number int
	Lines  []Line
}

// Document is a paginated braille document. Every line except possibly the
// last line of the last page holds exactly Config.LineLength cells, and
// every page except the last holds exactly Config.PageLength lines.
type Document struct {
	Pages []Page
}

// Empty reports whether the document has no pages.
func (d *Document) Empty() bool { return len(d.Pages) == 0 }

func (d *Document) PageCount() int { return len(d.Pages) }

func (d *Document) LineCount() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Lines)
	}
	return n
}

func (d *Document) CellCount() int {
	n := 0
	for _, p := range d.Pages {
		for _, l := range p.Lines {
			n += len(l)
		}
	}
	return n
}

// Text renders the document as Unicode braille text: every line is
// terminated by a line feed and pages are separated by a single form feed,
// so a document of N pages contains exactly N-1 form feeds.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, p := range d.Pages {
		if i > 0 {
			sb.WriteByte('\f')
		}
		for _, l := range p.Lines {
			sb.WriteString(l.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
