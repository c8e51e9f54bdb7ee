// Package encoder converts plain text into paginated Grade-1 Unicode
// braille documents.
package encoder

import (
	"context"
	"fmt"
	"strings"

	"github.com/wudi/braillekit/braille"
)

// Encoder transcribes plain text into a braille document.
type Encoder interface {
	Encode(ctx context.Context, text string) (*braille.Document, error)
}

// New returns a Grade-1 encoder for the given configuration.
func New(cfg braille.Config) Encoder {
	return &grade1{cfg: cfg.Normalized()}
}

type grade1 struct {
	cfg braille.Config
}

// PolicyError reports a character outside the glyph table when the
// configuration rejects unmapped input instead of passing it through.
type PolicyError struct {
	Rune   rune
	Offset int
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("character %q at offset %d has no braille mapping", e.Rune, e.Offset)
}

var hyphenCell = braille.FromDots(3, 6)

// Encode transcribes text. It never fails on well-formed UTF-8 unless
// RejectUnmapped is set; empty input yields an empty zero-page document.
func (g *grade1) Encode(ctx context.Context, text string) (*braille.Document, error) {
	text = g.normalize(text)

	var segments []string
	if g.cfg.PreserveLineBreaks {
		segments = strings.Split(text, "\n")
	} else {
		segments = []string{strings.ReplaceAll(text, "\n", " ")}
	}

	p := newPager(g.cfg)
	offset := 0
	for i, seg := range segments {
		if err := checkCancelled(ctx); err != nil {
			return nil, err
		}
		cells, err := g.segmentCells(seg, offset)
		if err != nil {
			return nil, err
		}
		p.append(cells)
		if i < len(segments)-1 {
			p.breakLine()
		}
		offset += len([]rune(seg)) + 1
	}
	return p.finish(), nil
}

func (g *grade1) normalize(text string) string {
	if g.cfg.SkipCarriageReturns {
		text = strings.ReplaceAll(text, "\r", "")
	}
	if strings.ContainsRune(text, '\t') {
		text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", g.cfg.TabWidth))
	}
	return text
}

// segmentCells converts one hard-break-free segment into cells. Numeric
// mode spans a maximal digit run: the indicator is emitted once, survives
// hyphens, and is re-emitted after any other interruption. A single
// capital letter takes one capital indicator; a run of two or more takes
// the doubled whole-word indicator.
func (g *grade1) segmentCells(seg string, base int) ([]braille.Cell, error) {
	runes := []rune(seg)
	cells := make([]braille.Cell, 0, len(runes)+4)
	numeric := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r >= 'A' && r <= 'Z':
			run := 1
			for i+run < len(runes) && runes[i+run] >= 'A' && runes[i+run] <= 'Z' {
				run++
			}
			cells = append(cells, braille.CapitalIndicator)
			if run >= 2 {
				cells = append(cells, braille.CapitalIndicator)
			}
			for j := 0; j < run; j++ {
				c, _ := braille.LetterCell(runes[i+j])
				cells = append(cells, c)
			}
			i += run - 1
			numeric = false
		case r >= '0' && r <= '9':
			if !numeric {
				cells = append(cells, braille.NumberIndicator)
				numeric = true
			}
			c, _ := braille.DigitCell(r)
			cells = append(cells, c)
		case r == '-':
			cells = append(cells, hyphenCell)
		default:
			if c, ok := braille.CellFor(r); ok {
				cells = append(cells, c)
			} else if g.cfg.RejectUnmapped {
				return nil, &PolicyError{Rune: r, Offset: base + i}
			} else {
				cells = append(cells, braille.Cell(r))
			}
			numeric = false
		}
	}
	return cells, nil
}

func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
