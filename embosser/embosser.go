// Package embosser transcodes Unicode braille into the ASCII ready format
// consumed by embosser hardware (BRF). The transcoding is strictly
// cell-by-cell: line and page boundaries are never altered.
package embosser

import (
	"context"
	"fmt"
	"strings"

	"github.com/wudi/braillekit/braille"
)

// Transcoder converts braille documents to ready-format text.
type Transcoder interface {
	// Transcode renders a braille document as BRF text: lines terminated
	// by a line feed, pages separated by a form feed.
	Transcode(ctx context.Context, doc *braille.Document) (string, error)

	// TranscodeText converts already-rendered braille text, preserving
	// its line feeds and form feeds verbatim.
	TranscodeText(ctx context.Context, text string) (string, error)
}

// New returns a NABCC transcoder. The mapping is fixed; the constructor
// takes the configuration for symmetry with the other stages.
func New(braille.Config) Transcoder {
	return &nabcc{}
}

type nabcc struct{}

// TranscodeError reports a cell the ready-format alphabet cannot express.
// Unlike the encoder, the transcoder never passes unknown content through:
// partial ready-format output is unsafe to emboss.
type TranscodeError struct {
	Cell   rune
	Page   int // 1-based
	Line   int // 1-based within the page
	Column int // 1-based within the line
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("cell %q (%U) at page %d, line %d, column %d has no ready-format mapping",
		e.Cell, e.Cell, e.Page, e.Line, e.Column)
}

func (t *nabcc) Transcode(ctx context.Context, doc *braille.Document) (string, error) {
	var sb strings.Builder
	sb.Grow(doc.CellCount() + doc.LineCount() + doc.PageCount())
	for pi, page := range doc.Pages {
		if err := checkCancelled(ctx); err != nil {
			return "", err
		}
		if pi > 0 {
			sb.WriteByte('\f')
		}
		for li, line := range page.Lines {
			for ci, cell := range line {
				ch, ok := CharForCell(cell)
				if !ok {
					return "", &TranscodeError{Cell: rune(cell), Page: pi + 1, Line: li + 1, Column: ci + 1}
				}
				sb.WriteByte(ch)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

func (t *nabcc) TranscodeText(ctx context.Context, text string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(text))
	page, line, col := 1, 1, 1
	for _, r := range text {
		switch r {
		case '\n':
			sb.WriteByte('\n')
			line++
			col = 1
			continue
		case '\f':
			if err := checkCancelled(ctx); err != nil {
				return "", err
			}
			sb.WriteByte('\f')
			page++
			line, col = 1, 1
			continue
		}
		ch, ok := CharForCell(braille.Cell(r))
		if !ok {
			return "", &TranscodeError{Cell: r, Page: page, Line: line, Column: col}
		}
		sb.WriteByte(ch)
		col++
	}
	return sb.String(), nil
}

func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
