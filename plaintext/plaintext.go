// Package plaintext extracts plain text from transcript sources before
// braille encoding. Enhanced transcripts arrive as markdown or HTML as
// often as plain text; the encoder consumes only the latter.
package plaintext

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Format identifies the source markup of a transcript.
type Format int

const (
	Plain Format = iota
	Markdown
	HTML
)

func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case Markdown:
		return "markdown"
	case HTML:
		return "html"
	default:
		return "unknown"
	}
}

// Converter extracts plain text from one source format.
type Converter interface {
	Convert(source string) (string, error)
	Name() string
}

// ForFormat returns the converter for f.
func ForFormat(f Format) Converter {
	switch f {
	case Markdown:
		return markdownConverter{}
	case HTML:
		return htmlConverter{}
	default:
		return plainConverter{}
	}
}

// Extract converts source text of the given format to plain text.
func Extract(source string, f Format) (string, error) {
	out, err := ForFormat(f).Convert(source)
	if err != nil {
		return "", fmt.Errorf("%s extraction: %w", f, err)
	}
	return out, nil
}

// Normalize applies NFC so that composed and decomposed forms encode to
// the same cells, and strips a leading byte order mark.
func Normalize(s string) string {
	return strings.TrimPrefix(norm.NFC.String(s), "\ufeff")
}

// plainConverter passes input through unchanged: plain text is already
// what the encoder consumes.
type plainConverter struct{}

func (plainConverter) Name() string { return "plaintext" }

func (plainConverter) Convert(source string) (string, error) {
	return source, nil
}

// writeBlock appends a block of text separated from the previous block by
// a blank line, preserving paragraph boundaries for the encoder.
func writeBlock(sb *strings.Builder, text string) {
	if text == "" {
		return
	}
	if sb.Len() > 0 {
		sb.WriteByte('\n')
	}
	sb.WriteString(text)
	sb.WriteByte('\n')
}
