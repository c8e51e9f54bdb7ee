// Package analyzer derives descriptive statistics and accessibility
// metrics from encoded braille text.
package analyzer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wudi/braillekit/braille"
)

// WordsPerMinute is the assumed tactile reading speed. 125 wpm is the
// published mean for experienced braille readers (roughly half the
// sighted print-reading average).
const WordsPerMinute = 125

// topPatternCount bounds the TopPatterns list.
const topPatternCount = 10

// PatternCount pairs a braille cell with its occurrence count.
type PatternCount struct {
	Cell  string `json:"cell"`
	Count int    `json:"count"`
}

// Report is the analysis result. Derived solely from its inputs; never
// mutated after return.
type Report struct {
	CharacterCount     int            `json:"character_count"`
	WordCount          int            `json:"word_count"`
	LineCount          int            `json:"line_count"`
	ParagraphCount     int            `json:"paragraph_count"`
	ReadingTimeMinutes float64        `json:"reading_time_minutes"`
	PatternFrequency   map[string]int `json:"pattern_frequency"`
	TopPatterns        []PatternCount `json:"top_patterns,omitempty"`
	ConversionRatio    *float64       `json:"conversion_ratio,omitempty"`
	AccessibilityNotes []string       `json:"accessibility_notes,omitempty"`
}

// Analyzer computes a Report over braille text. The original text is
// optional; without it the conversion ratio is omitted.
type Analyzer interface {
	Analyze(ctx context.Context, brailleText, originalText string) (*Report, error)
}

// New returns the default analyzer. It never fails on any input.
func New() Analyzer {
	return &textAnalyzer{}
}

type textAnalyzer struct{}

func (a *textAnalyzer) Analyze(ctx context.Context, brailleText, originalText string) (*Report, error) {
	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}

	report := &Report{
		PatternFrequency: make(map[string]int),
	}

	passThrough := 0
	capitals := 0
	for _, r := range brailleText {
		switch r {
		case '\n', '\f':
			continue
		}
		report.CharacterCount++
		c := braille.Cell(r)
		if !c.IsBraille() {
			passThrough++
			continue
		}
		report.PatternFrequency[string(r)]++
		if c == braille.CapitalIndicator {
			capitals++
		}
	}

	report.WordCount = len(strings.FieldsFunc(brailleText, isSeparator))
	report.LineCount, report.ParagraphCount = countLinesAndParagraphs(brailleText)
	report.ReadingTimeMinutes = float64(report.WordCount) / WordsPerMinute
	report.TopPatterns = topPatterns(report.PatternFrequency)

	if originalText != "" {
		ratio := float64(utf8.RuneCountInString(brailleText)) / float64(utf8.RuneCountInString(originalText))
		report.ConversionRatio = &ratio
	}

	report.AccessibilityNotes = notes(brailleText, report, passThrough, capitals)
	return report, nil
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || braille.Cell(r) == braille.Blank
}

// countLinesAndParagraphs counts rendered lines and the paragraph runs
// separated by blank lines (lines that are empty or all blank cells).
func countLinesAndParagraphs(text string) (lines, paragraphs int) {
	if text == "" {
		return 0, 0
	}
	split := strings.Split(strings.ReplaceAll(text, "\f", ""), "\n")
	if split[len(split)-1] == "" {
		split = split[:len(split)-1]
	}
	inParagraph := false
	for _, line := range split {
		lines++
		if strings.TrimFunc(line, isSeparator) == "" {
			inParagraph = false
			continue
		}
		if !inParagraph {
			paragraphs++
			inParagraph = true
		}
	}
	return lines, paragraphs
}

// topPatterns ranks cells by frequency. The blank cell is excluded: line
// fill would dominate every ranking.
func topPatterns(freq map[string]int) []PatternCount {
	ranked := make([]PatternCount, 0, len(freq))
	for cell, count := range freq {
		if cell == string(rune(braille.Blank)) {
			continue
		}
		ranked = append(ranked, PatternCount{Cell: cell, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Cell < ranked[j].Cell
	})
	if len(ranked) > topPatternCount {
		ranked = ranked[:topPatternCount]
	}
	return ranked
}

func notes(text string, report *Report, passThrough, capitals int) []string {
	var out []string
	if text != "" && !strings.ContainsRune(text, '\f') {
		out = append(out, "content fits on a single embosser page")
	}
	if passThrough > 0 {
		out = append(out, fmt.Sprintf("%d characters have no braille mapping and will not emboss", passThrough))
	}
	if report.WordCount > 0 && capitals > report.WordCount {
		out = append(out, "capitalization-heavy content; indicator cells add significant length")
	}
	if report.ReadingTimeMinutes > 60 {
		out = append(out, "reading time exceeds one hour; consider splitting into volumes")
	}
	return out
}

func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
