package pipeline_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/wudi/braillekit/braille"
	"github.com/wudi/braillekit/embosser"
	"github.com/wudi/braillekit/pipeline"
	"github.com/wudi/braillekit/plaintext"
)

func convert(t *testing.T, source string, opts ...pipeline.Option) *pipeline.Result {
	t.Helper()
	result, err := pipeline.NewDefault(braille.DefaultConfig(), opts...).Convert(context.Background(), source)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	return result
}

func TestConvertTheMoon(t *testing.T) {
	result := convert(t, "The Moon")
	if result.Document.PageCount() != 1 {
		t.Fatalf("pages = %d, want 1", result.Document.PageCount())
	}
	if result.Validation == nil || !result.Validation.Valid {
		t.Fatalf("validation = %+v, want valid", result.Validation)
	}
	if len(result.Validation.Errors) != 0 {
		t.Errorf("unexpected errors: %+v", result.Validation.Errors)
	}
	if !strings.HasPrefix(result.Embosser, ",THE ,MOON") {
		t.Errorf("ready format = %q", result.Embosser[:20])
	}
	// two content words plus the page-number footer
	if result.Analysis == nil || result.Analysis.WordCount != 3 {
		t.Errorf("analysis = %+v, want 3 words", result.Analysis)
	}
}

func TestConvertLinePropertyHolds(t *testing.T) {
	// every line exactly 40 cells except possibly the very last
	inputs := []string{
		"short",
		"a line\nwith breaks\n\nand a blank",
		strings.Repeat("lorem ipsum dolor sit amet ", 200),
		strings.Repeat("x", 39) + "\n" + strings.Repeat("y", 41),
	}
	for _, in := range inputs {
		result := convert(t, in)
		lines := strings.Split(strings.ReplaceAll(result.Embosser, "\f", ""), "\n")
		lines = lines[:len(lines)-1] // every line is \n-terminated
		for i, line := range lines {
			if i == len(lines)-1 {
				if len(line) > 40 {
					t.Errorf("final line has %d cells", len(line))
				}
				continue
			}
			if len(line) != 40 {
				t.Errorf("input %q: line %d has %d cells, want 40", in[:min(len(in), 12)], i+1, len(line))
			}
		}
	}
}

func TestConvertPageGeometry(t *testing.T) {
	result := convert(t, strings.Repeat("filler text for several pages ", 300))
	breaks := strings.Count(result.Embosser, "\f")
	if breaks != result.Document.PageCount()-1 {
		t.Errorf("form feeds = %d, want %d", breaks, result.Document.PageCount()-1)
	}
	if result.Document.PageCount() < 2 {
		t.Fatalf("fixture too small: %d pages", result.Document.PageCount())
	}
	if !result.Validation.Valid {
		t.Errorf("multi-page output invalid: %+v", result.Validation.Errors)
	}
}

func TestConvertEmptyInput(t *testing.T) {
	result := convert(t, "")
	if result.Braille != "" || result.Embosser != "" {
		t.Errorf("empty input produced output: %q / %q", result.Braille, result.Embosser)
	}
	if !result.Validation.Valid {
		t.Errorf("empty output invalid: %+v", result.Validation.Errors)
	}
	if result.Analysis.CharacterCount != 0 {
		t.Errorf("analysis counts non-zero: %+v", result.Analysis)
	}
}

func TestConvertRevalidationDeterministic(t *testing.T) {
	const source = "Determinism check 42.\nSecond line"
	first := convert(t, source)
	second := convert(t, source)
	a, err := json.Marshal(first.Validation)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, _ := json.Marshal(second.Validation)
	if string(a) != string(b) {
		t.Errorf("reports differ:\n%s\n%s", a, b)
	}
	if first.Embosser != second.Embosser {
		t.Errorf("ready-format output differs between runs")
	}
}

func TestConvertTranscodeErrorFatal(t *testing.T) {
	_, err := pipeline.NewDefault(braille.DefaultConfig()).Convert(context.Background(), "snowman ☃ here")
	if err == nil {
		t.Fatalf("expected transcode error")
	}
	var te *embosser.TranscodeError
	if !errors.As(err, &te) {
		t.Fatalf("error is %T, want *TranscodeError", err)
	}
}

func TestConvertMarkdownSource(t *testing.T) {
	result := convert(t, "# Title\n\nSome **bold** text.", pipeline.WithSourceFormat(plaintext.Markdown))
	if strings.ContainsRune(result.Braille, '*') {
		t.Errorf("markdown markup leaked into braille: %q", result.Braille)
	}
	if !result.Validation.Valid {
		t.Errorf("markdown conversion invalid: %+v", result.Validation.Errors)
	}
	if result.Analysis.ParagraphCount != 2 {
		t.Errorf("paragraphs = %d, want 2 (title and body)", result.Analysis.ParagraphCount)
	}
}

func TestConvertSkipsBranches(t *testing.T) {
	cfg := braille.DefaultConfig()
	cfg.ValidateOutput = false
	result, err := pipeline.NewDefault(cfg, pipeline.WithAnalysis(false)).Convert(context.Background(), "hi")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if result.Validation != nil || result.Analysis != nil {
		t.Errorf("disabled branches still ran")
	}
}

func TestConvertConcurrentUse(t *testing.T) {
	p := pipeline.NewDefault(braille.DefaultConfig())
	sources := []string{"First document", "Second one\nwith lines", "Third 123", "Fourth (and last)"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		for _, src := range sources {
			wg.Add(1)
			go func(src string) {
				defer wg.Done()
				result, err := p.Convert(context.Background(), src)
				if err != nil {
					t.Errorf("convert %q: %v", src, err)
					return
				}
				if !result.Validation.Valid {
					t.Errorf("convert %q: invalid output", src)
				}
			}(src)
		}
	}
	wg.Wait()
}
