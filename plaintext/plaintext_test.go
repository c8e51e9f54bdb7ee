package plaintext_test

import (
	"strings"
	"testing"

	"github.com/wudi/braillekit/plaintext"
)

func extract(t *testing.T, src string, f plaintext.Format) string {
	t.Helper()
	out, err := plaintext.Extract(src, f)
	if err != nil {
		t.Fatalf("extract %v: %v", f, err)
	}
	return out
}

func TestPlainPassThrough(t *testing.T) {
	src := "already plain\ntext"
	if got := extract(t, src, plaintext.Plain); got != src {
		t.Errorf("plain conversion altered input: %q", got)
	}
}

func TestMarkdownHeadingsAndParagraphs(t *testing.T) {
	src := "# Title\n\nFirst paragraph.\n\nSecond paragraph."
	got := extract(t, src, plaintext.Markdown)
	want := "Title\n\nFirst paragraph.\n\nSecond paragraph."
	if got != want {
		t.Errorf("markdown extraction = %q, want %q", got, want)
	}
}

func TestMarkdownStripsInlineMarkup(t *testing.T) {
	got := extract(t, "Some **bold** and *italic* text.", plaintext.Markdown)
	if strings.ContainsAny(got, "*") {
		t.Errorf("markup survived extraction: %q", got)
	}
	if !strings.Contains(got, "bold") || !strings.Contains(got, "italic") {
		t.Errorf("content lost in extraction: %q", got)
	}
}

func TestMarkdownList(t *testing.T) {
	src := "Intro.\n\n- first\n- second\n"
	got := extract(t, src, plaintext.Markdown)
	want := "Intro.\n\n- first\n- second"
	if got != want {
		t.Errorf("markdown list = %q, want %q", got, want)
	}
}

func TestHTMLExtraction(t *testing.T) {
	src := "<h1>Title</h1><p>A <b>bold</b> move.</p><script>var x=1;</script>"
	got := extract(t, src, plaintext.HTML)
	want := "Title\n\nA bold move."
	if got != want {
		t.Errorf("html extraction = %q, want %q", got, want)
	}
}

func TestHTMLList(t *testing.T) {
	src := "<p>Intro.</p><ul><li>first</li><li>second</li></ul>"
	got := extract(t, src, plaintext.HTML)
	want := "Intro.\n\n- first\n- second"
	if got != want {
		t.Errorf("html list = %q, want %q", got, want)
	}
}

func TestHTMLCollapsesWhitespace(t *testing.T) {
	src := "<p>spread\n  over\n  lines</p>"
	got := extract(t, src, plaintext.HTML)
	if got != "spread over lines" {
		t.Errorf("whitespace not collapsed: %q", got)
	}
}

func TestNormalizeNFC(t *testing.T) {
	decomposed := "cafe\u0301" // e + combining acute
	composed := "caf\u00e9"
	if got := plaintext.Normalize(decomposed); got != composed {
		t.Errorf("Normalize(%q) = %q, want %q", decomposed, got, composed)
	}
}

func TestNormalizeStripsBOM(t *testing.T) {
	if got := plaintext.Normalize("\ufeffhello"); got != "hello" {
		t.Errorf("BOM survived: %q", got)
	}
}

func TestConverterNames(t *testing.T) {
	cases := map[plaintext.Format]string{
		plaintext.Plain:    "plaintext",
		plaintext.Markdown: "markdown",
		plaintext.HTML:     "html",
	}
	for f, want := range cases {
		if got := plaintext.ForFormat(f).Name(); got != want {
			t.Errorf("ForFormat(%v).Name() = %q, want %q", f, got, want)
		}
	}
}
