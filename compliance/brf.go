package compliance

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/wudi/braillekit/braille"
)

type brfValidator struct {
	cfg braille.Config
}

func (v *brfValidator) Validate(ctx Context, content string) (*Report, error) {
	report := &Report{
		Standard: fmt.Sprintf("BRF %dx%d", v.cfg.LineLength, v.cfg.PageLength),
		Errors:   []Violation{},
		Warnings: []Violation{},
	}
	if content == "" {
		report.Valid = true
		return report, nil
	}

	pages := strings.Split(content, "\f")
	report.Stats.TotalPages = len(pages)
	for pi, chunk := range pages {
		if err := checkCancelled(ctx); err != nil {
			return nil, err
		}
		v.checkPage(report, chunk, pi+1, pi == len(pages)-1)
	}

	report.Valid = len(report.Errors) == 0
	return report, nil
}

func (v *brfValidator) checkPage(report *Report, chunk string, page int, final bool) {
	loc := fmt.Sprintf("page %d", page)
	if chunk == "" {
		report.Stats.PagesWrongLength++
		report.error("FF001", "misplaced page break produces an empty page", loc)
		return
	}

	if strings.HasSuffix(chunk, "\n") {
		chunk = chunk[:len(chunk)-1]
	} else if final {
		report.warning("STY003", "last line is not terminated by a line feed", loc)
	} else {
		// a page break inside an unterminated line is structural, not
		// cosmetic
		report.error("FF002", "page break is not at a line boundary", loc)
	}
	lines := strings.Split(chunk, "\n")
	report.Stats.TotalLines += len(lines)

	switch {
	case !final && len(lines) != v.cfg.PageLength:
		report.Stats.PagesWrongLength++
		report.error("PAG001", fmt.Sprintf("page has %d lines, want exactly %d", len(lines), v.cfg.PageLength), loc)
	case final && len(lines) > v.cfg.PageLength:
		report.Stats.PagesWrongLength++
		report.error("PAG002", fmt.Sprintf("final page has %d lines, want at most %d", len(lines), v.cfg.PageLength), loc)
	}

	blank := true
	for li, line := range lines {
		lineLoc := fmt.Sprintf("page %d, line %d", page, li+1)
		finalLine := final && li == len(lines)-1
		v.checkLine(report, line, lineLoc, finalLine)
		if strings.TrimRight(line, " ") != "" {
			blank = false
		}
	}
	if blank {
		report.warning("STY001", "page is entirely blank", loc)
	}
	if final && v.footerOnly(lines) {
		report.warning("STY002", "final page carries only a page number footer", loc)
	}
}

func (v *brfValidator) checkLine(report *Report, line, loc string, finalLine bool) {
	width := utf8.RuneCountInString(line)
	switch {
	case width > v.cfg.LineLength:
		report.Stats.LinesOverLength++
		report.error("LEN001", fmt.Sprintf("line has %d cells, want exactly %d", width, v.cfg.LineLength), loc)
	case width < v.cfg.LineLength && !finalLine:
		report.error("LEN002", fmt.Sprintf("line has %d cells, want exactly %d", width, v.cfg.LineLength), loc)
	}

	col := 0
	for _, r := range line {
		col++
		if r < 0x20 || r > 0x5F {
			report.Stats.InvalidCharacters++
			report.error("CHR001",
				fmt.Sprintf("character %q is outside the ready-format alphabet", r),
				fmt.Sprintf("%s, column %d", loc, col))
		}
	}
}

// footerOnly reports whether every line but the last is blank and the last
// is a right-aligned number-sign footer.
func (v *brfValidator) footerOnly(lines []string) bool {
	if !v.cfg.IncludePageNumbers || len(lines) == 0 {
		return false
	}
	for _, line := range lines[:len(lines)-1] {
		if strings.TrimRight(line, " ") != "" {
			return false
		}
	}
	return strings.HasPrefix(strings.TrimLeft(lines[len(lines)-1], " "), "#")
}

func (r *Report) error(code, desc, loc string) {
	r.Errors = append(r.Errors, Violation{Code: code, Description: desc, Location: loc, Severity: SeverityError})
}

func (r *Report) warning(code, desc, loc string) {
	r.Warnings = append(r.Warnings, Violation{Code: code, Description: desc, Location: loc, Severity: SeverityWarning})
}

func checkCancelled(ctx Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
