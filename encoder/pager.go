package encoder

import (
	"strconv"

	"github.com/wudi/braillekit/braille"
)

// pager re-flows a cell stream into the fixed page grid: lines of exactly
// LineLength cells packed into pages of exactly PageLength lines, with an
// optional page number footer as the last line of each page.
type pager struct {
	cfg   braille.Config
	pages []braille.Page
	lines []braille.Line
	cur   braille.Line
}

func newPager(cfg braille.Config) *pager {
	return &pager{cfg: cfg}
}

func (p *pager) append(cells []braille.Cell) {
	for _, c := range cells {
		p.cur = append(p.cur, c)
		if len(p.cur) == p.cfg.LineLength {
			p.flushLine()
		}
	}
}

// breakLine ends the current line at a hard break, filling it with blank
// cells to the configured width. An empty current line becomes a fully
// blank line, preserving paragraph separation.
func (p *pager) breakLine() {
	p.pad()
	p.flushLine()
}

func (p *pager) pad() {
	for len(p.cur) < p.cfg.LineLength {
		p.cur = append(p.cur, braille.Blank)
	}
}

func (p *pager) flushLine() {
	p.lines = append(p.lines, p.cur)
	p.cur = nil
	if len(p.lines) == p.cfg.ContentLines() {
		p.closePage()
	}
}

func (p *pager) closePage() {
	n := len(p.pages) + 1
	if p.cfg.IncludePageNumbers {
		p.lines = append(p.lines, p.footer(n))
	}
	p.pages = append(p.pages, braille.Page{Number: n, Lines: p.lines})
	p.lines = nil
}

// footer renders a right-aligned page number: blank fill, the number
// indicator, then the digit cells.
func (p *pager) footer(n int) braille.Line {
	digits := strconv.Itoa(n)
	num := make(braille.Line, 0, len(digits)+1)
	num = append(num, braille.NumberIndicator)
	for _, d := range digits {
		c, _ := braille.DigitCell(d)
		num = append(num, c)
	}
	pad := p.cfg.LineLength - len(num)
	if pad <= 0 {
		return num
	}
	line := make(braille.Line, pad, p.cfg.LineLength)
	for i := range line {
		line[i] = braille.Blank
	}
	return append(line, num...)
}

// finish flushes the pending line and closes the last page. Only the final
// line of the final page may stay short; with footers on, the footer is the
// final line, so pending content is padded like any other line.
func (p *pager) finish() *braille.Document {
	if len(p.cur) > 0 {
		if p.cfg.IncludePageNumbers {
			p.pad()
		}
		p.lines = append(p.lines, p.cur)
		p.cur = nil
	}
	if len(p.lines) > 0 {
		p.closePage()
	}
	return &braille.Document{Pages: p.pages}
}
