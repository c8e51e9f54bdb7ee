package braille

// Grade-1 glyph tables. Module-level, populated once, read-only afterwards;
// safe to share across concurrent calls.

// letterCells maps a-z (index 0-25) to their literary braille cells.
var letterCells = [26]Cell{
	blockBase + 0x01, // a, dot 1
	blockBase + 0x03, // b, dots 1-2
	blockBase + 0x09, // c, dots 1-4
	blockBase + 0x19, // d, dots 1-4-5
	blockBase + 0x11, // e, dots 1-5
	blockBase + 0x0B, // f, dots 1-2-4
	blockBase + 0x1B, // g, dots 1-2-4-5
	blockBase + 0x13, // h, dots 1-2-5
	blockBase + 0x0A, // i, dots 2-4
	blockBase + 0x1A, // j, dots 2-4-5
	blockBase + 0x05, // k, dots 1-3
	blockBase + 0x07, // l, dots 1-2-3
	blockBase + 0x0D, // m, dots 1-3-4
	blockBase + 0x1D, // n, dots 1-3-4-5
	blockBase + 0x15, // o, dots 1-3-5
	blockBase + 0x0F, // p, dots 1-2-3-4
	blockBase + 0x1F, // q, dots 1-2-3-4-5
	blockBase + 0x17, // r, dots 1-2-3-5
	blockBase + 0x0E, // s, dots 2-3-4
	blockBase + 0x1E, // t, dots 2-3-4-5
	blockBase + 0x25, // u, dots 1-3-6
	blockBase + 0x27, // v, dots 1-2-3-6
	blockBase + 0x3A, // w, dots 2-4-5-6
	blockBase + 0x2D, // x, dots 1-3-4-6
	blockBase + 0x3D, // y, dots 1-3-4-5-6
	blockBase + 0x35, // z, dots 1-3-5-6
}

// punctCells maps the supported punctuation set to literary braille cells.
// The double quote maps to the context-free dot-5 cell; literary open/close
// quotes are context dependent and the glyph table is a total stateless
// function.
var punctCells = map[rune]Cell{
	'.':  blockBase + 0x32, // dots 2-5-6
	',':  blockBase + 0x02, // dot 2
	';':  blockBase + 0x06, // dots 2-3
	':':  blockBase + 0x12, // dots 2-5
	'!':  blockBase + 0x16, // dots 2-3-5
	'?':  blockBase + 0x26, // dots 2-3-6
	'\'': blockBase + 0x04, // dot 3
	'"':  blockBase + 0x10, // dot 5
	'-':  blockBase + 0x24, // dots 3-6
	'(':  blockBase + 0x37, // dots 1-2-3-5-6
	')':  blockBase + 0x3E, // dots 2-3-4-5-6
	'/':  blockBase + 0x0C, // dots 3-4
}

// letterForCell is the inverse of letterCells, keyed by dot mask.
var letterForCell = func() map[Cell]rune {
	m := make(map[Cell]rune, len(letterCells))
	for i, c := range letterCells {
		m[c] = 'a' + rune(i)
	}
	return m
}()

// LetterCell returns the cell for an ASCII letter, case-insensitively.
// Capitalization is carried by the indicator cell, never by the letter cell.
func LetterCell(r rune) (Cell, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return letterCells[r-'a'], true
	case r >= 'A' && r <= 'Z':
		return letterCells[r-'A'], true
	}
	return 0, false
}

// DigitCell returns the cell for an ASCII digit. Digits reuse the first ten
// letter cells: 1-9 map to a-i and 0 maps to j; a preceding NumberIndicator
// marks the run as numeric.
func DigitCell(r rune) (Cell, bool) {
	switch {
	case r >= '1' && r <= '9':
		return letterCells[r-'1'], true
	case r == '0':
		return letterCells[9], true
	}
	return 0, false
}

// LetterFor returns the letter a-z represented by a letter cell.
func LetterFor(c Cell) (rune, bool) {
	r, ok := letterForCell[c]
	return r, ok
}

// CellFor returns the glyph-table cell for r: letters (case-insensitive),
// digits, space and the fixed punctuation set. The second result is false
// for any rune outside the supported alphabet.
func CellFor(r rune) (Cell, bool) {
	if c, ok := LetterCell(r); ok {
		return c, true
	}
	if c, ok := DigitCell(r); ok {
		return c, true
	}
	if r == ' ' {
		return Blank, true
	}
	if c, ok := punctCells[r]; ok {
		return c, true
	}
	return 0, false
}
