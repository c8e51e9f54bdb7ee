package embosser

import "github.com/wudi/braillekit/braille"

// North American Braille Computer Code: a bijection between the 64 six-dot
// cells and ASCII 0x20-0x5F. Indexed by dot mask. Published as the BRF
// interchange alphabet; embosser firmware consumes exactly this set.
var nabccChars = [64]byte{
	' ',  // 0x00, blank
	'A',  // 0x01, dot 1
	'1',  // 0x02, dot 2
	'B',  // 0x03, dots 1-2
	'\'', // 0x04, dot 3
	'K',  // 0x05, dots 1-3
	'2',  // 0x06, dots 2-3
	'L',  // 0x07, dots 1-2-3
	'@',  // 0x08, dot 4
	'C',  // 0x09, dots 1-4
	'I',  // 0x0A, dots 2-4
	'F',  // 0x0B, dots 1-2-4
	'/',  // 0x0C, dots 3-4
	'M',  // 0x0D, dots 1-3-4
	'S',  // 0x0E, dots 2-3-4
	'P',  // 0x0F, dots 1-2-3-4
	'"',  // 0x10, dot 5
	'E',  // 0x11, dots 1-5
	'3',  // 0x12, dots 2-5
	'H',  // 0x13, dots 1-2-5
	'9',  // 0x14, dots 3-5
	'O',  // 0x15, dots 1-3-5
	'6',  // 0x16, dots 2-3-5
	'R',  // 0x17, dots 1-2-3-5
	'^',  // 0x18, dots 4-5
	'D',  // 0x19, dots 1-4-5
	'J',  // 0x1A, dots 2-4-5
	'G',  // 0x1B, dots 1-2-4-5
	'>',  // 0x1C, dots 3-4-5
	'N',  // 0x1D, dots 1-3-4-5
	'T',  // 0x1E, dots 2-3-4-5
	'Q',  // 0x1F, dots 1-2-3-4-5
	',',  // 0x20, dot 6
	'*',  // 0x21, dots 1-6
	'5',  // 0x22, dots 2-6
	'<',  // 0x23, dots 1-2-6
	'-',  // 0x24, dots 3-6
	'U',  // 0x25, dots 1-3-6
	'8',  // 0x26, dots 2-3-6
	'V',  // 0x27, dots 1-2-3-6
	'.',  // 0x28, dots 4-6
	'%',  // 0x29, dots 1-4-6
	'[',  // 0x2A, dots 2-4-6
	'$',  // 0x2B, dots 1-2-4-6
	'+',  // 0x2C, dots 3-4-6
	'X',  // 0x2D, dots 1-3-4-6
	'!',  // 0x2E, dots 2-3-4-6
	'&',  // 0x2F, dots 1-2-3-4-6
	';',  // 0x30, dots 5-6
	':',  // 0x31, dots 1-5-6
	'4',  // 0x32, dots 2-5-6
	'\\', // 0x33, dots 1-2-5-6
	'0',  // 0x34, dots 3-5-6
	'Z',  // 0x35, dots 1-3-5-6
	'7',  // 0x36, dots 2-3-5-6
	'(',  // 0x37, dots 1-2-3-5-6
	'_',  // 0x38, dots 4-5-6
	'?',  // 0x39, dots 1-4-5-6
	'W',  // 0x3A, dots 2-4-5-6
	']',  // 0x3B, dots 1-2-4-5-6
	'#',  // 0x3C, dots 3-4-5-6
	'Y',  // 0x3D, dots 1-3-4-5-6
	')',  // 0x3E, dots 2-3-4-5-6
	'=',  // 0x3F, dots 1-2-3-4-5-6
}

// cellForChar is the inverse table, indexed by ASCII char minus 0x20.
var cellForChar = func() [64]braille.Cell {
	var inv [64]braille.Cell
	for mask, ch := range nabccChars {
		inv[ch-0x20] = braille.Blank + braille.Cell(mask)
	}
	return inv
}()

// CharForCell returns the NABCC character for a six-dot cell. Cells with
// dots 7 or 8 and runes outside the braille block have no mapping.
func CharForCell(c braille.Cell) (byte, bool) {
	m := c.Mask()
	if m < 0 || m > 0x3F {
		return 0, false
	}
	return nabccChars[m], true
}

// CellForChar returns the cell a permitted ready-format character encodes.
// It is the exact inverse of CharForCell over the permitted alphabet.
func CellForChar(ch byte) (braille.Cell, bool) {
	if ch < 0x20 || ch > 0x5F {
		return 0, false
	}
	return cellForChar[ch-0x20], true
}

// Permitted reports whether ch belongs to the ready-format alphabet.
func Permitted(ch byte) bool {
	return ch >= 0x20 && ch <= 0x5F
}
