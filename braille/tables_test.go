package braille

import "testing"

func TestLetterCellsInjective(t *testing.T) {
	seen := make(map[Cell]rune)
	for r := 'a'; r <= 'z'; r++ {
		c, ok := LetterCell(r)
		if !ok {
			t.Fatalf("no cell for %q", r)
		}
		if !c.IsBraille() {
			t.Errorf("cell for %q is outside the braille block: %U", r, rune(c))
		}
		if prev, dup := seen[c]; dup {
			t.Errorf("letters %q and %q share cell %U", prev, r, rune(c))
		}
		seen[c] = r
	}
}

func TestLetterCellCaseInsensitive(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		lower, _ := LetterCell(r)
		upper, ok := LetterCell(r - 'a' + 'A')
		if !ok {
			t.Fatalf("no cell for %q", r-'a'+'A')
		}
		if lower != upper {
			t.Errorf("case-sensitive mapping for %q: %U vs %U", r, rune(lower), rune(upper))
		}
	}
}

func TestDigitCellsReuseLetters(t *testing.T) {
	pairs := []struct {
		digit, letter rune
	}{
		{'1', 'a'}, {'2', 'b'}, {'3', 'c'}, {'4', 'd'}, {'5', 'e'},
		{'6', 'f'}, {'7', 'g'}, {'8', 'h'}, {'9', 'i'}, {'0', 'j'},
	}
	for _, p := range pairs {
		dc, ok := DigitCell(p.digit)
		if !ok {
			t.Fatalf("no cell for digit %q", p.digit)
		}
		lc, _ := LetterCell(p.letter)
		if dc != lc {
			t.Errorf("digit %q maps to %U, want letter %q cell %U", p.digit, rune(dc), p.letter, rune(lc))
		}
	}
}

func TestCellForStable(t *testing.T) {
	for _, r := range "the quick brown fox 0123456789 .,;:!?'\"-()/" {
		first, ok := CellFor(r)
		if !ok {
			t.Fatalf("no cell for %q", r)
		}
		for i := 0; i < 3; i++ {
			if c, _ := CellFor(r); c != first {
				t.Fatalf("unstable mapping for %q: %U then %U", r, rune(first), rune(c))
			}
		}
	}
}

func TestCellForUnmapped(t *testing.T) {
	for _, r := range []rune{'é', '中', '@', '\n', '\t', 0x2603} {
		if c, ok := CellFor(r); ok {
			t.Errorf("unexpected mapping for %q: %U", r, rune(c))
		}
	}
}

func TestLetterForRoundTrip(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		c, _ := LetterCell(r)
		got, ok := LetterFor(c)
		if !ok || got != r {
			t.Errorf("LetterFor(%U) = %q, %v; want %q", rune(c), got, ok, r)
		}
	}
}

func TestFromDots(t *testing.T) {
	if c := FromDots(3, 4, 5, 6); c != NumberIndicator {
		t.Errorf("FromDots(3,4,5,6) = %U, want %U", rune(c), rune(NumberIndicator))
	}
	if c := FromDots(6); c != CapitalIndicator {
		t.Errorf("FromDots(6) = %U, want %U", rune(c), rune(CapitalIndicator))
	}
	if c := FromDots(); c != Blank {
		t.Errorf("FromDots() = %U, want blank", rune(c))
	}
	if c := FromDots(0, 9); c != Blank {
		t.Errorf("out-of-range dots raised cell %U", rune(c))
	}
}

func TestCellDots(t *testing.T) {
	c, _ := LetterCell('t') // dots 2-3-4-5
	got := c.Dots()
	want := []int{2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("Dots() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Dots() = %v, want %v", got, want)
		}
	}
	if Blank.Dots() != nil {
		t.Errorf("blank cell reports raised dots")
	}
	if Cell('x').Mask() != -1 {
		t.Errorf("pass-through rune has a dot mask")
	}
}
