package paperroll_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/puzzlith/paperroll"
)

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects empty, ragged, or
// misspelled inputs with the documented sentinels.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		err  error
	}{
		{"Empty", "", paperroll.ErrEmptyGrid},
		{"WhitespaceOnly", "\n \t\n", paperroll.ErrEmptyGrid},
		{"RaggedSecondRow", ".@.\n.@\n...", paperroll.ErrNonRectangular},
		{"RaggedLastRow", "..\n..\n.", paperroll.ErrNonRectangular},
		{"BlankInteriorLine", ".@\n\n@.", paperroll.ErrNonRectangular},
		{"InvalidCells", ".@x\n@.#", paperroll.ErrInvalidCell},
		{"LeadingSpace", " .@\n.@.", paperroll.ErrInvalidCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := paperroll.Parse(tc.raw)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.raw, err, tc.err)
			}
		})
	}
}

// TestParse_InvalidCellCount checks that the error message reports how
// many cells fell outside the alphabet, so corrupt files are triaged
// without re-scanning by hand.
func TestParse_InvalidCellCount(t *testing.T) {
	_, err := paperroll.Parse(".@x\n@?#")
	if !errors.Is(err, paperroll.ErrInvalidCell) {
		t.Fatalf("Parse error = %v; want ErrInvalidCell", err)
	}
	if !strings.Contains(err.Error(), "3 invalid") {
		t.Errorf("error %q does not mention the 3 invalid cells", err)
	}
}

// TestParse_Tolerance verifies that trailing whitespace and CRLF line
// endings are stripped by the parser itself.
func TestParse_Tolerance(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"TrailingNewline", "..\n@@\n"},
		{"TrailingBlankLines", "..\n@@\n\n\n"},
		{"TrailingSpaces", "..\n@@ \t "},
		{"CRLF", "..\r\n@@\r\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := paperroll.Parse(tc.raw)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tc.raw, err)
			}
			if g.Width != 2 || g.Height != 2 {
				t.Errorf("dimensions = %d×%d; want 2×2", g.Width, g.Height)
			}
		})
	}
}

// TestParse_SingleCell covers the 1×1 corner cases.
func TestParse_SingleCell(t *testing.T) {
	g, err := paperroll.Parse("@")
	if err != nil {
		t.Fatalf("Parse(\"@\") error: %v", err)
	}
	if g.Width != 1 || g.Height != 1 {
		t.Fatalf("dimensions = %d×%d; want 1×1", g.Width, g.Height)
	}
	if c, err := g.At(0, 0); err != nil || c != paperroll.Roll {
		t.Errorf("At(0,0) = %v, %v; want Roll, nil", c, err)
	}
}

//----------------------------------------------------------------------------//
// Bounds and Accessor Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 4×3 grid, including negatives and
// the exclusive upper edges.
func TestInBounds(t *testing.T) {
	g, err := paperroll.Parse(".@@.\n@@@@\n.@@.")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	valid := [][2]int{{0, 0}, {3, 0}, {0, 2}, {3, 2}, {2, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {4, 3}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestAt_Strict verifies that external queries never clamp: every
// out-of-range coordinate fails with ErrOutOfRange.
func TestAt_Strict(t *testing.T) {
	g, err := paperroll.Parse(".@@.\n@@@@\n.@@.")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if c, err := g.At(1, 0); err != nil || c != paperroll.Roll {
		t.Errorf("At(1,0) = %v, %v; want Roll, nil", c, err)
	}
	if c, err := g.At(0, 0); err != nil || c != paperroll.Empty {
		t.Errorf("At(0,0) = %v, %v; want Empty, nil", c, err)
	}

	outside := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}}
	for _, xy := range outside {
		if _, err := g.At(xy[0], xy[1]); !errors.Is(err, paperroll.ErrOutOfRange) {
			t.Errorf("At(%d,%d) error = %v; want ErrOutOfRange", xy[0], xy[1], err)
		}
		if _, err := g.IsRoll(xy[0], xy[1]); !errors.Is(err, paperroll.ErrOutOfRange) {
			t.Errorf("IsRoll(%d,%d) error = %v; want ErrOutOfRange", xy[0], xy[1], err)
		}
	}
}

// TestCell_Rune pins the render alphabet.
func TestCell_Rune(t *testing.T) {
	cases := []struct {
		cell paperroll.Cell
		want rune
	}{
		{paperroll.Empty, '.'},
		{paperroll.Roll, '@'},
		{paperroll.AccessibleRoll, 'X'},
		{paperroll.Invalid, '!'},
	}
	for _, tc := range cases {
		if got := tc.cell.Rune(); got != tc.want {
			t.Errorf("Cell(%d).Rune() = %q; want %q", tc.cell, got, tc.want)
		}
	}
}
