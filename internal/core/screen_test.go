package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(2, 3, '^', ColorBrightRed)
	cell := s.GetCell(2, 3)
	if cell.Rune != '^' {
		t.Errorf("GetCell rune = %q, expected '^'", cell.Rune)
	}
	if cell.Color != ColorBrightRed {
		t.Errorf("GetCell color = %d, expected ColorBrightRed", cell.Color)
	}

	// Plain Set should use the default color
	s.Set(2, 3, '#')
	if s.GetCell(2, 3).Color != ColorDefault {
		t.Error("Set should reset the cell color to default")
	}

	// Out of bounds GetCell returns a blank default cell
	blank := s.GetCell(-1, -1)
	if blank.Rune != ' ' || blank.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v", blank)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")
	if s.Row(1) != "  hello             " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	// Clipped text should not panic
	s.DrawText(18, 2, "world")
	if s.Get(18, 2) != 'w' || s.Get(19, 2) != 'o' {
		t.Error("Clipped text should draw visible prefix")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("centered text misplaced, row = %q", s.Row(1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(3, 3, 'X')

	s.Resize(20, 20)
	if s.Width() != 20 || s.Height() != 20 {
		t.Errorf("Resize dims = %dx%d", s.Width(), s.Height())
	}
	if s.Get(3, 3) != 'X' {
		t.Error("Resize should preserve existing content")
	}

	s.Resize(2, 2)
	if s.Get(1, 1) != ' ' {
		t.Error("Shrunk screen should be in bounds and blank where appropriate")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() should have 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", str)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("Box top corners missing")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("Box bottom corners missing")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges missing")
	}
}
