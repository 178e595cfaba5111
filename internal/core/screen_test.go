package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if s.Get(3, 2) != '#' {
		t.Errorf("Get(3, 2) = %q, expected '#'", s.Get(3, 2))
	}

	// Untouched cells are spaces
	if s.Get(0, 0) != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", s.Get(0, 0))
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Should not panic
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')

	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(2, 1, '▓', ColorGreen)

	cell := s.GetCell(2, 1)
	if cell.Rune != '▓' || cell.Color != ColorGreen {
		t.Errorf("GetCell(2, 1) = %+v, expected green '▓'", cell)
	}

	// Plain Set writes the default color
	s.Set(2, 1, 'x')
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Set should reset color to default")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, '#', ColorRed)

	s.Clear()

	if s.Get(1, 1) != ' ' || s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset runes and colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawText(2, 1, "hello")
	if s.Row(1)[2:7] != "hello" {
		t.Errorf("Row(1) = %q, expected hello at offset 2", s.Row(1))
	}

	// Clipped text must not panic
	s.DrawText(18, 0, "overflow")
	if s.Get(19, 0) != 'v' {
		t.Errorf("Get(19, 0) = %q, expected 'v'", s.Get(19, 0))
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 4)

	s.DrawHLine(0, 3, 10, '═', ColorGray)
	if s.Row(3) != strings.Repeat("═", 10) {
		t.Errorf("Row(3) = %q, expected full line", s.Row(3))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawRect(NewRect(2, 2, 3, 2), '▓', ColorGreen)

	for y := 2; y < 4; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '▓' {
				t.Errorf("cell (%d, %d) = %q, expected '▓'", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(5, 2) != ' ' {
		t.Error("DrawRect should not spill past its width")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, '#')

	s.Resize(20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size after Resize = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if s.Get(2, 2) != '#' {
		t.Error("Resize should preserve existing content")
	}

	// Shrinking clips content without panicking
	s.Resize(3, 3)
	if s.Get(2, 2) != '#' {
		t.Error("content inside the new bounds should survive shrinking")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if s.String() != want {
		t.Errorf("String() = %q, expected %q", s.String(), want)
	}
}
