package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, want 'X'", got)
	}

	s.SetCell(4, 2, 'Y', "#ff0000")
	cell := s.GetCell(4, 2)
	if cell.Rune != 'Y' || cell.FG != "#ff0000" {
		t.Errorf("GetCell(4, 2) = %+v, want {Y #ff0000}", cell)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Should not panic
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(0, 5, 'X')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, want space", got)
	}
	if got := s.Get(100, 100); got != ' ' {
		t.Errorf("Get(100, 100) = %q, want space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, 'X', "#00ff00")
	s.Clear()

	cell := s.GetCell(2, 2)
	if cell.Rune != ' ' || cell.FG != "" {
		t.Errorf("cell after Clear() = %+v, want default space", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 3, 'A')
	s.Set(9, 9, 'B')

	s.Resize(5, 5)
	if s.Width() != 5 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, want 5x5", s.Width(), s.Height())
	}
	if got := s.Get(2, 3); got != 'A' {
		t.Errorf("Get(2, 3) after shrink = %q, want 'A'", got)
	}

	s.Resize(20, 20)
	if got := s.Get(2, 3); got != 'A' {
		t.Errorf("Get(2, 3) after grow = %q, want 'A'", got)
	}
	if got := s.Get(9, 9); got != ' ' {
		t.Errorf("Get(9, 9) = %q, want space (clipped by shrink)", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place runes at expected positions")
	}

	// Clipped at the right edge, no panic
	s.DrawText(8, 1, "long")
	if s.Get(8, 1) != 'l' || s.Get(9, 1) != 'o' {
		t.Error("clipped DrawText did not place visible runes")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() has %d newlines, want 1", strings.Count(got, "\n"))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("top corners not drawn")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("bottom corners not drawn")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("edges not drawn")
	}
}
