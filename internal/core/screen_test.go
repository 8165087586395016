package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 12)
	for y := 0; y < 4; y++ {
		if got := s.Row(y); got != want {
			t.Errorf("row %d = %q, want blanks", y, got)
		}
	}
}

func TestScreenPutClips(t *testing.T) {
	s := NewScreen(5, 3)
	s.Put(2, 1, '▲', ColorAlert)

	if got := s.At(2, 1); got != (Cell{Rune: '▲', Color: ColorAlert}) {
		t.Errorf("At(2, 1) = %+v", got)
	}

	for _, p := range [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 3}} {
		s.Put(p[0], p[1], 'X', ColorAlert)
		if got := s.At(p[0], p[1]); got != blankCell {
			t.Errorf("At(%d, %d) off screen = %+v, want blank", p[0], p[1], got)
		}
	}
	if strings.Contains(s.String(), "X") {
		t.Errorf("off-screen put leaked into buffer:\n%s", s)
	}
}

func TestScreenPrint(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"inside", 1, "EXIT", " EXIT   "},
		{"clipped right", 6, "EXIT", "      EX"},
		{"clipped left", -2, "EXIT", "IT      "},
		{"multibyte", 0, "♥♥♡", "♥♥♡     "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			s.Print(tc.x, 0, tc.text, ColorSuccess)
			if got := s.Row(0); got != tc.want {
				t.Errorf("Row(0) = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestScreenPrintCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.PrintCentered(1, "OOPS!", ColorAlert)

	x := (20 - 5) / 2
	if s.At(x, 1).Rune != 'O' || s.At(x+4, 1).Rune != '!' {
		t.Errorf("row 1 = %q", s.Row(1))
	}
	if s.At(x, 1).Color != ColorAlert {
		t.Errorf("centered text color = %d, want %d", s.At(x, 1).Color, ColorAlert)
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(6, 4)
	s.Fill(NewRect(4, 2, 5, 5), '=', ColorSolid)

	want := []string{
		"      ",
		"      ",
		"    ==",
		"    ==",
	}
	for y, w := range want {
		if got := s.Row(y); got != w {
			t.Errorf("row %d = %q, want %q", y, got, w)
		}
	}
	if s.At(5, 3).Color != ColorSolid {
		t.Error("Fill should set the color role")
	}
}

func TestScreenFrame(t *testing.T) {
	s := NewScreen(7, 5)
	s.Frame(NewRect(1, 1, 5, 3), ColorDefault)

	want := []string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" └───┘ ",
		"       ",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("frame:\n%s\nwant:\n%s", got, strings.Join(want, "\n"))
	}

	s.Clear()
	s.Frame(NewRect(0, 0, 1, 3), ColorDefault)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("a frame narrower than two cells should draw nothing")
	}
}

func TestScreenResizeBlanks(t *testing.T) {
	s := NewScreen(10, 4)
	s.Print(0, 0, "Level 1", ColorHighlight)

	s.Resize(6, 2)
	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 6x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      " {
		t.Errorf("after resize = %q, want blank", got)
	}

	s.Resize(-3, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should clamp to zero, got %dx%d", s.Width(), s.Height())
	}
}

func TestScreenRowOffScreen(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q", got)
	}
	if got := s.Row(2); got != "    " {
		t.Errorf("Row(2) = %q", got)
	}
}

func TestColorsListsRoles(t *testing.T) {
	roles := Colors()
	if len(roles) == 0 {
		t.Fatal("no color roles")
	}
	seen := make(map[Color]bool)
	for _, c := range roles {
		if c == ColorDefault {
			t.Error("Colors should not include ColorDefault")
		}
		if seen[c] {
			t.Errorf("duplicate role %d", c)
		}
		seen[c] = true
	}
}
