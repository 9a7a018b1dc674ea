package buffer

import "testing"

func TestMoveHorizontal(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		dir    Direction
		want   int
	}{
		{"left at start", "abc", 0, Left, 0},
		{"left", "abc", 2, Left, 1},
		{"right", "abc", 1, Right, 2},
		{"right at end", "abc", 3, Right, 3},
		{"right crosses newline", "a\nb", 1, Right, 2},
		{"left crosses newline", "a\nb", 2, Left, 1},
		{"right on empty", "", 0, Right, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithText(tt.text))
			b.SetCursor(tt.cursor)
			b.Move(tt.dir)
			if b.Cursor() != tt.want {
				t.Errorf("Cursor() = %d, want %d", b.Cursor(), tt.want)
			}
		})
	}
}

func TestMoveVertical(t *testing.T) {
	// Lines of lengths 5, 2 and 8.
	const text = "aaaaa\nbb\ncccccccc"

	tests := []struct {
		name   string
		cursor int
		moves  []Direction
		want   int
	}{
		{"up at first line", 3, []Direction{Up}, 3},
		{"down at last line", 12, []Direction{Down}, 12},
		{"down clamps to short line", 4, []Direction{Down}, 8},
		{"sticky column through short line", 4, []Direction{Down, Down}, 13},
		{"sticky column back up", 13, []Direction{Up, Up}, 4},
		{"up clamps to line end", 16, []Direction{Up}, 8},
		{"horizontal move resets sticky column", 4, []Direction{Down, Left, Down}, 10},
		{"boundary move keeps position", 1, []Direction{Up, Down}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithText(text))
			b.SetCursor(tt.cursor)
			for _, d := range tt.moves {
				b.Move(d)
			}
			if b.Cursor() != tt.want {
				t.Errorf("Cursor() = %d, want %d (line %d, col %d)", b.Cursor(), tt.want, b.Line(), b.Column())
			}
		})
	}
}

func TestMoveVerticalMultiByte(t *testing.T) {
	b := New(WithText("世界世界\nab"))
	b.SetCursor(3)
	b.Move(Down)
	if b.Line() != 1 || b.Column() != 2 {
		t.Errorf("line %d col %d, want line 1 col 2", b.Line(), b.Column())
	}
}

func TestEditResetsStickyColumn(t *testing.T) {
	b := New(WithText("aaaaa\nbb\ncccccccc"))
	b.SetCursor(4)
	b.Move(Down) // line 1, col 2
	b.Insert("x") // line 1, col 3
	b.Move(Down)
	if b.Line() != 2 || b.Column() != 3 {
		t.Errorf("line %d col %d, want line 2 col 3", b.Line(), b.Column())
	}
}

func TestDirectionString(t *testing.T) {
	for d, want := range map[Direction]string{Left: "left", Right: "right", Up: "up", Down: "down", Direction(9): "unknown"} {
		if got := d.String(); got != want {
			t.Errorf("Direction(%d).String() = %q, want %q", d, got, want)
		}
	}
}
