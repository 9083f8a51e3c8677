package snap

import "testing"

func TestCornerString(t *testing.T) {
	want := []string{"TOP_LEFT", "TOP_RIGHT", "BOTTOM_LEFT", "BOTTOM_RIGHT"}
	for i, c := range AllCorners {
		if c.String() != want[i] {
			t.Fatalf("corner %d = %q, want %q", i, c.String(), want[i])
		}
	}
	if CornerID(-1).String() != "INVALID" || CornerID(4).String() != "INVALID" {
		t.Fatalf("out of range corners should be INVALID")
	}
}

func TestParseCorner(t *testing.T) {
	tests := []struct {
		in   string
		want CornerID
		ok   bool
	}{
		{"TOP_LEFT", TopLeft, true},
		{"top right", TopRight, true},
		{" bottom-left ", BottomLeft, true},
		{"Bottom_Right", BottomRight, true},
		{"CENTER", -1, false},
		{"", -1, false},
	}
	for _, tt := range tests {
		got, ok := ParseCorner(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseCorner(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCornerEdges(t *testing.T) {
	if TopLeft.Right() || TopLeft.Bottom() {
		t.Fatalf("top-left edges wrong")
	}
	if !BottomRight.Right() || !BottomRight.Bottom() {
		t.Fatalf("bottom-right edges wrong")
	}
	if !TopRight.Right() || BottomLeft.Right() || !BottomLeft.Bottom() {
		t.Fatalf("mixed corner edges wrong")
	}
}
