package csssyntax

import "testing"

func TestNormalizeInputLineEndings(t *testing.T) {
	s := NewSource("a\r\nb\rc\fd\x00e")
	if s.Contents != "a\nb\nc\nd�e" {
		t.Fatalf("unexpected normalized contents: %q", s.Contents)
	}
}

func TestSourceLineColumn(t *testing.T) {
	s := NewSource("abc\ndef\nghi")
	cases := []struct {
		offset int
		want   LineColumn
	}{
		{0, LineColumn{1, 1}},
		{3, LineColumn{1, 4}},
		{4, LineColumn{2, 1}},
		{8, LineColumn{3, 1}},
	}
	for _, c := range cases {
		got := s.LineColumn(Position{Offset: c.offset})
		if got != c.want {
			t.Errorf("LineColumn(%d) = %+v, want %+v", c.offset, got, c.want)
		}
	}
}

func TestPositionLess(t *testing.T) {
	a, b := Position{Offset: 1}, Position{Offset: 2}
	if !a.Less(b) || b.Less(a) {
		t.Error("Less must reflect offset ordering")
	}
}
