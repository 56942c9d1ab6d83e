package decoder

import "testing"

func TestLineReader(t *testing.T) {
	input := "first\n\n// comment\n  padded  \r\nlast"
	r, err := newLineReader([]byte(input))
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		text string
		line int
	}{
		{"first", 1},
		{"padded", 4},
		{"last", 5},
	}
	for _, w := range want {
		text, n, ok := r.next()
		if !ok {
			t.Fatalf("ran out of lines before %q", w.text)
		}
		if text != w.text || n != w.line {
			t.Errorf("got (%q, %d), want (%q, %d)", text, n, w.text, w.line)
		}
	}
	if _, _, ok := r.next(); ok {
		t.Error("reader should be exhausted")
	}
	if err := r.err(); err != nil {
		t.Errorf("unexpected scanner error: %v", err)
	}
}

func TestSectionHeaderPattern(t *testing.T) {
	tests := []struct {
		line string
		want string // captured name, "" for no match
	}{
		{"[General]", "General"},
		{"[TimingPoints]", "TimingPoints"},
		{"[Not A Section]", ""},
		{"[General] trailing", ""},
		{"General", ""},
	}
	for _, tt := range tests {
		m := sectionHeaderRx.FindStringSubmatch(tt.line)
		got := ""
		if m != nil {
			got = m[1]
		}
		if got != tt.want {
			t.Errorf("section match of %q = %q, want %q", tt.line, got, tt.want)
		}
	}
}
