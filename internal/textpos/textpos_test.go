package textpos

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		name    string
		content string
		offset  int
		want    string
		wantErr bool
	}{
		{"start", "abc", 0, "1:1", false},
		{"end of document", "abc", 3, "1:4", false},
		{"second line", "ab\ncd", 4, "2:2", false},
		{"newline belongs to its line", "ab\ncd", 2, "1:3", false},
		{"trailing newline", "ab\n", 3, "2:1", false},
		{"empty lines", "\n\n\nx", 3, "4:1", false},
		{"empty document", "", 0, "1:1", false},
		{"negative", "abc", -1, "", true},
		{"past end", "abc", 4, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewIndex([]byte(tt.content)).Position(tt.offset)
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Fatalf("Position(%d) got err %v, wantErr = %v", tt.offset, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tt.want, got.String()); diff != "" {
				t.Errorf("Position(%d) unexpected diff (-want, +got):\n%s", tt.offset, diff)
			}
		})
	}
}

func TestLineStart(t *testing.T) {
	x := NewIndex([]byte("one\ntwo\n\nfour"))
	if got, want := x.LineCount(), 4; got != want {
		t.Errorf("LineCount() = %d, want %d", got, want)
	}
	for line, want := range []int{0, 4, 8, 9} {
		got, err := x.LineStart(LineFromOffset(line))
		if err != nil || got != want {
			t.Errorf("LineStart(%d) = %d, %v; want %d", line+1, got, err, want)
		}
	}
	if _, err := x.LineStart(LineFromOrdinal(5)); err == nil {
		t.Errorf("LineStart(5) succeeded, want error")
	}
	if _, err := x.LineStart(Line{}); err == nil {
		t.Errorf("LineStart(0) succeeded, want error")
	}
}

func TestLineColumnString(t *testing.T) {
	if got := (LineColumn{}).String(); got != "-:-" {
		t.Errorf("zero LineColumn = %q, want %q", got, "-:-")
	}
	p := MakeLineColumn(LineFromOrdinal(3), ColumnFromOffset(0))
	if got := p.String(); got != "3:1" {
		t.Errorf("String() = %q, want %q", got, "3:1")
	}
	if !p.IsValid() || p.Line().Offset() != 2 || p.Column().Ordinal() != 1 {
		t.Errorf("unexpected accessors for %v", p)
	}
}
