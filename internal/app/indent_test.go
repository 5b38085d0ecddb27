package app

import (
	"testing"

	"github.com/bethropolis/emacsmode/internal/buffer"
	"github.com/bethropolis/emacsmode/internal/event"
)

func TestIndentLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		req   event.IndentRegionData
		want  string
	}{
		{
			name:  "tabs",
			input: "{\nx\n  }",
			req:   event.IndentRegionData{BeginLine: 0, EndLine: 2, TabStop: 4, ShiftWidth: 4},
			want:  "{\n\tx\n}",
		},
		{
			name:  "expanded",
			input: "{\n(\nx\n)\n}",
			req:   event.IndentRegionData{BeginLine: 1, EndLine: 3, TabStop: 8, ShiftWidth: 2, ExpandTabs: true},
			want:  "{\n  (\n    x\n  )\n}",
		},
		{
			name:  "tab and spaces",
			input: "[\n[\nx",
			req:   event.IndentRegionData{BeginLine: 2, EndLine: 2, TabStop: 4, ShiftWidth: 3},
			want:  "[\n[\n\t  x",
		},
		{
			name:  "blank lines emptied",
			input: "{\n   \n}",
			req:   event.IndentRegionData{BeginLine: 0, EndLine: 2, TabStop: 4, ShiftWidth: 4},
			want:  "{\n\n}",
		},
		{
			name:  "brackets in strings ignored",
			input: "s := \"{(\"\nx",
			req:   event.IndentRegionData{BeginLine: 1, EndLine: 1, TabStop: 4, ShiftWidth: 4},
			want:  "s := \"{(\"\nx",
		},
		{
			name:  "extra closers clamp at zero",
			input: "}\n}\n  x",
			req:   event.IndentRegionData{BeginLine: 0, EndLine: 2, TabStop: 4, ShiftWidth: 4},
			want:  "}\n}\nx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := buffer.NewSliceBufferString(tt.input)
			if err := IndentLines(doc, tt.req); err != nil {
				t.Fatalf("IndentLines() error = %v", err)
			}
			if got := doc.Text(0, doc.Len()); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBracketDelta(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"func f() {", 1},
		{"}", -1},
		{"a[i] = m[k](", 1},
		{`s := "\"{"`, 0},
		{"r := `\\`{", 1},
		{"c := '{'", 0},
	}
	for _, tt := range tests {
		if got := bracketDelta(tt.in); got != tt.want {
			t.Errorf("bracketDelta(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
