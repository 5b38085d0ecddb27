package statusbar

import (
	"testing"
	"time"

	"github.com/bethropolis/emacsmode/internal/types"
	"github.com/gdamore/tcell/v2"
)

func TestFormatStatus(t *testing.T) {
	tests := []struct {
		pos   types.Position
		lines int
		want  string
	}{
		{types.Position{Line: 0, Col: 0}, 0, "1,1       All"},
		{types.Position{Line: 0, Col: 4}, 10, "1,5          0%"},
		{types.Position{Line: 4, Col: 0}, 10, "5,1         40%"},
		{types.Position{Line: 99, Col: 11}, 100, "100,12      99%"},
	}
	for _, tt := range tests {
		if got := FormatStatus(tt.pos, tt.lines); got != tt.want {
			t.Errorf("FormatStatus(%+v, %d) = %q, want %q", tt.pos, tt.lines, got, tt.want)
		}
	}
}

func TestMessageTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MessageTimeout = time.Second
	sb := New(cfg)
	now := time.Unix(1000, 0)
	sb.now = func() time.Time { return now }

	sb.SetMessage("Kill ring is empty", types.MessageWarning)
	msg, level, ok := sb.Message()
	if !ok || msg != "Kill ring is empty" || level != types.MessageWarning {
		t.Fatalf("Message() = %q, %v, %v", msg, level, ok)
	}

	now = now.Add(2 * time.Second)
	if _, _, ok := sb.Message(); ok {
		t.Error("message should have expired")
	}

	sb.SetMessage("C-x", types.MessageShowCmd)
	now = now.Add(time.Minute)
	if msg, _, ok := sb.Message(); !ok || msg != "C-x" {
		t.Errorf("showcmd should not expire, got %q %v", msg, ok)
	}

	sb.ClearMessage()
	if _, _, ok := sb.Message(); ok {
		t.Error("ClearMessage left a message")
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"日本語", 5, "日本"},
		{"école", 2, "éc"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Fit(tt.text, tt.width); got != tt.want {
			t.Errorf("Fit(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestLine(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetStatus("1,1       All")
	if got := sb.Line(20); got != "       1,1       All" {
		t.Errorf("Line() = %q", got)
	}
	sb.SetMessage("Saved", types.MessageInfo)
	if got := sb.Line(20); got != "Saved  1,1       All" {
		t.Errorf("Line() = %q", got)
	}
	if got := sb.Line(8); got != "Saved" {
		t.Errorf("narrow Line() = %q", got)
	}
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(12, 3)

	cfg := DefaultConfig()
	sb := New(cfg)
	sb.SetMessage("oops", types.MessageError)
	sb.Draw(screen, 12, 3)
	screen.Show()

	cells, w, _ := screen.GetContents()
	row := cells[2*w : 3*w]
	var got []rune
	for _, c := range row[:4] {
		got = append(got, c.Runes...)
	}
	if string(got) != "oops" {
		t.Errorf("drawn text = %q", string(got))
	}
	if row[0].Style != cfg.StyleError {
		t.Error("error message should use StyleError")
	}
}
