package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestGetStyleFallback(t *testing.T) {
	th := &Theme{
		Name: "test",
		Styles: map[string]tcell.Style{
			StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
			StyleStatusBar: tcell.StyleDefault.Background(tcell.ColorBlue),
		},
	}

	if got := th.GetStyle(StyleStatusBarError); got != th.Styles[StyleStatusBar] {
		t.Errorf("dotted name did not fall back to its base style")
	}
	if got := th.GetStyle(StyleGutter); got != th.Styles[StyleDefault] {
		t.Errorf("unknown name did not fall back to Default")
	}
	empty := &Theme{Name: "empty"}
	if got := empty.GetStyle(StyleGutter); got != tcell.StyleDefault {
		t.Errorf("empty theme = %v, want tcell default", got)
	}
}

func TestParseColorString(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"#ff0000", tcell.NewHexColor(0xff0000), false},
		{" RESET ", tcell.ColorReset, false},
		{"default", tcell.ColorDefault, false},
		{"red", tcell.ColorRed, false},
		{"#fff", tcell.ColorDefault, true},
		{"#gggggg", tcell.ColorDefault, true},
		{"notacolor", tcell.ColorDefault, true},
	}
	for _, tt := range tests {
		got, err := parseColorString(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseColorString(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseColorString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.toml")
	data := `
[styles.Default]
fg = "#ffffff"

[styles."StatusBar.error"]
bg = "red"
bold = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile() error = %v", err)
	}
	if th.Name != "mine" {
		t.Errorf("Name = %q, want file name", th.Name)
	}
	fg, _, _ := th.GetStyle(StyleDefault).Decompose()
	if fg != tcell.NewHexColor(0xffffff) {
		t.Errorf("Default fg = %v", fg)
	}
	fg, bg, attrs := th.GetStyle(StyleStatusBarError).Decompose()
	if bg != tcell.ColorRed || fg != tcell.NewHexColor(0xffffff) || attrs&tcell.AttrBold == 0 {
		t.Errorf("StatusBar.error = fg %v bg %v attrs %v, want inherited fg on red, bold", fg, bg, attrs)
	}
	if th.GetStyle(StyleGutter) != DevComfortDark.Styles[StyleGutter] {
		t.Error("missing style not taken from the built-in theme")
	}
}

func TestLoadThemeFromFileErrors(t *testing.T) {
	if _, err := LoadThemeFromFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file accepted")
	}
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[styles.Default]\nfg = \"bogus\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadThemeFromFile(path); err == nil {
		t.Error("bad Default style accepted")
	}
}
