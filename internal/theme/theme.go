// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/emacsmode/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names used by the terminal frontend.
const (
	StyleDefault          = "Default"
	StyleGutter           = "Gutter"
	StyleSelection        = "Selection"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMessage = "StatusBar.message"
	StyleStatusBarWarning = "StatusBar.warning"
	StyleStatusBarError   = "StatusBar.error"
	StyleStatusBarShowCmd = "StatusBar.showcmd"

	// Syntax styles, named after the highlighter's categories.
	StyleComment = "comment"
	StyleString  = "string"
	StyleNumber  = "number"
	StyleKeyword = "keyword"
)

// Theme maps style names to terminal styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style for name, falling back to the part before the
// first dot, then to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.Debugf("Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// DevComfortDark is the built-in theme.
var DevComfortDark = newDevComfortDark()

func newDevComfortDark() *Theme {
	dcBackground := tcell.NewHexColor(0x2a2f38) // status bar background
	dcForeground := tcell.NewHexColor(0xc5cdd9)
	dcComment := tcell.NewHexColor(0x5c6370)
	dcYellow := tcell.NewHexColor(0xe5c07b)
	dcGreen := tcell.NewHexColor(0x98c379)
	dcRed := tcell.NewHexColor(0xe06c75)
	dcOrange := tcell.NewHexColor(0xd19a66)
	dcBlue := tcell.NewHexColor(0x61afef)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)
	bar := tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground)

	return &Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:          baseStyle,
			StyleGutter:           baseStyle.Foreground(dcComment),
			StyleSelection:        baseStyle.Reverse(true),
			StyleStatusBar:        bar,
			StyleStatusBarMessage: bar.Bold(true),
			StyleStatusBarWarning: bar.Foreground(dcYellow).Bold(true),
			StyleStatusBarError:   bar.Foreground(dcRed).Bold(true),
			StyleStatusBarShowCmd: bar.Foreground(dcGreen).Bold(true),

			StyleComment: baseStyle.Foreground(dcComment).Italic(true),
			StyleString:  baseStyle.Foreground(dcGreen),
			StyleNumber:  baseStyle.Foreground(dcOrange),
			StyleKeyword: baseStyle.Foreground(dcBlue).Bold(true),
		},
	}
}
