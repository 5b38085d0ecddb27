// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/emacsmode/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation
)

// Config defines the appearance and behavior of the minibuffer line.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleMessage   tcell.Style // Info messages
	StyleWarning   tcell.Style
	StyleError     tcell.Style
	StyleShowCmd   tcell.Style // Partial command being typed
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StyleWarning:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleError:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true),
		StyleShowCmd:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar is the minibuffer state shared by every attached editor: one
// message with its severity, and the status text of the focused editor.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	status string

	message     string
	level       types.MessageLevel
	messageTime time.Time

	now func() time.Time // Replaced in tests
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
	}
}

// FormatStatus renders "line,col" padded to ten columns followed by the
// cursor line as a percentage of the document, or "All" for an empty one.
// Line and column in pos are 0-based.
func FormatStatus(pos types.Position, lineCount int) string {
	loc := fmt.Sprintf("%d,%d", pos.Line+1, pos.Col+1)
	if lineCount == 0 {
		return fmt.Sprintf("%-10sAll", loc)
	}
	return fmt.Sprintf("%-10s%4d%%", loc, pos.Line*100/lineCount)
}

// SetStatus updates the status text.
func (sb *StatusBar) SetStatus(text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.status = text
}

// Status returns the status text.
func (sb *StatusBar) Status() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.status
}

// SetMessage replaces the current message. An empty text clears it.
func (sb *StatusBar) SetMessage(text string, level types.MessageLevel) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.message = text
	sb.level = level
	if text == "" {
		sb.messageTime = time.Time{}
		return
	}
	sb.messageTime = sb.now()
}

// Message returns the current message if it has not timed out.
// Partial command display never times out.
func (sb *StatusBar) Message() (string, types.MessageLevel, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if sb.messageTime.IsZero() {
		return "", types.MessageInfo, false
	}
	if sb.level != types.MessageShowCmd && sb.config.MessageTimeout > 0 &&
		sb.now().Sub(sb.messageTime) > sb.config.MessageTimeout {
		sb.message = ""
		sb.messageTime = time.Time{}
		return "", types.MessageInfo, false
	}
	return sb.message, sb.level, true
}

// ClearMessage removes the current message.
func (sb *StatusBar) ClearMessage() {
	sb.SetMessage("", types.MessageInfo)
}

// Line composes the full minibuffer line for the given width: the message
// on the left and the status text right-aligned. The message wins when
// both do not fit.
func (sb *StatusBar) Line(width int) string {
	msg, _, _ := sb.Message()
	status := sb.Status()

	msgWidth := uniseg.StringWidth(msg)
	statusWidth := uniseg.StringWidth(status)
	if msgWidth+1+statusWidth > width {
		if msg != "" {
			return Fit(msg, width)
		}
		return Fit(status, width)
	}
	return msg + strings.Repeat(" ", width-msgWidth-statusWidth) + status
}

// Fit truncates text to at most width display columns without splitting a
// grapheme cluster.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(text) <= width {
		return text
	}
	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if used+w > width {
			break
		}
		b.WriteString(gr.Str())
		used += w
	}
	return b.String()
}

func (sb *StatusBar) style(level types.MessageLevel, active bool) tcell.Style {
	if !active {
		return sb.config.StyleDefault
	}
	switch level {
	case types.MessageWarning:
		return sb.config.StyleWarning
	case types.MessageError:
		return sb.config.StyleError
	case types.MessageShowCmd:
		return sb.config.StyleShowCmd
	}
	return sb.config.StyleMessage
}

// Draw renders the minibuffer onto the last row of screen using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	_, level, active := sb.Message()
	style := sb.style(level, active)
	text := sb.Line(width)

	// Fill background first
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			// tcell renders the cluster from its first rune plus combining runes
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
}
