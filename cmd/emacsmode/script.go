package main

import (
	"fmt"
	"strings"

	"github.com/bethropolis/emacsmode/internal/input/key"
)

// hostKeys are replay tokens for keys the chord grammar has no name for.
var hostKeys = map[string]key.Event{
	"<ENTER>":     key.NewEvent(key.ModNone, key.CodeEnter),
	"<RET>":       key.NewEvent(key.ModNone, key.CodeEnter),
	"<BACKSPACE>": key.NewEvent(key.ModNone, key.CodeBackspace),
	"<BS>":        key.NewEvent(key.ModNone, key.CodeBackspace),
}

// parseScript turns a replay script into key events.
//
// Tokens are separated by whitespace. A token holding "<" or "|" is a
// chord pattern such as "<META>|x|s" and becomes one event per key, each
// with the chord's modifiers. Any other token is typed character by
// character; use "<SPACE>" for a space.
func parseScript(script string) ([]key.Event, error) {
	var events []key.Event
	for _, tok := range strings.Fields(script) {
		if ev, ok := hostKeys[strings.ToUpper(tok)]; ok {
			events = append(events, ev)
			continue
		}
		if !strings.ContainsAny(tok, "<"+key.PatternSeparator) {
			for _, r := range tok {
				events = append(events, key.NewRuneEvent(r, key.ModNone))
			}
			continue
		}
		chord, err := key.ParseChord(tok)
		if err != nil {
			return nil, fmt.Errorf("script token %q: %w", tok, err)
		}
		for _, code := range chord.Keys() {
			events = append(events, key.NewEvent(chord.Mods(), code))
		}
	}
	return events, nil
}
