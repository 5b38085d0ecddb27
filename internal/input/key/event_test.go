package key

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNewRuneEvent(t *testing.T) {
	tests := []struct {
		r        rune
		mods     Modifier
		wantCode Code
		wantMods Modifier
	}{
		{'a', ModNone, CodeA, ModNone},
		{'A', ModNone, CodeA, ModShift},
		{'w', ModAlt, CodeW, ModAlt},
		{' ', ModNone, CodeSpace, ModNone},
		{'_', ModNone, CodeUnderscore, ModShift},
		{'_', ModAlt, CodeUnderscore, ModAlt | ModShift},
		{'/', ModNone, CodeSlash, ModNone},
		{'é', ModNone, CodeRune, ModNone},
	}

	for _, tt := range tests {
		ev := NewRuneEvent(tt.r, tt.mods)
		if ev.Code != tt.wantCode || ev.Mods != tt.wantMods || ev.Rune != tt.r {
			t.Errorf("NewRuneEvent(%q, %v) = %+v, want code %v mods %v", tt.r, tt.mods, ev, tt.wantCode, tt.wantMods)
		}
	}
}

func TestEventPrintable(t *testing.T) {
	tests := []struct {
		ev   Event
		want bool
	}{
		{NewRuneEvent('a', ModNone), true},
		{NewRuneEvent('A', ModNone), true},
		{NewRuneEvent('a', ModCtrl), false},
		{NewEvent(ModNone, CodeEscape), false},
		{NewEvent(ModNone, CodeBackspace), false},
		{NewEvent(ModNone, CodeEnter), true},
	}
	for _, tt := range tests {
		if got := tt.ev.IsPrintable(); got != tt.want {
			t.Errorf("%v.IsPrintable() = %v, want %v", tt.ev, got, tt.want)
		}
	}
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		wantMods Modifier
		wantCode Code
	}{
		{"ctrl-x", tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl), ModCtrl, CodeX},
		{"ctrl-h is BS", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), ModCtrl, CodeH},
		{"DEL is backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), ModNone, CodeBackspace},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ModNone, CodeTab},
		{"ctrl-i folds into tab", tcell.NewEventKey(tcell.KeyCtrlI, 0, tcell.ModCtrl), ModNone, CodeTab},
		{"ctrl-m folds into enter", tcell.NewEventKey(tcell.KeyCtrlM, 0, tcell.ModCtrl), ModNone, CodeEnter},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ModNone, CodeEscape},
		{"ctrl-space", tcell.NewEventKey(tcell.KeyCtrlSpace, 0, tcell.ModCtrl), ModCtrl, CodeSpace},
		{"ctrl-underscore", tcell.NewEventKey(tcell.KeyCtrlUnderscore, 0, tcell.ModCtrl), ModCtrl | ModShift, CodeUnderscore},
		{"alt-w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModAlt), ModAlt, CodeW},
		{"plain rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ModNone, CodeQ},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), ModShift, CodeUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := FromTcell(tt.ev)
			if ev.Mods != tt.wantMods || ev.Code != tt.wantCode {
				t.Errorf("FromTcell() = %v (%+v), want mods %v code %v", ev, ev, tt.wantMods, tt.wantCode)
			}
		})
	}
}
