package types

import "testing"

func TestNewRangeNormalizes(t *testing.T) {
	tests := []struct {
		b, e         int
		wantB, wantE   int
	}{
		{10, 3, 3, 10},
		{3, 10, 3, 10},
		{5, 5, 5, 5},
		{0, 7, 0, 7},
	}

	for _, tt := range tests {
		r := NewRange(tt.b, tt.e, RangeLineMode)
		if r.BeginPos != tt.wantB || r.EndPos != tt.wantE {
			t.Errorf("NewRange(%d, %d) = [%d,%d], want [%d,%d]", tt.b, tt.e, r.BeginPos, r.EndPos, tt.wantB, tt.wantE)
		}
		if r.Mode != RangeLineMode {
			t.Errorf("NewRange(%d, %d) mode = %v, want line", tt.b, tt.e, r.Mode)
		}
	}
}

func TestRangeValidity(t *testing.T) {
	if InvalidRange.IsValid() {
		t.Error("InvalidRange.IsValid() = true")
	}
	if !NewRange(0, 0, RangeCharMode).IsValid() {
		t.Error("empty range at 0 should be valid")
	}
	if got := NewRange(9, 2, RangeCharMode).Len(); got != 7 {
		t.Errorf("Len() = %d, want 7", got)
	}
}

func TestRangeString(t *testing.T) {
	got := NewRange(4, 1, RangeBlockMode).String()
	if got != "1-4 (mode: block)" {
		t.Errorf("String() = %q", got)
	}
}

func TestPositionBefore(t *testing.T) {
	a := Position{Line: 1, Col: 4}
	b := Position{Line: 2, Col: 0}
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before ordering wrong for %v / %v", a, b)
	}
	if a.Before(a) {
		t.Error("position should not be before itself")
	}
}

func TestEditInfoInputEdit(t *testing.T) {
	e := EditInfo{StartIndex: 3, OldEndIndex: 3, NewEndIndex: 6}
	in := e.InputEdit()
	if in.StartIndex != 3 || in.NewEndIndex != 6 {
		t.Errorf("InputEdit() = %+v", in)
	}
	if !e.IsInsert() {
		t.Error("IsInsert() = false for pure insertion")
	}
}
