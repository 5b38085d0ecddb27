package clipboard

import (
	"errors"
	"testing"
)

type fakeSystem struct {
	text string
	err  error
}

func (f *fakeSystem) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func (f *fakeSystem) ReadAll() (string, error) {
	return f.text, f.err
}

func TestMirrorAndExternal(t *testing.T) {
	sys := &fakeSystem{}
	m := NewManager(sys, true)

	if err := m.Mirror("killed"); err != nil {
		t.Fatal(err)
	}
	if sys.text != "killed" {
		t.Errorf("system text = %q", sys.text)
	}
	if _, ok := m.External(); ok {
		t.Error("our own text should not come back as external")
	}

	sys.text = "from another program"
	got, ok := m.External()
	if !ok || got != "from another program" {
		t.Errorf("External() = %q, %v", got, ok)
	}
	if _, ok := m.External(); ok {
		t.Error("External() should report new text only once")
	}
}

func TestDisabledManager(t *testing.T) {
	sys := &fakeSystem{text: "x"}
	m := NewManager(sys, false)

	if m.Enabled() {
		t.Fatal("manager should be disabled")
	}
	if err := m.Mirror("y"); err != nil || sys.text != "x" {
		t.Errorf("disabled Mirror wrote %q (%v)", sys.text, err)
	}
	if _, ok := m.External(); ok {
		t.Error("disabled External() should report nothing")
	}

	var nilManager *Manager
	if nilManager.Enabled() {
		t.Error("nil manager should be disabled")
	}
}

func TestMirrorError(t *testing.T) {
	sys := &fakeSystem{err: ErrUnavailable}
	m := NewManager(sys, true)

	if err := m.Mirror("x"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Mirror() error = %v", err)
	}
	if _, ok := m.External(); ok {
		t.Error("External() should fail quietly")
	}
}
