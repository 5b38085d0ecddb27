package event

import "testing"

func TestDispatchStopsWhenConsumed(t *testing.T) {
	m := NewManager()
	var calls []string

	m.Subscribe(TypeWriteFileRequested, func(e Event) bool {
		calls = append(calls, "first")
		return false
	})
	m.Subscribe(TypeWriteFileRequested, func(e Event) bool {
		calls = append(calls, "second")
		data := e.Data.(WriteFileData)
		return data.FileName == "a.txt"
	})
	m.Subscribe(TypeWriteFileRequested, func(e Event) bool {
		calls = append(calls, "third")
		return true
	})

	if !m.Dispatch(TypeWriteFileRequested, WriteFileData{FileName: "a.txt"}) {
		t.Fatal("Dispatch() = false, want consumed")
	}
	if len(calls) != 2 || calls[1] != "second" {
		t.Errorf("calls = %v", calls)
	}
}

func TestDispatchWithoutHandlers(t *testing.T) {
	m := NewManager()
	if m.Dispatch(TypeMessage, MessageData{Text: "hi"}) {
		t.Error("Dispatch() with no handlers should not be consumed")
	}

	var nilManager *Manager
	if nilManager.Dispatch(TypeMessage, nil) {
		t.Error("nil manager should not consume")
	}
}

func TestUnsubscribe(t *testing.T) {
	m := NewManager()
	count := 0
	id := m.Subscribe(TypeMessage, func(Event) bool { count++; return false })
	m.Subscribe(TypeMessage, func(Event) bool { count += 10; return false })

	m.Dispatch(TypeMessage, nil)
	m.Unsubscribe(id)
	m.Dispatch(TypeMessage, nil)
	m.Unsubscribe(12345)

	if count != 21 {
		t.Errorf("count = %d, want 21", count)
	}
}

func TestTypeString(t *testing.T) {
	if TypeIndentRegion.String() != "indent-region" {
		t.Errorf("String() = %q", TypeIndentRegion.String())
	}
	if Type(99).String() != "Type(99)" {
		t.Errorf("String() = %q", Type(99).String())
	}
}
