package killring

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func mustCurrent(t *testing.T, k *KillRing) string {
	t.Helper()
	s, err := k.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	return s
}

func TestPushAndRotate(t *testing.T) {
	k := New(DefaultCapacity)
	k.Push("a")
	k.Push("b")

	if got := mustCurrent(t, k); got != "b" {
		t.Errorf("Current() = %q, want %q", got, "b")
	}
	if err := k.Advance(); err != nil {
		t.Fatal(err)
	}
	if got := mustCurrent(t, k); got != "a" {
		t.Errorf("after Advance Current() = %q, want %q", got, "a")
	}
	if err := k.Advance(); err != nil {
		t.Fatal(err)
	}
	if got := mustCurrent(t, k); got != "b" {
		t.Errorf("Advance should wrap, Current() = %q, want %q", got, "b")
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	const capacity = 5
	k := New(capacity)
	for i := 0; i <= capacity; i++ {
		k.Push(fmt.Sprintf("e%d", i))
	}

	if k.Len() != capacity {
		t.Fatalf("Len() = %d, want %d", k.Len(), capacity)
	}
	entries := k.Entries()
	if entries[0] != "e5" {
		t.Errorf("newest = %q, want e5", entries[0])
	}
	for _, e := range entries {
		if e == "e0" {
			t.Errorf("oldest entry was not evicted: %v", entries)
		}
	}
}

func TestDefaultCapacity(t *testing.T) {
	if got := New(0).Capacity(); got != DefaultCapacity {
		t.Errorf("New(0).Capacity() = %d, want %d", got, DefaultCapacity)
	}
	k := New(DefaultCapacity)
	for i := 0; i < DefaultCapacity*2; i++ {
		k.Push("x")
	}
	if k.Len() != DefaultCapacity {
		t.Errorf("Len() = %d, want %d", k.Len(), DefaultCapacity)
	}
}

func TestAppendTop(t *testing.T) {
	k := New(DefaultCapacity)
	k.Clear()
	k.AppendTop("x")
	if got := mustCurrent(t, k); got != "x" {
		t.Errorf("AppendTop on empty ring: Current() = %q, want %q", got, "x")
	}

	k.AppendTop("y")
	if got := mustCurrent(t, k); got != "xy" {
		t.Errorf("Current() = %q, want %q", got, "xy")
	}
	if k.Len() != 1 {
		t.Errorf("Len() = %d, want 1", k.Len())
	}
}

func TestEmptyRing(t *testing.T) {
	k := New(3)
	if !k.Empty() {
		t.Fatal("new ring should be empty")
	}
	if _, err := k.Current(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Current() error = %v, want ErrEmpty", err)
	}
	if err := k.Advance(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Advance() error = %v, want ErrEmpty", err)
	}
}

func TestClearAndRewind(t *testing.T) {
	k := New(3)
	k.Push("a")
	k.Push("b")
	_ = k.Advance()

	k.Rewind()
	if k.Pos() != 0 {
		t.Errorf("Rewind() pos = %d, want 0", k.Pos())
	}

	_ = k.Advance()
	k.Clear()
	if !k.Empty() || k.Pos() != 0 {
		t.Errorf("Clear() left len=%d pos=%d", k.Len(), k.Pos())
	}
}

func TestPosStaysValidAfterEviction(t *testing.T) {
	k := New(2)
	k.Push("a")
	k.Push("b")
	_ = k.Advance() // pos 1
	k.Push("c")     // evicts "a", pos still indexes "b"

	if got := mustCurrent(t, k); got != "b" {
		t.Errorf("Current() = %q, want %q", got, "b")
	}
}

func TestConcurrentPush(t *testing.T) {
	k := New(DefaultCapacity)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				k.Push("x")
				k.AppendTop("y")
			}
		}()
	}
	wg.Wait()

	if k.Len() != DefaultCapacity {
		t.Errorf("Len() = %d, want %d", k.Len(), DefaultCapacity)
	}
}
