package lrmap

import "testing"

func TestPutGetRemove(t *testing.T) {
	_, w := New[string, string]()

	if prev := w.Put("a", "1"); prev.Ok {
		t.Fatalf("expected no previous value, got %v", prev)
	}

	if prev := w.Put("a", "2"); !prev.Ok || prev.Value != "1" {
		t.Fatalf("expected previous value 1, got %v", prev)
	}

	if v, ok := w.Get("a"); !ok || v != "2" {
		t.Fatalf("expected a=2, got %v, %v", v, ok)
	}

	if prev := w.Remove("a"); !prev.Ok || prev.Value != "2" {
		t.Fatalf("expected removed value 2, got %v", prev)
	}

	if _, ok := w.Get("a"); ok {
		t.Fatalf("expected a absent after remove")
	}
}

func TestPutIfAbsent(t *testing.T) {
	_, w := New[string, int]()

	if existing := w.PutIfAbsent("k", 1); existing.Ok {
		t.Fatalf("expected absent on first PutIfAbsent, got %v", existing)
	}
	if existing := w.PutIfAbsent("k", 2); !existing.Ok || existing.Value != 1 {
		t.Fatalf("expected existing value 1, got %v", existing)
	}
	if v, _ := w.Get("k"); v != 1 {
		t.Fatalf("expected value to remain 1, got %d", v)
	}
}

func TestRemoveIfEqual(t *testing.T) {
	_, w := New[string, int]()
	w.Put("k", 5)

	if RemoveIfEqual(w, "k", 6) {
		t.Fatalf("expected no removal for mismatched value")
	}
	if v, ok := w.Get("k"); !ok || v != 5 {
		t.Fatalf("expected k to remain 5, got %v, %v", v, ok)
	}
	if !RemoveIfEqual(w, "k", 5) {
		t.Fatalf("expected removal for matching value")
	}
	if _, ok := w.Get("k"); ok {
		t.Fatalf("expected k absent after matching removal")
	}
}

func TestClearAndSize(t *testing.T) {
	_, w := New[string, int]()
	w.Put("a", 1)
	w.Put("b", 2)

	if got := w.Size(); got != 2 {
		t.Fatalf("expected size 2, got %d", got)
	}
	if w.IsEmpty() {
		t.Fatalf("expected non-empty")
	}

	w.Clear()

	if got := w.Size(); got != 0 {
		t.Fatalf("expected size 0 after clear, got %d", got)
	}
	if !w.IsEmpty() {
		t.Fatalf("expected empty after clear")
	}
}

func TestForEachAndContainsValue(t *testing.T) {
	_, w := New[string, int]()
	w.Put("a", 1)
	w.Put("b", 2)

	seen := map[string]int{}
	w.ForEach(func(k string, v int) { seen[k] = v })

	if len(seen) != 2 || seen["a"] != 1 || seen["b"] != 2 {
		t.Fatalf("unexpected ForEach result: %v", seen)
	}

	if !ContainsValue[int](w, 2) {
		t.Fatalf("expected ContainsValue(2) to be true")
	}
	if ContainsValue[int](w, 99) {
		t.Fatalf("expected ContainsValue(99) to be false")
	}
}

func TestGetOrDefault(t *testing.T) {
	_, w := New[string, int]()
	w.Put("a", 1)

	if got := w.GetOrDefault("a", 100); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := w.GetOrDefault("missing", 100); got != 100 {
		t.Fatalf("expected default 100, got %d", got)
	}
}

func TestReaderSeesWriterRefreshes(t *testing.T) {
	rf, w := New[string, int]()
	r := rf.CreateReader()

	w.Put("a", 1)
	if _, ok := r.Get("a"); ok {
		t.Fatalf("expected absent before refresh")
	}

	w.Refresh()
	if v, ok := r.Get("a"); !ok || v != 1 {
		t.Fatalf("expected a=1 after refresh, got %v, %v", v, ok)
	}
}

func TestPoolWithReader(t *testing.T) {
	rf, w := New[string, int]()
	pool := NewPool(rf)

	w.Put("a", 1)
	w.Refresh()

	pool.WithReader(func(r *Reader[string, int]) {
		if v, ok := r.Get("a"); !ok || v != 1 {
			t.Fatalf("expected a=1, got %v, %v", v, ok)
		}
	})
}

func TestReaderCount(t *testing.T) {
	rf, _ := New[string, int]()

	if got := rf.ReaderCount(); got != 0 {
		t.Fatalf("expected 0 readers initially, got %d", got)
	}

	rf.CreateReader()
	rf.CreateReader()

	if got := rf.ReaderCount(); got != 2 {
		t.Fatalf("expected 2 readers, got %d", got)
	}
}
