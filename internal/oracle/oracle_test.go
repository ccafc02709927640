package oracle

import "testing"

func TestRecordedReplaysInOrder(t *testing.T) {
	r := NewRecorded(7, 3)
	v1, err := r.Next()
	if err != nil || v1 != 7 {
		t.Fatalf("got (%d, %v), want (7, nil)", v1, err)
	}
	v2, err := r.Next()
	if err != nil || v2 != 3 {
		t.Fatalf("got (%d, %v), want (3, nil)", v2, err)
	}
	if r.Consumed() != 2 {
		t.Fatalf("Consumed() = %d, want 2", r.Consumed())
	}
}

func TestRecordedErrorsWhenExhausted(t *testing.T) {
	r := NewRecorded(1)
	if _, err := r.Next(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := r.Next(); err == nil {
		t.Fatal("expected an error once the recording is exhausted")
	}
}

func TestRecordedResetReplaysTheSameSequence(t *testing.T) {
	r := NewRecorded(7, 3)
	first, _ := r.Next()
	r.Reset()
	second, _ := r.Next()
	if first != second {
		t.Fatalf("got %d then %d after reset, want identical replays", first, second)
	}
}
