package util

import "testing"

func TestScopeStackResolvesInnermostBinding(t *testing.T) {
	s := &ScopeStack{}
	s.Push()
	s.Bind("x", "x-v0")
	s.Push()
	s.Bind("x", "x-v1")

	got, ok := s.Resolve("x")
	if !ok || got != "x-v1" {
		t.Fatalf("got (%q, %v), want (x-v1, true)", got, ok)
	}

	s.Pop()
	got, ok = s.Resolve("x")
	if !ok || got != "x-v0" {
		t.Fatalf("after pop: got (%q, %v), want (x-v0, true)", got, ok)
	}
}

func TestScopeStackResolveMissing(t *testing.T) {
	s := &ScopeStack{}
	if _, ok := s.Resolve("missing"); ok {
		t.Fatal("expected Resolve to report not-found on an empty stack")
	}
}

func TestNameCounterProducesDistinctSuffixes(t *testing.T) {
	c := NewNameCounter()
	if got := c.Var("x"); got != "x-v0" {
		t.Fatalf("got %q, want x-v0", got)
	}
	if got := c.Var("x"); got != "x-v1" {
		t.Fatalf("got %q, want x-v1", got)
	}
	if got := c.Func("f"); got != "f-f0" {
		t.Fatalf("got %q, want f-f0", got)
	}
}
