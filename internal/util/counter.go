package util

import "fmt"

// NameCounter mints globally unique suffixes for variable and function
// names during uniquify. Adapted from the project's label generator: the
// teacher's version multiplexes concurrent requests over channels because
// parallel backends request labels from worker goroutines; uniquify is a
// single pure pass over one tree, so the channel plumbing is dropped and
// only the prefix/counter bookkeeping survives (see DESIGN.md).
type NameCounter struct {
	vars  map[string]int
	funcs map[string]int
}

// NewNameCounter returns a ready-to-use NameCounter.
func NewNameCounter() *NameCounter {
	return &NameCounter{
		vars:  make(map[string]int),
		funcs: make(map[string]int),
	}
}

// Var returns the next unique renaming of variable name, e.g. "x" -> "x-v0",
// "x-v1", ...
func (c *NameCounter) Var(name string) string {
	n := c.vars[name]
	c.vars[name] = n + 1
	return fmt.Sprintf("%s-v%d", name, n)
}

// Func returns the next unique renaming of function name, e.g.
// "f" -> "f-f0", "f-f1", ...
func (c *NameCounter) Func(name string) string {
	n := c.funcs[name]
	c.funcs[name] = n + 1
	return fmt.Sprintf("%s-f%d", name, n)
}
