package util

// scopeFrame holds one lexical level's renaming table during uniquify.
type scopeFrame struct {
	names map[string]string
	next  *scopeFrame
}

// ScopeStack is a linked list stack of renaming frames, one per lexical
// binder. Adapted from the project's general-purpose Stack: uniquify runs
// single-threaded so the mutex the original carried for parallel workers is
// dropped (see DESIGN.md).
type ScopeStack struct {
	top  *scopeFrame
	size int
}

// Push opens a new lexical frame.
func (s *ScopeStack) Push() {
	s.top = &scopeFrame{names: make(map[string]string), next: s.top}
	s.size++
}

// Pop closes the innermost lexical frame.
func (s *ScopeStack) Pop() {
	if s.top == nil {
		return
	}
	s.top = s.top.next
	s.size--
}

// Bind records that original resolves to renamed in the innermost frame.
func (s *ScopeStack) Bind(original, renamed string) {
	if s.top == nil {
		s.Push()
	}
	s.top.names[original] = renamed
}

// Resolve looks up original from the innermost frame outward, returning its
// current renamed form and whether it was found.
func (s *ScopeStack) Resolve(original string) (string, bool) {
	for f := s.top; f != nil; f = f.next {
		if v, ok := f.names[original]; ok {
			return v, true
		}
	}
	return "", false
}

// Size returns the number of open lexical frames.
func (s *ScopeStack) Size() int {
	return s.size
}
