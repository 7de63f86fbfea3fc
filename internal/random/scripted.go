package random

import "sync"

// Scripted replays a fixed sequence of outcomes, starting over when it runs out.
// An empty script always returns false.
type Scripted struct {
	mu     sync.Mutex
	values []bool
	pos    int
	calls  int
}

// NewScripted creates a Scripted source that returns values in order
func NewScripted(values ...bool) *Scripted {
	return &Scripted{values: values}
}

// Always returns a Scripted source that only ever returns v
func Always(v bool) *Scripted {
	return NewScripted(v)
}

// Bool returns the next scripted value
func (s *Scripted) Bool() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if len(s.values) == 0 {
		return false
	}
	v := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	return v
}

// Calls reports how many times Bool has been called
func (s *Scripted) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
