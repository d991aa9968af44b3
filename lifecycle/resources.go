package lifecycle

import "log"

type release struct {
	name string
	fn   func()
}

// releaseStack holds the release function of every resource acquired so far. Unwinding
// runs them newest first and empties the stack, so a second unwind does nothing.
type releaseStack struct {
	entries []release
}

func (s *releaseStack) push(name string, fn func()) {
	s.entries = append(s.entries, release{name: name, fn: fn})
}

func (s *releaseStack) len() int {
	return len(s.entries)
}

func (s *releaseStack) unwind(logger *log.Logger) {
	for len(s.entries) > 0 {
		last := len(s.entries) - 1
		entry := s.entries[last]
		s.entries = s.entries[:last]

		entry.fn()
		logger.Printf("released %s", entry.name)
	}
}
