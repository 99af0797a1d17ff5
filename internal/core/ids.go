package core

// EntityID identifies an entity within a game instance.
// IDs are handed out by an IDSequence and never reused, even across restarts.
type EntityID int64

// IDSequence is a monotonic entity ID generator.
// The zero value is ready to use; the first ID is 1.
type IDSequence struct {
	last EntityID
}

// Next returns a fresh ID.
func (s *IDSequence) Next() EntityID {
	s.last++
	return s.last
}

// Last returns the most recently issued ID (0 if none).
func (s *IDSequence) Last() EntityID {
	return s.last
}
