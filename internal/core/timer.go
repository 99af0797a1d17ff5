package core

import "time"

// Timer describes one fixed-interval callback a game needs while playing.
// The session host owns the clock; games only declare what should run.
type Timer struct {
	Name     string
	Interval time.Duration
	Fire     func()
}
