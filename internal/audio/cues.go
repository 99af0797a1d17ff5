// Package audio plays short synthesized cues for session events. It is owned
// by the presentation layer and only ever observes sessions.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a sound.
type Cue int

const (
	CueStart Cue = iota
	CueWon
	CueLost
	CueScore
	CuePenalty
	CueLifeLost
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueWon:
		return "won"
	case CueLost:
		return "lost"
	case CueScore:
		return "score"
	case CuePenalty:
		return "penalty"
	case CueLifeLost:
		return "life_lost"
	default:
		return "unknown"
	}
}

// note is one tone of a cue; a zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var melodies = map[Cue][]note{
	CueStart:    {{523.25, 80 * time.Millisecond}, {659.25, 80 * time.Millisecond}, {783.99, 120 * time.Millisecond}},
	CueWon:      {{523.25, 100 * time.Millisecond}, {659.25, 100 * time.Millisecond}, {783.99, 100 * time.Millisecond}, {1046.5, 250 * time.Millisecond}},
	CueLost:     {{392, 150 * time.Millisecond}, {311.13, 150 * time.Millisecond}, {261.63, 300 * time.Millisecond}},
	CueScore:    {{880, 60 * time.Millisecond}},
	CuePenalty:  {{180, 120 * time.Millisecond}},
	CueLifeLost: {{330, 80 * time.Millisecond}, {0, 30 * time.Millisecond}, {220, 120 * time.Millisecond}},
}

// CueFor maps a session event to its cue. Leaving play for the title screen
// has no sound.
func CueFor(e core.Event) (Cue, bool) {
	switch e.Kind {
	case core.EventScored:
		return CueScore, true
	case core.EventPenalty:
		return CuePenalty, true
	case core.EventLifeLost:
		return CueLifeLost, true
	case core.EventPhaseChanged:
		switch e.To {
		case core.PhasePlaying:
			return CueStart, true
		case core.PhaseWon:
			return CueWon, true
		case core.PhaseLost:
			return CueLost, true
		}
	}
	return 0, false
}

// Streamer renders a cue at the given volume (0..1).
func Streamer(c Cue, volume float64) (beep.Streamer, error) {
	var parts []beep.Streamer
	for _, n := range melodies[c] {
		samples := sampleRate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(samples, tone))
	}

	seq := beep.Seq(parts...)
	if volume <= 0 {
		return &effects.Volume{Streamer: seq, Base: 2, Silent: true}, nil
	}
	return &effects.Volume{Streamer: seq, Base: 2, Volume: math.Log2(volume)}, nil
}
