package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/cat-arcade/internal/session"
)

// Player plays cues without blocking.
type Player interface {
	Play(c Cue)
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

// Speaker plays cues through the default audio device.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewSpeaker creates an uninitialized speaker.
func NewSpeaker(logger *log.Logger, volume float64) *Speaker {
	return &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Init opens the audio device.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play mixes the cue into the output. Failures are logged and otherwise
// ignored.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st, err := Streamer(c, s.volume)
	if err != nil {
		s.logger.Warn("cannot build cue", "cue", c, "error", err)
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything still playing.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Open returns a working Player when enabled is set and the device opens,
// and Nop otherwise. The returned close function is always safe to call.
func Open(enabled bool, logger *log.Logger) (Player, func()) {
	if !enabled {
		return Nop{}, func() {}
	}
	spk := NewSpeaker(logger, 0.4)
	if err := spk.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return Nop{}, func() {}
	}
	return spk, spk.Close
}

// Listener turns session updates into cues.
func Listener(p Player) session.Listener {
	return func(u session.Update) {
		if u.Closed {
			return
		}
		for _, e := range u.Events {
			if c, ok := CueFor(e); ok {
				p.Play(c)
			}
		}
	}
}
