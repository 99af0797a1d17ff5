package audio

import (
	"slices"
	"testing"

	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/session"
)

type recordingPlayer struct {
	cues []Cue
}

func (r *recordingPlayer) Play(c Cue) {
	r.cues = append(r.cues, c)
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		event core.Event
		want  Cue
		ok    bool
	}{
		{core.Event{Kind: core.EventScored, Delta: 10}, CueScore, true},
		{core.Event{Kind: core.EventPenalty, Delta: -5}, CuePenalty, true},
		{core.Event{Kind: core.EventLifeLost, Delta: -1}, CueLifeLost, true},
		{core.Event{Kind: core.EventPhaseChanged, To: core.PhasePlaying}, CueStart, true},
		{core.Event{Kind: core.EventPhaseChanged, To: core.PhaseWon}, CueWon, true},
		{core.Event{Kind: core.EventPhaseChanged, To: core.PhaseLost}, CueLost, true},
		{core.Event{Kind: core.EventPhaseChanged, To: core.PhaseIdle}, 0, false},
	}

	for _, tc := range tests {
		got, ok := CueFor(tc.event)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("CueFor(%+v) = %s, %v; expected %s, %v", tc.event, got, ok, tc.want, tc.ok)
		}
	}
}

func TestStreamerLength(t *testing.T) {
	for c := range melodies {
		st, err := Streamer(c, 0.5)
		if err != nil {
			t.Fatalf("Streamer(%s): %v", c, err)
		}

		want := 0
		for _, n := range melodies[c] {
			want += sampleRate.N(n.dur)
		}

		buf := make([][2]float64, 512)
		total := 0
		for {
			n, ok := st.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		if total != want {
			t.Errorf("%s: streamed %d samples, expected %d", c, total, want)
		}
	}
}

func TestSilentStreamer(t *testing.T) {
	st, err := Streamer(CueScore, 0)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([][2]float64, 256)
	n, _ := st.Stream(buf)
	for i := range n {
		if buf[i] != [2]float64{} {
			t.Fatalf("sample %d not silent: %v", i, buf[i])
		}
	}
}

func TestListenerPlaysCues(t *testing.T) {
	p := &recordingPlayer{}
	l := Listener(p)

	l(session.Update{Events: []core.Event{
		{Kind: core.EventScored, Delta: 10},
		{Kind: core.EventPhaseChanged, From: core.PhasePlaying, To: core.PhaseWon},
	}})
	l(session.Update{Closed: true, Events: []core.Event{{Kind: core.EventScored}}})

	if want := []Cue{CueScore, CueWon}; !slices.Equal(p.cues, want) {
		t.Errorf("played %v, expected %v", p.cues, want)
	}
}

func TestOpenDisabled(t *testing.T) {
	p, closeFn := Open(false, nil)
	if _, ok := p.(Nop); !ok {
		t.Errorf("disabled audio should return Nop, got %T", p)
	}
	closeFn()
	p.Play(CueWon)
}

func TestSpeakerPlayBeforeInit(t *testing.T) {
	s := NewSpeaker(nil, 1)
	s.Play(CueWon)
	s.Close()
}
