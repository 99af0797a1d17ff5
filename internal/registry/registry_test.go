package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Start() {}
func (g *stubGame) Restart() {}
func (g *stubGame) HandlePointerSelect(core.EntityID) {}
func (g *stubGame) HandleDirectionKey(core.Direction, bool) {}
func (g *stubGame) Timers() []core.Timer { return nil }
func (g *stubGame) Snapshot() core.Snapshot { return core.Snapshot{Game: g.id} }
func (g *stubGame) DrainEvents() []core.Event { return nil }
func (g *stubGame) Render(*core.Screen) {}

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return &stubGame{id: "aa-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("zz-stub should be registered")
	}

	g, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "aa-stub" {
		t.Errorf("Create() returned %q", g.ID())
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	var found bool
	for _, info := range list {
		if info.ID == "zz-stub" {
			found = true
			if info.Title != "Stub zz-stub" {
				t.Errorf("title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include zz-stub")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, want ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
}
