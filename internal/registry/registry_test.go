package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct {
	id    string
	steps int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.steps = 0 }
func (g *stubGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}
func (g *stubGame) Render(dst *core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{Score: g.steps} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", "Stub B", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", "Stub A", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Error("Exists(stub_a) = false, expected true")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true, expected false")
	}

	g1, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	g2, _ := Create("stub_a")
	g1.Step(core.NewInputFrame(), time.Millisecond)
	if g2.State().Score != 0 {
		t.Error("Create() should return independent instances")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should return an error")
	}
}

func TestListSortedByID(t *testing.T) {
	Register("stub_list_z", "Zed", func() Game { return &stubGame{id: "stub_list_z"} })
	Register("stub_list_m", "Em", func() Game { return &stubGame{id: "stub_list_m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "stub_list_m" {
			found = true
			if info.Title != "Em" {
				t.Errorf("Title = %q, expected %q", info.Title, "Em")
			}
		}
	}
	if !found {
		t.Error("List() is missing stub_list_m")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", "Dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() with a duplicate ID should panic")
		}
	}()
	Register("stub_dup", "Dup", func() Game { return &stubGame{id: "stub_dup"} })
}
