package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) HandleInput(core.InputEvent) {}
func (g *stubGame) Step() core.StepResult { return core.StepResult{} }
func (g *stubGame) Acknowledge() {}
func (g *stubGame) Render(core.Surface) {}
func (g *stubGame) Size() (float64, float64) { return 1, 1 }
func (g *stubGame) Hints() core.HostHints { return core.HostHints{} }
func (g *stubGame) State() core.GameState { return core.GameState{} }

func stub(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_zeta", stub("test_zeta"))
	Register("test_alpha", stub("test_alpha"))

	if !Exists("test_alpha") {
		t.Fatal("test_alpha should exist after Register")
	}

	g, err := Create("test_zeta")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "test_zeta" {
		t.Errorf("ID() = %q, want test_zeta", g.ID())
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test_") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "test_alpha" || ids[1] != "test_zeta" {
		t.Errorf("List() order = %v, want [test_alpha test_zeta]", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("no_such_game") {
		t.Error("no_such_game should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", stub("test_dup"))
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test_dup", stub("test_dup"))
}
