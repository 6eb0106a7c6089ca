package registry

import (
	"testing"

	"github.com/vovakirdan/germ-smash/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz-test-b", func() Game { return stubGame{id: "zz-test-b"} })
	Register("zz-test-a", func() Game { return stubGame{id: "zz-test-a"} })

	if !Exists("zz-test-a") || Exists("zz-test-missing") {
		t.Error("Exists returned wrong result")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "zz-test-a" && info.Title != "Stub zz-test-a" {
			t.Errorf("Title = %q", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List not sorted: %v", ids)
		}
	}

	g, err := Create("zz-test-b")
	if err != nil || g.ID() != "zz-test-b" {
		t.Errorf("Create() = %v, %v", g, err)
	}
	if _, err := Create("zz-test-missing"); err == nil {
		t.Error("Create should fail for unknown ID")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-test-dup", func() Game { return stubGame{id: "zz-test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-test-dup", func() Game { return stubGame{id: "zz-test-dup"} })
}
