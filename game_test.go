package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/dropbar/ecs/systems"
	"github.com/milk9111/dropbar/prefabs"
)

func TestGameReset(t *testing.T) {
	cases := []struct {
		name        string
		opts        Options
		wantScript  bool
		wantLogging bool
	}{
		{"plain", Options{Width: 800, Height: 600}, false, false},
		{"scripted", Options{Width: 800, Height: 600, ScriptFile: prefabs.DefaultScriptFile}, true, false},
		{"debug", Options{Width: 800, Height: 600, Debug: true}, false, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := &Game{opts: c.opts}
			if err := g.reset(); err != nil {
				t.Fatalf("reset: %v", err)
			}
			if g.world.GetDropBar(g.bar) == nil {
				t.Fatalf("bar entity missing")
			}

			var hasScript, hasLog, hasRender bool
			for _, s := range g.world.Systems() {
				switch s.(type) {
				case *systems.ScriptTapSystem:
					hasScript = true
				case *systems.EventLogSystem:
					hasLog = true
				case *systems.RenderSystem:
					hasRender = true
				}
			}
			if hasScript != c.wantScript || hasLog != c.wantLogging || !hasRender {
				t.Fatalf("systems: script=%v log=%v render=%v", hasScript, hasLog, hasRender)
			}
		})
	}
}

func TestGameRestartKeepsWorldOnBadSpec(t *testing.T) {
	g := &Game{opts: Options{Width: 800, Height: 600}}
	if err := g.reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	old := g.world

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("nodes: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g.opts.SpecFile = bad
	g.Restart()

	if g.world != old {
		t.Fatalf("failed restart should keep the running world")
	}
}

func TestGameRestartRebuildsBar(t *testing.T) {
	g := &Game{opts: Options{Width: 800, Height: 600}}
	if err := g.reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	db := g.world.GetDropBar(g.bar)
	db.Renderer.HandleTap()
	db.Renderer.Tick()

	g.paused = true
	g.Restart()

	if g.paused {
		t.Fatalf("restart should leave pause")
	}
	fresh := g.world.GetDropBar(g.bar)
	if fresh == db || fresh.Renderer.Busy() {
		t.Fatalf("restart should build an idle bar")
	}
}
