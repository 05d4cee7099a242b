package systems

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/dropbar/ecs"
)

// ScriptTapSystem runs a tengo script once per frame for every bar. The
// script reads frame, idle, curr, dir and nodes and sets tap to true to
// inject a tap.
type ScriptTapSystem struct {
	name     string
	compiled *tengo.Compiled
	frame    int
	failed   bool
}

// NewScriptTapSystem compiles src. name is only used in log lines.
func NewScriptTapSystem(name string, src []byte) (*ScriptTapSystem, error) {
	script := tengo.NewScript(src)
	for _, v := range []struct {
		name  string
		value any
	}{
		{"frame", 0},
		{"idle", false},
		{"curr", 0},
		{"dir", 0},
		{"nodes", 0},
		{"tap", false},
	} {
		if err := script.Add(v.name, v.value); err != nil {
			return nil, fmt.Errorf("script %s: add %s: %w", name, v.name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script %s: compile: %w", name, err)
	}
	return &ScriptTapSystem{name: name, compiled: compiled}, nil
}

func (s *ScriptTapSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.compiled == nil || s.failed {
		return
	}
	s.frame++

	for _, id := range ecs.IntersectEntities(w.TapInputs(), w.DropBars()) {
		tap, _ := w.TapInputs().Get(id)
		bar, _ := w.DropBars().Get(id)
		if tap == nil || bar == nil || bar.Renderer == nil {
			continue
		}

		db := bar.Renderer.Bar()
		want, err := s.run(map[string]any{
			"frame": s.frame,
			"idle":  !bar.Renderer.Busy(),
			"curr":  db.CurrIndex(),
			"dir":   db.Dir(),
			"nodes": db.Chain().Len(),
			"tap":   false,
		})
		if err != nil {
			log.Printf("script %s: run: %v (disabled)", s.name, err)
			s.failed = true
			return
		}
		if want && !tap.Pressed {
			tap.Pressed = true
			tap.Source = "script"
		}
	}
}

func (s *ScriptTapSystem) run(vars map[string]any) (bool, error) {
	for name, value := range vars {
		if err := s.compiled.Set(name, value); err != nil {
			return false, err
		}
	}
	if err := s.compiled.Run(); err != nil {
		return false, err
	}
	return s.compiled.Get("tap").Bool(), nil
}
