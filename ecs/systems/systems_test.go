package systems

import (
	"fmt"
	"strings"
	"testing"

	"github.com/milk9111/dropbar/component"
	"github.com/milk9111/dropbar/ecs"
	"github.com/milk9111/dropbar/ecs/entity"
)

func newBarWorld(t *testing.T) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	bar, err := entity.BuildDropBar(w, component.DefaultConfig(), 600, 400)
	if err != nil {
		t.Fatalf("BuildDropBar: %v", err)
	}
	return w, bar
}

// collect returns a system that copies every event seen this frame.
func collect(out *[]ecs.Event) ecs.System {
	return collector{out: out}
}

type collector struct {
	out *[]ecs.Event
}

func (c collector) Update(w *ecs.World) {
	*c.out = append(*c.out, w.Events().Drain()...)
}

func TestInputSystemMarksTap(t *testing.T) {
	cases := []struct {
		name    string
		pressed bool
	}{
		{"pressed", true},
		{"released", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, bar := newBarWorld(t)
			NewInputSystemFrom(func() bool { return c.pressed }).Update(w)

			tap := w.GetTapInput(bar)
			if tap.Pressed != c.pressed {
				t.Fatalf("Pressed = %v, want %v", tap.Pressed, c.pressed)
			}
			if c.pressed && tap.Source != "pointer" {
				t.Fatalf("Source = %q", tap.Source)
			}
		})
	}
}

func TestTapSystemStartsCurrentNode(t *testing.T) {
	w, bar := newBarWorld(t)
	var events []ecs.Event
	w.AddSystem(NewInputSystemFrom(func() bool { return true }))
	w.AddSystem(NewTapSystem())
	w.AddSystem(collect(&events))

	w.Update()

	db := w.GetDropBar(bar)
	if !db.Renderer.Animator().Running() {
		t.Fatalf("tap should start the animator")
	}
	if w.GetTapInput(bar).Pressed {
		t.Fatalf("tap should be consumed")
	}
	if len(events) != 1 || events[0].Type != ecs.EventTap {
		t.Fatalf("events = %+v", events)
	}
	tap := events[0].Data.(ecs.TapEvent)
	if tap.Node != 0 || tap.Dir != 1 || tap.Bar != bar || tap.Source != "pointer" {
		t.Fatalf("tap event = %+v", tap)
	}

	// A second tap mid-run is swallowed.
	events = nil
	w.Update()
	if len(events) != 0 {
		t.Fatalf("tap mid-run should not emit, got %+v", events)
	}
}

func TestAnimatorSystemSettlesAndAdvances(t *testing.T) {
	w, bar := newBarWorld(t)
	var events []ecs.Event
	w.AddSystem(NewTapSystem())
	w.AddSystem(NewAnimatorSystem(60))
	w.AddSystem(collect(&events))

	w.GetTapInput(bar).Pressed = true
	for frame := 0; frame < 120; frame++ {
		w.Update()
	}

	var settled []ecs.SettledEvent
	for _, evt := range events {
		if s, ok := evt.Data.(ecs.SettledEvent); ok {
			settled = append(settled, s)
		}
	}
	if len(settled) != 1 {
		t.Fatalf("settled events = %+v", settled)
	}
	if settled[0].Node != 0 || settled[0].Next != 1 || settled[0].Scale != 1 {
		t.Fatalf("settled = %+v", settled[0])
	}

	db := w.GetDropBar(bar)
	if db.Renderer.Animator().Running() {
		t.Fatalf("animator should stop after the node settles")
	}
	if db.Renderer.Bar().CurrIndex() != 1 {
		t.Fatalf("curr = %d, want 1", db.Renderer.Bar().CurrIndex())
	}
}

func TestAnimatorSystemEmitsBounce(t *testing.T) {
	w, bar := newBarWorld(t)
	var events []ecs.Event
	w.AddSystem(NewTapSystem())
	w.AddSystem(NewAnimatorSystem(60))
	w.AddSystem(collect(&events))

	for run := 0; run < 5; run++ {
		w.GetTapInput(bar).Pressed = true
		for frame := 0; frame < 100; frame++ {
			w.Update()
		}
	}

	var bounces []ecs.BounceEvent
	for _, evt := range events {
		if b, ok := evt.Data.(ecs.BounceEvent); ok {
			bounces = append(bounces, b)
		}
	}
	if len(bounces) != 1 {
		t.Fatalf("bounces = %+v", bounces)
	}
	if bounces[0].Node != 4 || bounces[0].Dir != -1 {
		t.Fatalf("bounce = %+v", bounces[0])
	}
}

func TestScriptTapSystem(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantTap bool
	}{
		{"tap_when_idle", `tap = idle`, true},
		{"never", `tap = false`, false},
		{"uses_frame", `tap = frame % 2 == 1 && curr == 0 && dir == 1 && nodes == 5`, true},
		{"stdlib_import", "math := import(\"math\")\ntap = math.abs(-1.5) == 1.5", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, bar := newBarWorld(t)
			s, err := NewScriptTapSystem(c.name, []byte(c.src))
			if err != nil {
				t.Fatalf("NewScriptTapSystem: %v", err)
			}
			s.Update(w)

			tap := w.GetTapInput(bar)
			if tap.Pressed != c.wantTap {
				t.Fatalf("Pressed = %v, want %v", tap.Pressed, c.wantTap)
			}
			if c.wantTap && tap.Source != "script" {
				t.Fatalf("Source = %q", tap.Source)
			}
		})
	}
}

func TestScriptTapSystemCompileError(t *testing.T) {
	if _, err := NewScriptTapSystem("broken", []byte(`tap = (`)); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestScriptTapSystemDisablesOnRuntimeError(t *testing.T) {
	w, bar := newBarWorld(t)
	s, err := NewScriptTapSystem("div", []byte(`tap = (1 / (frame - frame)) == 0`))
	if err != nil {
		t.Fatalf("NewScriptTapSystem: %v", err)
	}
	s.Update(w)
	s.Update(w)
	if !s.failed {
		t.Fatalf("runtime error should disable the script")
	}
	if w.GetTapInput(bar).Pressed {
		t.Fatalf("failed script should not tap")
	}
}

func TestEventLogSystem(t *testing.T) {
	w, bar := newBarWorld(t)
	var lines []string
	logger := &EventLogSystem{logf: func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}}

	w.Events().Push(ecs.Event{Type: ecs.EventTap, Data: ecs.TapEvent{Bar: bar, Node: 0, Dir: 1, Source: "pointer"}})
	w.Events().Push(ecs.Event{Type: ecs.EventSettled, Data: ecs.SettledEvent{Bar: bar, Node: 0, Scale: 1, Next: 1}})
	w.Events().Push(ecs.Event{Type: ecs.EventBounce, Data: ecs.BounceEvent{Bar: bar, Node: 4, Dir: -1}})
	logger.Update(w)

	if len(lines) != 3 {
		t.Fatalf("got %d lines: %v", len(lines), lines)
	}
	for i, want := range []string{"tap (pointer)", "settled at 1", "bounce at node=4"} {
		if !strings.Contains(lines[i], want) {
			t.Fatalf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
	}
	if w.Events().Len() != 0 {
		t.Fatalf("log system should drain the queue")
	}
}
