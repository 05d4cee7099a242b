package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dropbar/ecs"
)

// InputSystem turns pointer presses into taps on every bar.
type InputSystem struct {
	pressed func() bool
}

// NewInputSystem creates an InputSystem reading the mouse and touch screen.
func NewInputSystem() *InputSystem {
	return &InputSystem{pressed: pointerJustPressed}
}

// NewInputSystemFrom creates an InputSystem with a custom press source.
func NewInputSystemFrom(pressed func() bool) *InputSystem {
	return &InputSystem{pressed: pressed}
}

// Update marks a tap on every bar when the pointer went down this frame.
func (s *InputSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.pressed == nil || !s.pressed() {
		return
	}
	for _, id := range w.TapInputs().Entities() {
		tap, _ := w.TapInputs().Get(id)
		if tap == nil {
			continue
		}
		tap.Pressed = true
		tap.Source = "pointer"
	}
}

func pointerJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}
