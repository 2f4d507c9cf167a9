// Package debugui provides immediate-mode GUI overlays for blockfall hosts using Dear ImGui.
// Windows are registered as ImguiItems and rendered by ImguiSystem inside the engine frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/engine"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state.
// Hosts check it before treating keys as game input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the end of the frame,
// after queued actions have been applied, and refreshes the input state.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState *ImguiInputState
}

// Add registers a render function.
func (i *ImguiSystem) Add(render func()) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *engine.UpdateFrame) {
	if i.InputState != nil {
		i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}
