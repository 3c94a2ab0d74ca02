// Package debugui renders Dear ImGui debug windows for a running engine:
// pipeline timings, a state inspector and a board viewer.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/pipeline"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Frontends check it before forwarding keys to the game.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the end of the frame,
// after the game systems have run. Input is refreshed when non-nil.
type ImguiSystem[W any] struct {
	Items []ImguiItem
	Input *InputState
}

// Execute updates the input state and queues all render functions.
func (i *ImguiSystem[W]) Execute(frame *pipeline.UpdateFrame[W]) {
	if i.Input != nil {
		io := imgui.CurrentIO()
		i.Input.WantCaptureMouse = io.WantCaptureMouse()
		i.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}
