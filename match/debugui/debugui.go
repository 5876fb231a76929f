// Package debugui renders Dear ImGui inspection panels for a running match.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockbattle/match"
)

// Panel holds a Dear ImGui render function drawn once per frame.
type Panel struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input,
// so the host can ignore game input while a panel has focus.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// PanelSystem defers every panel's render function to the end of the frame,
// after the match state for the frame is final.
type PanelSystem struct {
	Panels []Panel
	Input  InputState
}

// Add appends a panel.
func (p *PanelSystem) Add(render func()) {
	p.Panels = append(p.Panels, Panel{Render: render})
}

// Execute updates input state and queues all panel render functions.
func (p *PanelSystem) Execute(frame *match.Frame) {
	p.Input.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	p.Input.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, panel := range p.Panels {
		frame.Commands.Defer(panel.Render)
	}
}
