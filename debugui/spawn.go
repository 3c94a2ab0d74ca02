package debugui

import (
	"github.com/plus3/blockfall/game"
)

// Attach registers an ImguiSystem on engine rendering every debug window and
// returns the input state it keeps current.
func Attach(engine *game.Engine) *InputState {
	input := &InputState{}
	perf := NewPerformanceStatsWindow(engine.Stats, 120)
	inspector := NewStateInspectorWindow(engine)
	viewer := NewBoardViewerWindow(engine, 12)
	timer := NewFrameTimer()

	engine.Register(&ImguiSystem[game.State]{
		Input: input,
		Items: []ImguiItem{
			{Render: func() { perf.Render(timer.GetDeltaTime()) }},
			{Render: inspector.Render},
			{Render: viewer.Render},
		},
	})
	return input
}
