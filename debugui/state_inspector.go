package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
)

var inspectorCommands = []game.Command{
	game.MoveLeft, game.Rotate, game.MoveRight, game.SoftDrop, game.HardDrop, game.Restart,
}

func NewStateInspectorWindow(engine *game.Engine) *StateInspectorWindow {
	return &StateInspectorWindow{engine: engine}
}

func (si *StateInspectorWindow) Render() {
	if !imgui.BeginV("State Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := si.engine.Snapshot()
	imgui.Text(fmt.Sprintf("Phase: %s", snap.Phase))
	imgui.Text(fmt.Sprintf("Status: %s", snap.Status))
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Board: %dx%d, %d locked", snap.Size.Width, snap.Size.Height, len(snap.Locked)))
	imgui.Text(fmt.Sprintf("Fall timer: %s", snap.FallElapsed))

	imgui.Separator()
	if snap.HasActive {
		imgui.Text(fmt.Sprintf("Active: %s rot %d at %s", snap.Active.Kind, snap.Active.Rotation, snap.Active.Origin))
		for _, p := range snap.ActiveCells {
			imgui.BulletText(p.String())
		}
	} else {
		imgui.Text("Active: none")
	}

	imgui.Separator()
	for i, cmd := range inspectorCommands {
		if i > 0 {
			imgui.SameLine()
		}
		if imgui.Button(cmd.String()) {
			si.engine.Press(cmd)
		}
	}

	if imgui.TreeNodeStr("Session Counters") {
		imgui.Text(fmt.Sprintf("Pieces: %d", snap.Counters.Pieces))
		imgui.Text(fmt.Sprintf("Lines: %d", snap.Counters.Lines))
		imgui.Text(fmt.Sprintf("Games over: %d", snap.Counters.GamesOver))

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ClearsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Rows")
			imgui.TableSetupColumn("Clears")
			imgui.TableSetupColumn("Points each")
			imgui.TableHeadersRow()

			for rows := 1; rows < len(snap.Counters.Clears); rows++ {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", rows))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", snap.Counters.Clears[rows]))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", game.Points(rows)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
