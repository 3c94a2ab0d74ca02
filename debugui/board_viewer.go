package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/geom"
)

// KindColors are the RGBA colors of the standard kinds, shared with the frontends.
var KindColors = [geom.KindCount][4]float32{
	geom.KindO: {0.95, 0.85, 0.20, 1},
	geom.KindI: {0.20, 0.85, 0.95, 1},
	geom.KindJ: {0.25, 0.40, 0.95, 1},
	geom.KindL: {0.95, 0.55, 0.15, 1},
	geom.KindS: {0.30, 0.85, 0.30, 1},
	geom.KindZ: {0.90, 0.25, 0.25, 1},
	geom.KindT: {0.70, 0.30, 0.90, 1},
}

// KindColor returns the color for k, grey for kinds outside the standard set.
func KindColor(k geom.Kind) [4]float32 {
	if int(k) < len(KindColors) {
		return KindColors[k]
	}
	return [4]float32{0.6, 0.6, 0.6, 1}
}

func NewBoardViewerWindow(engine *game.Engine, cellSize float32) *BoardViewerWindow {
	return &BoardViewerWindow{
		engine:    engine,
		cellSize:  cellSize,
		showGhost: true,
	}
}

func color(rgba [4]float32, alpha float32) uint32 {
	return imgui.ColorU32Vec4(imgui.NewVec4(rgba[0], rgba[1], rgba[2], rgba[3]*alpha))
}

func (bv *BoardViewerWindow) Render() {
	if !imgui.BeginV("Board Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Checkbox("Ghost", &bv.showGhost)

	state := bv.engine.State()
	size := state.Board().Size()
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	cs := bv.cellSize

	// row 0 is drawn at the bottom
	fill := func(p geom.GridPos, col uint32) {
		x := origin.X + float32(p.X)*cs
		y := origin.Y + float32(size.Height-1-p.Y)*cs
		drawList.AddRectFilled(imgui.NewVec2(x+1, y+1), imgui.NewVec2(x+cs-1, y+cs-1), col)
	}

	drawList.AddRectFilled(origin,
		imgui.NewVec2(origin.X+float32(size.Width)*cs, origin.Y+float32(size.Height)*cs),
		color([4]float32{0.08, 0.08, 0.1, 1}, 1))

	for c := range state.Board().Cells() {
		fill(c.Pos, color(KindColor(c.Kind), 0.8))
	}

	if piece, ok := state.Active(); ok {
		if ghost, ok := state.GhostCells(); ok && bv.showGhost {
			for _, p := range ghost {
				fill(p, color(KindColor(piece.Kind), 0.25))
			}
		}
		cells, _ := state.ActiveCells()
		for _, p := range cells {
			if size.Contains(p) {
				fill(p, color(KindColor(piece.Kind), 1))
			}
		}
	}

	imgui.Dummy(imgui.NewVec2(float32(size.Width)*cs, float32(size.Height)*cs))
	imgui.End()
}
