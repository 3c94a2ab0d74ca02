package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/geom"
)

const (
	cellSize   = 28
	sidePanel  = 180
	boardInset = 20
)

var (
	backgroundColor = color.RGBA{16, 16, 24, 255}
	wellColor       = color.RGBA{28, 28, 40, 255}
	gridColor       = color.RGBA{44, 44, 60, 255}
	overlayColor    = color.RGBA{0, 0, 0, 170}
)

// Game implements ebiten.Game. The engine is stepped from Update, so drawing
// reads the state on the same goroutine.
type Game struct {
	engine   *game.Engine
	bindings []binding

	// nil unless started with -debug
	imguiBackend *debugui_ebiten.ImguiBackend
	imguiInput   *debugui.InputState
}

func (g *Game) Update() error {
	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
	}

	if g.imguiInput == nil || !g.imguiInput.WantCaptureKeyboard {
		for _, b := range g.bindings {
			if inpututil.IsKeyJustPressed(b.key) {
				g.engine.Press(b.cmd)
			}
		}
	}

	g.engine.Step(time.Second / time.Duration(ebiten.TPS()))

	if g.imguiBackend != nil {
		g.imguiBackend.EndFrame()
	}
	return nil
}

func rgba(c [4]float32, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(c[0] * 255 * alpha),
		G: uint8(c[1] * 255 * alpha),
		B: uint8(c[2] * 255 * alpha),
		A: uint8(c[3] * 255 * alpha),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	state := g.engine.State()
	size := state.Board().Size()
	wellW := float32(size.Width * cellSize)
	wellH := float32(size.Height * cellSize)

	vector.DrawFilledRect(screen, boardInset, boardInset, wellW, wellH, wellColor, false)
	vector.StrokeRect(screen, boardInset, boardInset, wellW, wellH, 2, gridColor, false)

	// row 0 is the floor
	fill := func(p geom.GridPos, c color.Color) {
		if !size.Contains(p) {
			return
		}
		x := float32(boardInset + p.X*cellSize)
		y := float32(boardInset + (size.Height-1-p.Y)*cellSize)
		vector.DrawFilledRect(screen, x+1, y+1, cellSize-2, cellSize-2, c, false)
	}

	for c := range state.Board().Cells() {
		fill(c.Pos, rgba(debugui.KindColor(c.Kind), 0.85))
	}
	if piece, ok := state.Active(); ok {
		if ghost, ok := state.GhostCells(); ok {
			for _, p := range ghost {
				fill(p, rgba(debugui.KindColor(piece.Kind), 0.25))
			}
		}
		cells, _ := state.ActiveCells()
		for _, p := range cells {
			fill(p, rgba(debugui.KindColor(piece.Kind), 1))
		}
	}

	panelX := boardInset*2 + int(wellW)
	counters := state.Counters()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", state.Score()), panelX, boardInset)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d", counters.Lines), panelX, boardInset+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Pieces: %d", counters.Pieces), panelX, boardInset+40)

	if state.Status() == game.GameOver {
		vector.DrawFilledRect(screen, boardInset, boardInset, wellW, wellH, overlayColor, false)
		ebitenutil.DebugPrintAt(screen, "Game Over, press r to restart", boardInset+10, boardInset+int(wellH)/2)
	}

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	size := g.engine.State().Board().Size()
	return boardInset*3 + size.Width*cellSize + sidePanel, boardInset*2 + size.Height*cellSize
}
