package main

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/geom"
)

const gameOverText = "Game Over, press r to restart"

var kindColors = [geom.KindCount]tcell.Color{
	geom.KindO: tcell.ColorYellow,
	geom.KindI: tcell.ColorAqua,
	geom.KindJ: tcell.ColorBlue,
	geom.KindL: tcell.ColorOrange,
	geom.KindS: tcell.ColorGreen,
	geom.KindZ: tcell.ColorRed,
	geom.KindT: tcell.ColorPurple,
}

func kindColor(k geom.Kind) tcell.Color {
	if int(k) < len(kindColors) {
		return kindColors[k]
	}
	return tcell.ColorGray
}

type shownCell struct {
	active bool
	kind   geom.Kind
}

// view mirrors the engine output for drawing. The engine goroutine writes it
// through the game.Sink methods; the UI goroutine reads it in draw.
type view struct {
	mu     sync.Mutex
	size   geom.Size
	cells  map[geom.GridPos]shownCell
	status game.Status
	score  int
	lines  int
}

func newView(size geom.Size) *view {
	return &view{
		size:  size,
		cells: make(map[geom.GridPos]shownCell),
	}
}

func (v *view) CellsChanged(updates []game.CellUpdate) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, u := range updates {
		if u.Present {
			v.cells[u.Pos] = shownCell{active: u.Active, kind: u.Kind}
		} else {
			delete(v.cells, u.Pos)
		}
	}
}

func (v *view) StatusChanged(status game.Status) {
	v.mu.Lock()
	v.status = status
	v.mu.Unlock()
}

func (v *view) ScoreChanged(score int) {
	v.mu.Lock()
	v.score = score
	v.mu.Unlock()
}

func (v *view) Notify(event game.Event) {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch event.Kind {
	case game.EventLinesCleared:
		v.lines += event.Lines
	case game.EventRestarted:
		v.lines = 0
	}
}

// Score returns the last published score.
func (v *view) Score() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.score
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// draw renders the board with two terminal columns per cell, centred in the
// screen, with row 0 at the bottom.
func (v *view) draw(screen tcell.Screen) {
	v.mu.Lock()
	defer v.mu.Unlock()

	screen.Clear()
	sw, sh := screen.Size()
	boardW := v.size.Width*2 + 2
	boardH := v.size.Height + 2
	left := max((sw-boardW)/2, 0)
	top := max((sh-boardH)/2, 0)

	frame := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 0; y < boardH; y++ {
		screen.SetContent(left, top+y, '│', nil, frame)
		screen.SetContent(left+boardW-1, top+y, '│', nil, frame)
	}
	for x := 0; x < boardW; x++ {
		screen.SetContent(left+x, top, '─', nil, frame)
		screen.SetContent(left+x, top+boardH-1, '─', nil, frame)
	}

	for pos, cell := range v.cells {
		style := tcell.StyleDefault.Background(kindColor(cell.kind))
		if !cell.active {
			style = style.Dim(true)
		}
		sx := left + 1 + pos.X*2
		sy := top + 1 + (v.size.Height - 1 - pos.Y)
		screen.SetContent(sx, sy, ' ', nil, style)
		screen.SetContent(sx+1, sy, ' ', nil, style)
	}

	info := tcell.StyleDefault.Bold(true)
	drawText(screen, left+boardW+2, top+1, info, fmt.Sprintf("Score: %d", v.score))
	drawText(screen, left+boardW+2, top+2, tcell.StyleDefault, fmt.Sprintf("Lines: %d", v.lines))

	if v.status == game.GameOver {
		x := max((sw-len(gameOverText))/2, 0)
		drawText(screen, x, top+boardH/2, tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true), gameOverText)
	}
}
