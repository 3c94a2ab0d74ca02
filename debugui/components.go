package debugui

import (
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/pipeline"
)

type PerformanceStatsWindow struct {
	stats   func() *pipeline.SchedulerStats
	history *frameHistory
}

type StateInspectorWindow struct {
	engine *game.Engine
}

type BoardViewerWindow struct {
	engine    *game.Engine
	cellSize  float32
	showGhost bool
}
