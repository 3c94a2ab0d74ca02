package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/pipeline"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Games     int
	Width     int
	Height    int
	FrameTime time.Duration
	PressRate float64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Counters       game.Counters
	BestScore      int
	Systems        []pipeline.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

// Add folds one bot's session into the report.
func (r *Report) Add(res result) {
	r.TotalUpdates += int64(len(res.samples))
	r.UpdateTime.Samples = append(r.UpdateTime.Samples, res.samples...)

	r.Counters.Pieces += res.counters.Pieces
	r.Counters.Lines += res.counters.Lines
	r.Counters.GamesOver += res.counters.GamesOver
	for i, n := range res.counters.Clears {
		r.Counters.Clears[i] += n
	}
	r.BestScore = max(r.BestScore, res.score)

	if r.Systems == nil {
		r.Systems = make([]pipeline.SystemStats, len(res.systems))
		for i, sys := range res.systems {
			r.Systems[i].Name = sys.Name
		}
	}
	for i, sys := range res.systems {
		merged := &r.Systems[i]
		if merged.ExecutionCount == 0 || sys.MinDuration < merged.MinDuration {
			merged.MinDuration = sys.MinDuration
		}
		merged.MaxDuration = max(merged.MaxDuration, sys.MaxDuration)
		merged.ExecutionCount += sys.ExecutionCount
		merged.TotalDuration += sys.TotalDuration
		if merged.ExecutionCount > 0 {
			merged.AvgDuration = merged.TotalDuration / time.Duration(merged.ExecutionCount)
		}
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Concurrent Games:** {{.Games}}
- **Board:** {{.Width}}x{{.Height}}
- **Simulated Frame Time:** {{.FrameTime}}
- **Press Rate:** {{printf "%.2f" .PressRate}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
  - **P99:** {{.UpdateTime.P99}}

## Systems
| System | Runs | Avg | Max |
|--------|------|-----|-----|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Gameplay
- **Pieces Spawned:** {{.Counters.Pieces}}
- **Lines Cleared:** {{.Counters.Lines}}
- **Games Over:** {{.Counters.GamesOver}}
- **Best Score:** {{.BestScore}}
{{- range $rows, $n := .Counters.Clears}}{{if $rows}}
- {{$rows}}-row clears: {{$n}}{{end}}{{end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Heap In Use:** {{mb .MemStatsEnd.HeapInuse}} MiB
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
