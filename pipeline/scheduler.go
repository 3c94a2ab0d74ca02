package pipeline

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Frames          uint64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler owns a world value and executes its systems in order.
type Scheduler[W any] struct {
	world       *W
	systems     []System[W]
	systemStats []*systemStatsInternal
	commands    *Commands
	frames      uint64
}

// NewScheduler creates a scheduler for the given world.
func NewScheduler[W any](world *W) *Scheduler[W] {
	return &Scheduler[W]{
		world:    world,
		systems:  make([]System[W], 0),
		commands: newCommands(),
	}
}

// World returns the world the scheduler owns.
func (s *Scheduler[W]) World() *W {
	return s.world
}

// Register appends a system. Its stats are reported under the system's type name.
func (s *Scheduler[W]) Register(system System[W]) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	s.register(systemType.Name(), system)
}

// RegisterFunc appends a function as a named system.
func (s *Scheduler[W]) RegisterFunc(name string, fn func(frame *UpdateFrame[W])) {
	s.register(name, SystemFunc[W](fn))
}

func (s *Scheduler[W]) register(name string, system System[W]) {
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time and
// then flushes the deferred commands.
func (s *Scheduler[W]) Once(dt time.Duration) {
	frame := newUpdateFrame(s.frames, dt, s.world, s.commands)
	s.frames++

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush()
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler[W]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler[W]) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
