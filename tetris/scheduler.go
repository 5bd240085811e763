package tetris

import (
	"context"
	"reflect"
	"time"
)

// Stage is one step of a session tick. Stages run in registration order.
type Stage interface {
	Execute(frame *Frame)
}

// Frame is the per-tick context handed to every stage.
type Frame struct {
	Tick    uint64
	Intents Intents
	Session *Session
	Events  *Events

	halted bool
}

// Halt stops the remaining stages of this tick from running.
func (f *Frame) Halt() {
	f.halted = true
}

// SchedulerStats provides statistics about tick execution.
type SchedulerStats struct {
	StageCount int
	TotalTicks int64
	Stages     []StageStats
}

// StageStats provides execution statistics for a single stage.
type StageStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type stageStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs the stages of a session once per tick.
type Scheduler struct {
	session    *Session
	stages     []Stage
	stageStats []*stageStatsInternal
	ticks      int64
}

// NewScheduler creates a scheduler for the given session.
func NewScheduler(session *Session) *Scheduler {
	return &Scheduler{
		session: session,
		stages:  make([]Stage, 0),
	}
}

// Register appends a stage to the tick.
func (s *Scheduler) Register(stage Stage) {
	s.stages = append(s.stages, stage)

	stageType := reflect.TypeOf(stage)
	if stageType.Kind() == reflect.Ptr {
		stageType = stageType.Elem()
	}

	s.stageStats = append(s.stageStats, &stageStatsInternal{
		name:        stageType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once runs a single tick with the given intents and then delivers the events
// it raised.
func (s *Scheduler) Once(intents Intents) {
	s.session.tick++
	s.ticks++
	frame := &Frame{
		Tick:    s.session.tick,
		Intents: intents,
		Session: s.session,
		Events:  newEvents(s.session.tick),
	}

	for i, stage := range s.stages {
		start := time.Now()
		stage.Execute(frame)
		duration := time.Since(start)

		stats := s.stageStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if frame.halted {
			break
		}
	}

	frame.Events.Flush(s.session.bus)
}

// Run ticks at the given interval, asking poll for the intents of each tick,
// until the context is cancelled or the session exits.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, poll func() Intents) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Once(poll())
			if s.session.Exited() {
				return
			}
		}
	}
}

// GetStats returns statistics about stage execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		StageCount: len(s.stages),
		TotalTicks: s.ticks,
		Stages:     make([]StageStats, len(s.stageStats)),
	}

	for i, internal := range s.stageStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Stages[i] = StageStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
