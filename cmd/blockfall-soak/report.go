package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration       time.Duration
	TicksPerSecond int
	Seed           uint64
	StartLevel     int

	// Results
	TotalTicks int64
	TotalTime  time.Duration
	TickTime   Stats
	Stages     []tetris.StageStats

	Pieces    int
	Lines     int
	Tetrises  int
	LevelUps  int
	Holds     int
	GameOvers int
	BestScore int
	BestLevel int

	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	lastSample time.Time
}

// Stats summarises the wall time between ticks.
type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P50     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	n := len(s.Samples)
	if n == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	s.Min = sorted[0]
	s.Max = sorted[n-1]
	s.Avg = total / time.Duration(n)
	s.P50 = sorted[n/2]
	s.P99 = sorted[n*99/100]
}

// Record tallies a session event.
func (r *Report) Record(e tetris.Event) {
	switch e.Kind {
	case tetris.EventPieceLocked:
		r.Pieces++
	case tetris.EventLinesCleared:
		r.Lines += e.Lines
		if e.Lines >= 4 {
			r.Tetrises++
		}
		r.BestScore = max(r.BestScore, e.Score)
	case tetris.EventLevelUp:
		r.LevelUps++
		r.BestLevel = max(r.BestLevel, e.Level)
	case tetris.EventHoldSwapped:
		r.Holds++
	case tetris.EventGameOver:
		r.GameOvers++
		r.BestScore = max(r.BestScore, e.Score)
	}
}

// Sample records the wall time since the previous sample. The first call
// only starts the clock.
func (r *Report) Sample() {
	now := time.Now()
	if !r.lastSample.IsZero() {
		r.TickTime.Samples = append(r.TickTime.Samples, now.Sub(r.lastSample))
	}
	r.lastSample = now
}

// Finish copies the scheduler statistics and closes the timing samples.
func (r *Report) Finish(session *tetris.Session) {
	stats := session.Stats()
	r.TotalTicks = stats.TotalTicks
	r.Stages = stats.Stages
	r.BestLevel = max(r.BestLevel, session.Level())
	r.BestScore = max(r.BestScore, session.Score())
	r.TickTime.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Run Configuration
- **Run Duration:** {{.Duration}}
- **Tick Rate:** {{if .TicksPerSecond}}{{.TicksPerSecond}}/s{{else}}unthrottled{{end}}
- **Seed:** {{.Seed}}
- **Start Level:** {{.StartLevel}}

## Timing
- **Total Ticks:** {{.TotalTicks}} in {{.TotalTime}} ({{rate .TotalTicks .TotalTime}} ticks/s)
- **Tick Interval:** avg {{.TickTime.Avg}}, p50 {{.TickTime.P50}}, p99 {{.TickTime.P99}}, min {{.TickTime.Min}}, max {{.TickTime.Max}}

## Stages
| Stage | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Stages}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Gameplay
- **Pieces Locked:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}} ({{.Tetrises}} four-line clears)
- **Holds:** {{.Holds}}
- **Level Ups:** {{.LevelUps}} (best level {{.BestLevel}})
- **Games Over:** {{.GameOvers}}
- **Best Score:** {{.BestScore}}
- **Lines per Piece:** {{ratio .Lines .Pieces}}

## Memory
- **Heap:** {{mb .MemStatsStart.HeapAlloc}} MB -> {{mb .MemStatsEnd.HeapAlloc}} MB
- **Allocated During Run:** {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}} MB
- **GC Cycles:** {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}{{if .GCPauseMetrics}}, total pause {{ns .MemStatsEnd.PauseTotalNs}}{{end}}
`

	fm := template.FuncMap{
		"mb": func(b uint64) string {
			return fmt.Sprintf("%.2f", float64(b)/1024/1024)
		},
		"bsub": func(a, b uint64) uint64 {
			return a - b
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"rate": func(ticks int64, d time.Duration) string {
			if d <= 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.0f", float64(ticks)/d.Seconds())
		},
		"ratio": func(a, b int) string {
			if b == 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.3f", float64(a)/float64(b))
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
