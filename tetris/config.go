package tetris

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// TickRate is the number of ticks per second the default timings assume.
const TickRate = 60

// ErrInvalidConfig is wrapped by every Validate error.
var ErrInvalidConfig = errors.New("tetris: invalid config")

// Config holds every tunable of a session. Durations are in ticks.
type Config struct {
	Width  int
	Height int

	// Shapes overrides the spawn orientation of individual kinds.
	Shapes map[Cell]Shape

	// GravityTable is the number of ticks per automatic drop, indexed by
	// level. Levels past the end use the last entry.
	GravityTable []int
	// LinesPerLevel is the number of lines to clear at a level before moving
	// to the next, indexed by level. Levels past the end use the last entry.
	LinesPerLevel []int
	MaxLevel      int
	StartLevel    int

	SoftDropInterval int
	DASDelay         int
	ARRInterval      int
	RotateRepeat     int
	HardDropRepeat   int
	LockDelay        int

	QueueDepth int

	// Seed drives the bag shuffles. Zero picks a time based seed.
	Seed uint64
}

// DefaultConfig returns the standard 10x20 setup tuned for 60 ticks a second.
func DefaultConfig() Config {
	return Config{
		Width:  10,
		Height: 20,
		GravityTable: []int{
			48, 43, 38, 33, 28, 23, 18, 13, 8, 6,
			5, 5, 5, 4, 4, 4, 3, 3, 3, 2,
			1,
		},
		LinesPerLevel: []int{
			10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
			15, 15, 15, 15, 15, 20, 20, 20, 20, 20,
		},
		MaxLevel:         20,
		SoftDropInterval: 2,
		DASDelay:         10,
		ARRInterval:      2,
		RotateRepeat:     15,
		HardDropRepeat:   20,
		LockDelay:        30,
		QueueDepth:       7,
	}
}

// clone copies the tables so a session never shares them with its caller.
func (c Config) clone() Config {
	c.Shapes = maps.Clone(c.Shapes)
	c.GravityTable = slices.Clone(c.GravityTable)
	c.LinesPerLevel = slices.Clone(c.LinesPerLevel)
	return c
}

// Validate checks the config for values a session cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width < MaxShapeSize || c.Height < MaxShapeSize:
		return fmt.Errorf("%w: board %dx%d smaller than a piece", ErrInvalidConfig, c.Width, c.Height)
	case len(c.GravityTable) == 0:
		return fmt.Errorf("%w: empty gravity table", ErrInvalidConfig)
	case len(c.LinesPerLevel) == 0:
		return fmt.Errorf("%w: empty lines-per-level table", ErrInvalidConfig)
	case c.MaxLevel < 0:
		return fmt.Errorf("%w: negative max level", ErrInvalidConfig)
	case c.StartLevel < 0 || c.StartLevel > c.MaxLevel:
		return fmt.Errorf("%w: start level %d outside [0,%d]", ErrInvalidConfig, c.StartLevel, c.MaxLevel)
	case c.QueueDepth <= 0:
		return fmt.Errorf("%w: queue depth %d", ErrInvalidConfig, c.QueueDepth)
	}

	for level, ticks := range c.GravityTable {
		if ticks <= 0 {
			return fmt.Errorf("%w: gravity at level %d is %d ticks", ErrInvalidConfig, level, ticks)
		}
	}
	for level, lines := range c.LinesPerLevel {
		if lines <= 0 {
			return fmt.Errorf("%w: level %d needs %d lines", ErrInvalidConfig, level, lines)
		}
	}

	delays := []struct {
		name  string
		ticks int
	}{
		{"soft drop interval", c.SoftDropInterval},
		{"DAS delay", c.DASDelay},
		{"ARR interval", c.ARRInterval},
		{"rotate repeat", c.RotateRepeat},
		{"hard drop repeat", c.HardDropRepeat},
		{"lock delay", c.LockDelay},
	}
	for _, d := range delays {
		if d.ticks <= 0 {
			return fmt.Errorf("%w: %s is %d ticks", ErrInvalidConfig, d.name, d.ticks)
		}
	}

	for kind, shape := range c.Shapes {
		if !kind.IsPiece() {
			return fmt.Errorf("%w: shape override for %s", ErrInvalidConfig, kind)
		}
		if shape.Kind() != kind {
			return fmt.Errorf("%w: shape override for %s is filled with %s", ErrInvalidConfig, kind, shape.Kind())
		}
	}
	return nil
}

// ShapeOf returns the spawn orientation for kind, honouring overrides.
func (c Config) ShapeOf(kind Cell) Shape {
	if s, ok := c.Shapes[kind]; ok {
		return s
	}
	return ShapeOf(kind)
}

// GravityInterval returns the ticks per automatic drop at level.
func (c Config) GravityInterval(level int) int {
	return clampedEntry(c.GravityTable, level)
}

// LinesToLevelUp returns how many lines must be cleared at level to advance.
func (c Config) LinesToLevelUp(level int) int {
	return clampedEntry(c.LinesPerLevel, level)
}

func clampedEntry(table []int, level int) int {
	return table[max(0, min(level, len(table)-1))]
}

var lineScores = [...]int{0, 40, 100, 300, 1200}

// LineScore returns the points for clearing lines rows at once at level.
func LineScore(lines, level int) int {
	lines = max(0, min(lines, len(lineScores)-1))
	return lineScores[lines] * (level + 1)
}
