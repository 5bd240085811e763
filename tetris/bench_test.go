package tetris_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/tetris"
)

func BenchmarkSessionTick(b *testing.B) {
	cfg := tetris.DefaultConfig()
	cfg.Seed = 1
	s := newSession(b, cfg)
	rng := rand.New(rand.NewPCG(1, 2))

	script := make([]tetris.Intents, 1024)
	for i := range script {
		for _, a := range tetris.Actions[:tetris.ActionPause] {
			script[i].Set(a, rng.IntN(8) == 0)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Tick(script[i%len(script)])
		if s.GameOver() {
			s.Reset()
		}
	}
}

func BenchmarkSnapshot(b *testing.B) {
	s := newSession(b, tetris.DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Snapshot()
	}
}

func BenchmarkPieceRotate(b *testing.B) {
	board := tetris.NewBoard(10, 20)
	p := tetris.NewPiece(tetris.T, tetris.ShapeOf(tetris.T))
	p.Reset(board)
	p.HardDrop(board)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Rotate(board, tetris.Clockwise)
	}
}
