package game

import (
	"math/rand"
	"testing"
)

// fixedRand always returns the same draw, pinning gap centers for tests.
type fixedRand struct{ v float64 }

func (r fixedRand) Float64() float64 { return r.v }

func TestFieldSpawnCadence(t *testing.T) {
	f := NewField(fixedRand{0.5}, 80, 24, 5, 10)

	for tick := uint64(0); tick <= 200; tick++ {
		f.MaybeSpawn(tick, 100, 3, 3)
	}

	// Ticks 0, 100 and 200 land on the interval: exactly three spawns.
	obstacles := f.Obstacles()
	if len(obstacles) != 3 {
		t.Fatalf("expected 3 spawns, got %d", len(obstacles))
	}
	for i, o := range obstacles {
		if o.X != 80 {
			t.Errorf("obstacle %d spawned at x=%f, expected world right edge 80", i, o.X)
		}
		if o.Passed {
			t.Errorf("obstacle %d spawned already passed", i)
		}
	}
}

func TestFieldSpawnGapWithinBand(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := NewField(rng, 80, 24, 5, 10)

	for tick := uint64(0); tick < 200; tick++ {
		f.MaybeSpawn(tick, 1, 3, 3)
	}

	// Gap must lie fully between the top margin and worldH - bottom margin:
	// center in [3+5, 24-3-5].
	for i, o := range f.Obstacles() {
		if o.GapCenterY < 8 || o.GapCenterY > 16 {
			t.Errorf("obstacle %d gap center %f outside [8, 16]", i, o.GapCenterY)
		}
	}
}

func TestFieldAdvanceAndPrune(t *testing.T) {
	f := NewField(fixedRand{0.5}, 80, 24, 5, 10)
	f.obstacles = append(f.obstacles,
		Obstacle{X: 1, GapCenterY: 10},
		Obstacle{X: 40, GapCenterY: 14},
	)

	f.Advance(5)

	// First obstacle at x=-4: right edge 1, still inside the prune slack.
	obstacles := f.Obstacles()
	if len(obstacles) != 2 {
		t.Fatalf("expected 2 obstacles after first advance, got %d", len(obstacles))
	}
	if obstacles[0].X != -4 || obstacles[1].X != 35 {
		t.Errorf("positions after advance = %f, %f, expected -4, 35", obstacles[0].X, obstacles[1].X)
	}

	f.Advance(5)

	// First obstacle right edge now -4, past the slack: pruned, order preserved.
	obstacles = f.Obstacles()
	if len(obstacles) != 1 {
		t.Fatalf("expected 1 obstacle after prune, got %d", len(obstacles))
	}
	if obstacles[0].X != 30 || obstacles[0].GapCenterY != 14 {
		t.Errorf("surviving obstacle = %+v, expected the second one at x=30", obstacles[0])
	}
}

func TestFieldDetectAndMarkPassed(t *testing.T) {
	f := NewField(fixedRand{0.5}, 80, 24, 5, 10)
	f.obstacles = append(f.obstacles,
		Obstacle{X: 3.9, GapCenterY: 10},  // right edge 8.9, behind actor left 9
		Obstacle{X: 40, GapCenterY: 14},   // still ahead
	)

	if n := f.DetectAndMarkPassed(9); n != 1 {
		t.Fatalf("first detect returned %d, expected 1", n)
	}
	if !f.Obstacles()[0].Passed {
		t.Error("first obstacle should be marked passed")
	}
	if f.Obstacles()[1].Passed {
		t.Error("second obstacle should not be marked passed")
	}

	// The flag is monotonic: the same obstacle never scores twice.
	if n := f.DetectAndMarkPassed(9); n != 0 {
		t.Errorf("second detect returned %d, expected 0", n)
	}
}

func TestFieldCollides(t *testing.T) {
	f := NewField(fixedRand{0.5}, 80, 24, 5, 10)
	f.obstacles = append(f.obstacles, Obstacle{X: 9, GapCenterY: 12})

	inGap := NewActor(10, 12, 1)
	if f.Collides(inGap) {
		t.Error("actor centered in the gap should not collide")
	}

	aboveGap := NewActor(10, 4, 1)
	if !f.Collides(aboveGap) {
		t.Error("actor above the gap should collide")
	}
}

func TestFieldReset(t *testing.T) {
	f := NewField(fixedRand{0.5}, 80, 24, 5, 10)
	f.MaybeSpawn(0, 1, 3, 3)
	if len(f.Obstacles()) != 1 {
		t.Fatal("expected a spawned obstacle")
	}

	f.Reset()
	if len(f.Obstacles()) != 0 {
		t.Errorf("expected empty field after reset, got %d obstacles", len(f.Obstacles()))
	}
}
