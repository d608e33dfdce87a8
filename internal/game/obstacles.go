package game

// pruneSlack is how far past the left boundary an obstacle's right edge may
// drift before it is removed.
const pruneSlack = 2.0

// Rand is the random-source capability used for gap placement.
// *rand.Rand satisfies it; tests may supply a deterministic stub.
type Rand interface {
	Float64() float64
}

// Obstacle is a paired top/bottom barrier with a vertical gap. Width and gap
// height are shared field constants; only position and the scoring flag vary.
type Obstacle struct {
	X          float64 // Left edge, decreases every tick
	GapCenterY float64 // Fixed at spawn
	Passed     bool    // Set once when the actor clears the right edge
}

// Field manages the live obstacles: spawn cadence, advancement, pruning and
// pass detection. Obstacles are kept in spawn order, which while active is
// also descending-x order.
type Field struct {
	obstacles []Obstacle
	rng       Rand

	width     float64 // Obstacle width
	gapHeight float64

	worldW float64
	worldH float64
}

// NewField creates an obstacle field for the given world dimensions.
func NewField(rng Rand, worldW, worldH, width, gapHeight float64) *Field {
	return &Field{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		width:     width,
		gapHeight: gapHeight,
		worldW:    worldW,
		worldH:    worldH,
	}
}

// Reset clears all obstacles, keeping the configured geometry.
func (f *Field) Reset() {
	f.obstacles = f.obstacles[:0]
}

// SetWorldSize updates the world dimensions.
func (f *Field) SetWorldSize(worldW, worldH float64) {
	f.worldW = worldW
	f.worldH = worldH
}

// Obstacles returns the live obstacles in spawn order.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// Width returns the shared obstacle width.
func (f *Field) Width() float64 {
	return f.width
}

// GapHeight returns the shared gap height.
func (f *Field) GapHeight() float64 {
	return f.gapHeight
}

// Advance moves every obstacle left by speed and prunes, order-preserving,
// those whose right edge has scrolled past the left boundary.
func (f *Field) Advance(speed float64) {
	for i := range f.obstacles {
		f.obstacles[i].X -= speed
	}

	live := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.X+f.width > -pruneSlack {
			live = append(live, o)
		}
	}
	f.obstacles = live
}

// MaybeSpawn appends a new obstacle at the world's right edge when the tick
// counter lands on the spawn interval. The gap center is drawn uniformly from
// the band that keeps the whole gap between the top margin and the bottom
// margin.
func (f *Field) MaybeSpawn(tick uint64, interval int, topMargin, bottomMargin float64) {
	if interval <= 0 || tick%uint64(interval) != 0 {
		return
	}

	minCenter := topMargin + f.gapHeight/2
	maxCenter := f.worldH - bottomMargin - f.gapHeight/2
	if maxCenter < minCenter {
		maxCenter = minCenter // Degenerate world, pin the gap to the top band
	}

	center := minCenter + f.rng.Float64()*(maxCenter-minCenter)

	f.obstacles = append(f.obstacles, Obstacle{
		X:          f.worldW,
		GapCenterY: center,
	})
}

// DetectAndMarkPassed marks every not-yet-passed obstacle whose right edge
// has crossed behind the given actor left edge and returns how many were
// newly marked this tick. The flag is monotonic: an obstacle scores at most
// once over its lifetime.
func (f *Field) DetectAndMarkPassed(actorLeft float64) int {
	passed := 0
	for i := range f.obstacles {
		if !f.obstacles[i].Passed && f.obstacles[i].X+f.width < actorLeft {
			f.obstacles[i].Passed = true
			passed++
		}
	}
	return passed
}

// Collides reports whether the actor hits any live obstacle.
func (f *Field) Collides(a Actor) bool {
	for _, o := range f.obstacles {
		if HitsObstacle(a, o, f.width, f.gapHeight) {
			return true
		}
	}
	return false
}
