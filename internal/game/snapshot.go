package game

// ObstacleView is the read-only projection of one obstacle.
type ObstacleView struct {
	X          float64
	GapCenterY float64
	Passed     bool
}

// Snapshot captures the complete observable session state for rendering and
// tests. Presenters read it once per frame and must not feed anything back.
type Snapshot struct {
	Phase  Phase
	Tick   uint64
	Paused bool

	ActorX      float64
	ActorY      float64
	ActorVel    float64
	ActorRadius float64
	Rotation    float64 // Display-only pitch in degrees

	Obstacles     []ObstacleView
	ObstacleWidth float64
	GapHeight     float64

	WorldW          float64
	WorldH          float64
	GroundThickness float64

	Score     int
	Best      int
	NewRecord bool // Whether the last game over set a new record
}

// Snapshot returns the current session state. After the GameOver transition
// the session stops mutating, so the snapshot is naturally frozen at the last
// simulated tick.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, len(s.field.Obstacles()))
	for i, o := range s.field.Obstacles() {
		obstacles[i] = ObstacleView{X: o.X, GapCenterY: o.GapCenterY, Passed: o.Passed}
	}

	return Snapshot{
		Phase:           s.phase,
		Tick:            s.tick,
		Paused:          s.paused,
		ActorX:          s.actor.X,
		ActorY:          s.actor.Y,
		ActorVel:        s.actor.Vel,
		ActorRadius:     s.actor.Radius,
		Rotation:        s.actor.Rotation(),
		Obstacles:       obstacles,
		ObstacleWidth:   s.field.Width(),
		GapHeight:       s.field.GapHeight(),
		WorldW:          s.worldW,
		WorldH:          s.worldH,
		GroundThickness: s.cfg.Obstacles.GroundThickness,
		Score:           s.board.Score(),
		Best:            s.board.Best(),
		NewRecord:       s.newRecord,
	}
}
