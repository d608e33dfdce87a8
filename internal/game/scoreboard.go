package game

// ScoreStore is the narrow persistence capability the scoreboard writes
// through. Implementations hold one slot: the best score.
type ScoreStore interface {
	// Load returns the stored best score.
	Load() (int, error)
	// Save records a new best score.
	Save(score int) error
}

// Scoreboard tracks the session score and the best score across sessions.
// Persistence is best-effort: a missing or failing store never surfaces past
// this boundary, it only means the best score won't outlive the process.
type Scoreboard struct {
	score int
	best  int
	store ScoreStore
}

// NewScoreboard creates a scoreboard, loading the best score from the store.
// Any load failure (or a nil store) defaults best to 0.
func NewScoreboard(store ScoreStore) *Scoreboard {
	b := &Scoreboard{store: store}
	if store != nil {
		if best, err := store.Load(); err == nil && best > 0 {
			b.best = best
		}
	}
	return b
}

// Score returns the current session score.
func (b *Scoreboard) Score() int {
	return b.score
}

// Best returns the best known score.
func (b *Scoreboard) Best() int {
	return b.best
}

// Increment adds one to the session score.
func (b *Scoreboard) Increment() {
	b.score++
}

// ResetSession zeroes the session score; best is untouched.
func (b *Scoreboard) ResetSession() {
	b.score = 0
}

// Finalize compares the session score to the best. On improvement it updates
// best, persists it, and reports a new record. This is the only write path to
// durable storage; write failures are swallowed, leaving the in-memory best
// correct for the rest of the process.
func (b *Scoreboard) Finalize() bool {
	if b.score <= b.best {
		return false
	}
	b.best = b.score
	if b.store != nil {
		_ = b.store.Save(b.best) // Best-effort, see type comment
	}
	return true
}
