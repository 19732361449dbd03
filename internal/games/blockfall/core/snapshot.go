package core

// Snapshot is an immutable view of a session for renderers.
// It shares no memory with the session.
type Snapshot struct {
	Width       int
	Height      int
	Grid        [][]ColorKey
	Active      []Cell
	ActiveColor ColorKey
	Ghost       []Cell
	Held        Kind
	HasHeld     bool
	CanHold     bool
	Next        Kind
	Score       int
	Lines       int
	Pieces      int
	GameOver    bool
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Width:       s.board.Width(),
		Height:      s.board.Height(),
		Grid:        s.board.Rows(),
		Active:      s.active.CellList(),
		ActiveColor: s.active.ColorKey(),
		Ghost:       s.Ghost().CellList(),
		Held:        s.held,
		HasHeld:     s.hasHeld,
		CanHold:     s.canHold,
		Next:        s.next,
		Score:       s.score,
		Lines:       s.lines,
		Pieces:      s.pieces,
		GameOver:    s.gameOver,
	}
}
