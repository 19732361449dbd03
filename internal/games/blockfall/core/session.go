package core

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Config holds the construction parameters of a session.
// They are fixed for the lifetime of the session.
type Config struct {
	Width    int           // Board columns
	Height   int           // Board rows
	Gravity  time.Duration // Time between automatic one-row drops
	SpawnCol int           // Column new pieces spawn at
	Kicks    KickTable     // Ordered rotation kick offsets
}

// DefaultConfig returns the standard 10x20 setup.
func DefaultConfig() Config {
	return Config{
		Width:    10,
		Height:   20,
		Gravity:  500 * time.Millisecond,
		SpawnCol: 3,
		Kicks:    KicksExtended,
	}
}

// Validate checks the construction parameters.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("core: invalid board size %dx%d", c.Width, c.Height)
	}
	if c.Gravity <= 0 {
		return fmt.Errorf("core: gravity interval must be positive, got %s", c.Gravity)
	}
	if c.SpawnCol < 0 || c.SpawnCol >= c.Width {
		return fmt.Errorf("core: spawn column %d outside board width %d", c.SpawnCol, c.Width)
	}
	if blocked := SpawnBlocked(c.Width, c.Height, c.SpawnCol); len(blocked) > 0 {
		return fmt.Errorf("core: spawn column %d leaves %v without room on a %dx%d board",
			c.SpawnCol, blocked, c.Width, c.Height)
	}
	if len(c.Kicks) == 0 || c.Kicks[0] != (Kick{}) {
		return errors.New("core: kick table must start with the zero offset")
	}
	return nil
}

// SpawnBlocked returns the kinds whose spawn position at col does not fit
// an empty width x height board. Non-positive sizes block every kind.
func SpawnBlocked(width, height, col int) []Kind {
	if width <= 0 || height <= 0 {
		return Kinds()
	}
	board := NewBoard(width, height)
	var blocked []Kind
	for _, k := range Kinds() {
		if !board.IsValid(NewPiece(k, col)) {
			blocked = append(blocked, k)
		}
	}
	return blocked
}

// LockResult describes what happened when the active piece locked.
type LockResult struct {
	Locked bool // A piece was committed to the board
	Lines  int  // Rows cleared by the lock(s)
	Points int  // Score awarded by the lock(s)
}

// add folds another result into r.
func (r *LockResult) add(o LockResult) {
	r.Locked = r.Locked || o.Locked
	r.Lines += o.Lines
	r.Points += o.Points
}

// Session is a single game: one board, one active piece, a bag, hold and
// next slots, score and gravity timing. It is not safe for concurrent use.
type Session struct {
	cfg   Config
	board *Board
	bag   *Bag

	active  Piece
	next    Kind
	held    Kind
	hasHeld bool
	canHold bool

	score   int
	lines   int
	pieces  int
	elapsed time.Duration

	gameOver bool
}

// NewSession creates a session and spawns the first piece.
func NewSession(cfg Config, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("core: nil random source")
	}

	s := &Session{
		cfg:   cfg,
		board: NewBoard(cfg.Width, cfg.Height),
		bag:   NewBag(rng),
	}
	s.next = s.bag.Draw()
	s.spawn()
	return s, nil
}

// Board returns the settled-cell grid. Callers must treat it as read-only.
func (s *Session) Board() *Board {
	return s.board
}

// Active returns a copy of the active piece.
func (s *Session) Active() Piece {
	return s.active
}

// Next returns the upcoming kind.
func (s *Session) Next() Kind {
	return s.next
}

// Held returns the held kind and whether one is held.
func (s *Session) Held() (Kind, bool) {
	return s.held, s.hasHeld
}

// CanHold reports whether Hold is allowed for the current piece.
func (s *Session) CanHold() bool {
	return s.canHold
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lines returns the total number of cleared rows.
func (s *Session) Lines() int {
	return s.lines
}

// Pieces returns the number of pieces locked so far.
func (s *Session) Pieces() int {
	return s.pieces
}

// GameOver reports whether a spawn failed.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Config returns the construction parameters.
func (s *Session) Config() Config {
	return s.cfg
}

// spawn makes the upcoming kind active and refills the upcoming slot.
func (s *Session) spawn() {
	kind := s.next
	s.next = s.bag.Draw()
	s.place(kind)
	s.canHold = true
}

// place puts a fresh piece of kind k at the spawn position.
// A spawn onto an invalid position ends the game.
func (s *Session) place(k Kind) {
	s.active = NewPiece(k, s.cfg.SpawnCol)
	if !s.board.IsValid(s.active) {
		s.gameOver = true
	}
}

// lockActive runs lock, clear, score and spawn as one step.
func (s *Session) lockActive() LockResult {
	s.board.Lock(s.active)
	s.pieces++
	lines := s.board.ClearLines()
	points := LinePoints(lines)
	s.lines += lines
	s.score += points
	s.spawn()
	return LockResult{Locked: true, Lines: lines, Points: points}
}

// stepDown moves the active piece down one row, locking it if it cannot move.
func (s *Session) stepDown() LockResult {
	candidate := s.active.Translated(1, 0)
	if s.board.IsValid(candidate) {
		s.active = candidate
		return LockResult{}
	}
	return s.lockActive()
}

// AdvanceTime accumulates elapsed time and applies one gravity step per
// full interval.
func (s *Session) AdvanceTime(delta time.Duration) LockResult {
	var res LockResult
	if s.gameOver || delta <= 0 {
		return res
	}
	s.elapsed += delta
	for s.elapsed >= s.cfg.Gravity && !s.gameOver {
		s.elapsed -= s.cfg.Gravity
		res.add(s.stepDown())
	}
	return res
}

// MoveLeft shifts the active piece one column left if the board allows it.
func (s *Session) MoveLeft() bool {
	return s.shift(-1)
}

// MoveRight shifts the active piece one column right if the board allows it.
func (s *Session) MoveRight() bool {
	return s.shift(1)
}

func (s *Session) shift(dCol int) bool {
	if s.gameOver {
		return false
	}
	candidate := s.active.Translated(0, dCol)
	if !s.board.IsValid(candidate) {
		return false
	}
	s.active = candidate
	return true
}

// Rotate rotates the active piece, trying each kick in order.
// If no kick fits, the piece is left unchanged.
func (s *Session) Rotate() bool {
	if s.gameOver {
		return false
	}
	rotated, ok := tryRotate(s.board, s.active, s.cfg.Kicks)
	if ok {
		s.active = rotated
	}
	return ok
}

// SoftDrop applies one gravity step immediately.
func (s *Session) SoftDrop() LockResult {
	if s.gameOver {
		return LockResult{}
	}
	return s.stepDown()
}

// HardDrop drops the active piece as far as it goes and locks it once.
func (s *Session) HardDrop() LockResult {
	if s.gameOver {
		return LockResult{}
	}
	s.active = s.Ghost()
	return s.lockActive()
}

// Hold stashes the active kind. With an empty hold slot the upcoming piece
// becomes active; otherwise the held kind is swapped in and the bag is left
// alone. Only one hold is allowed per spawned piece.
func (s *Session) Hold() bool {
	if s.gameOver || !s.canHold {
		return false
	}
	current := s.active.Kind
	if s.hasHeld {
		swapIn := s.held
		s.held = current
		s.place(swapIn)
	} else {
		s.held = current
		s.hasHeld = true
		kind := s.next
		s.next = s.bag.Draw()
		s.place(kind)
	}
	s.canHold = false
	return true
}

// Ghost returns where the active piece would land. It never changes state.
func (s *Session) Ghost() Piece {
	ghost := s.active
	if !s.board.IsValid(ghost) {
		return ghost
	}
	for {
		candidate := ghost.Translated(1, 0)
		if !s.board.IsValid(candidate) {
			return ghost
		}
		ghost = candidate
	}
}
