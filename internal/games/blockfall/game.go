// Package blockfall provides the falling-block puzzle for the platform.
// The rules live in the UI-agnostic core subpackage; this package maps
// platform input and timing onto a core.Session and draws it.
package blockfall

import (
	"math/rand"
	"strconv"
	"time"

	platformcore "github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode selects the rotation rules of a game.
type Mode int

const (
	ModeStandard Mode = iota // Extended kick table
	ModeClassic              // Sideways kicks only
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
// Unknown names are ignored and the config file value is kept.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Layout constants in screen cells.
const (
	cellW      = 2  // Each board cell is two characters wide
	hudHeight  = 1  // Status line above the well
	panelWidth = 14 // Side panel with previews and counters
)

// Game adapts a core.Session to the registry.Game interface.
type Game struct {
	mode Mode

	rng     *rand.Rand
	cfg     config.BlockfallConfig
	session *core.Session
	err     error

	// Time advanced per Step
	tickDur time.Duration

	screenW int
	screenH int

	paused   bool
	tooSmall bool

	// Well border, placed by calculateLayout
	well platformcore.Rect
}

func init() {
	registry.Register("blockfall", func() registry.Game {
		return New()
	})
	registry.Register("blockfall_classic", func() registry.Game {
		return NewClassic()
	})
}

// New creates a game with the extended kick table.
func New() *Game {
	return &Game{mode: ModeStandard}
}

// NewClassic creates a game that only kicks sideways.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "blockfall_classic"
	}
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Blockfall Classic"
	}
	return "Blockfall"
}

// Reset starts a fresh session from the loaded configuration.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.err = nil
	g.session = nil

	g.tickDur = cfg.TickInterval()

	bcfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		g.err = err
		return
	}
	config.ApplyBlockfallPreset(&bcfg, difficultyPreset)
	if g.mode == ModeClassic {
		bcfg.Rotation.Kicks = "columns"
	}
	g.cfg = bcfg

	sessCfg, err := sessionConfig(bcfg)
	if err != nil {
		g.err = err
		return
	}
	g.session, g.err = core.NewSession(sessCfg, g.rng)

	g.calculateLayout()
}

// sessionConfig converts the YAML configuration into engine parameters.
func sessionConfig(c config.BlockfallConfig) (core.Config, error) {
	kicks, err := core.KickTableByName(c.Rotation.Kicks)
	if err != nil {
		return core.Config{}, err
	}
	return core.Config{
		Width:    c.Board.Width,
		Height:   c.Board.Height,
		Gravity:  c.EffectiveGravity(),
		SpawnCol: c.Spawn.Column,
		Kicks:    kicks,
	}, nil
}

// calculateLayout centers the well and panel below the status line, or flags
// the screen as too small.
func (g *Game) calculateLayout() {
	wellW := g.cfg.Board.Width*cellW + 2
	wellH := g.cfg.Board.Height + 2
	totalW := wellW + 1 + panelWidth

	area := platformcore.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight)
	g.tooSmall = !area.Fits(totalW, wellH)
	if g.tooSmall {
		return
	}
	block := area.Center(totalW, wellH)
	g.well = platformcore.NewRect(block.X, block.Y, wellW, wellH)
}

// Step applies this tick's input, then advances gravity by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	// Handle restart
	if input.Has(platformcore.ActionRestart) && g.gameOver() {
		g.Reset(platformcore.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(time.Second / g.tickDur),
		})
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) && !g.gameOver() {
		g.paused = !g.paused
	}

	if g.session == nil || g.gameOver() || g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	cleared := 0

	s := g.session
	if input.Has(platformcore.ActionHold) {
		s.Hold()
	}
	for range input.Count(platformcore.ActionRotate) {
		s.Rotate()
	}
	for range input.Count(platformcore.ActionLeft) {
		s.MoveLeft()
	}
	for range input.Count(platformcore.ActionRight) {
		s.MoveRight()
	}
	for range input.Count(platformcore.ActionSoftDrop) {
		cleared += s.SoftDrop().Lines
	}
	if input.Has(platformcore.ActionHardDrop) {
		cleared += s.HardDrop().Lines
	}
	cleared += s.AdvanceTime(g.tickDur).Lines

	return platformcore.StepResult{State: g.State(), Cleared: cleared}
}

func (g *Game) gameOver() bool {
	return g.err != nil || (g.session != nil && g.session.GameOver())
}

// State returns the platform-level status.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		GameOver: g.gameOver(),
		Paused:   g.paused,
	}
	if g.session != nil {
		st.Score = g.session.Score()
		st.Lines = g.session.Lines()
		st.Pieces = g.session.Pieces()
	}
	return st
}

// Resize re-centers the layout for a new terminal size without
// restarting the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.session != nil {
		g.calculateLayout()
	}
}

// Snapshot returns the engine view of the running session.
// The second result is false before Reset or after a config error.
func (g *Game) Snapshot() (core.Snapshot, bool) {
	if g.session == nil {
		return core.Snapshot{}, false
	}
	return g.session.Snapshot(), true
}

// Err returns the error that prevented the last Reset from starting a session.
func (g *Game) Err() error {
	return g.err
}

// Render draws the well, side panel and overlays.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.err != nil {
		g.renderOverlay(dst, "Config error", g.err.Error())
		return
	}
	if g.session == nil {
		return
	}
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	snap := g.session.Snapshot()
	g.renderHUD(dst, snap)
	g.renderWell(dst, snap)
	g.renderPanel(dst, snap)

	switch {
	case snap.GameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen, snap core.Snapshot) {
	hud := " " + g.Title() + " | Score: " + strconv.Itoa(snap.Score) +
		" | Lines: " + strconv.Itoa(snap.Lines)
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)
}

// renderWell draws the border, settled cells, ghost and active piece.
func (g *Game) renderWell(dst *platformcore.Screen, snap core.Snapshot) {
	dst.DrawBox(g.well)

	for r, row := range snap.Grid {
		for c, key := range row {
			if key != core.NoColor {
				g.drawCell(dst, r, c, '█', colorFor(key))
			}
		}
	}
	for _, cell := range snap.Ghost {
		g.drawCell(dst, cell.Row, cell.Col, '░', platformcore.ColorGray)
	}
	for _, cell := range snap.Active {
		g.drawCell(dst, cell.Row, cell.Col, '█', colorFor(snap.ActiveColor))
	}
}

func (g *Game) drawCell(dst *platformcore.Screen, row, col int, r rune, c platformcore.Color) {
	inner := g.well.Inset(1)
	x := inner.X + col*cellW
	y := inner.Y + row
	for i := range cellW {
		dst.SetColored(x+i, y, r, c)
	}
}

// renderPanel draws next and hold previews plus counters.
func (g *Game) renderPanel(dst *platformcore.Screen, snap core.Snapshot) {
	x := g.well.Right() + 1
	y := g.well.Y

	dst.DrawText(x, y, "NEXT")
	drawPreview(dst, x, y+1, snap.Next, colorFor(snap.Next.ColorKey()))

	dst.DrawText(x, y+5, "HOLD")
	if snap.HasHeld {
		// A used hold is drawn gray until the next spawn
		c := colorFor(snap.Held.ColorKey())
		if !snap.CanHold {
			c = platformcore.ColorGray
		}
		drawPreview(dst, x, y+6, snap.Held, c)
	}

	dst.DrawText(x, y+10, "SCORE")
	dst.DrawTextColored(x, y+11, strconv.Itoa(snap.Score), platformcore.ColorBright)
	dst.DrawText(x, y+12, "LINES")
	dst.DrawTextColored(x, y+13, strconv.Itoa(snap.Lines), platformcore.ColorBright)
	dst.DrawText(x, y+14, "PIECES")
	dst.DrawTextColored(x, y+15, strconv.Itoa(snap.Pieces), platformcore.ColorBright)
}

// drawPreview draws the spawn rotation of a kind.
func drawPreview(dst *platformcore.Screen, x, y int, k core.Kind, c platformcore.Color) {
	shape := core.Rotations(k)[0]
	for r, row := range shape.Rows {
		for col, filled := range row {
			if !filled {
				continue
			}
			for i := range cellW {
				dst.SetColored(x+col*cellW+i, y+r, '█', c)
			}
		}
	}
}

func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 6
	box := dst.Bounds().Center(boxW, 5)

	dst.Fill(box, platformcore.Cell{Rune: ' '})
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// colorFor maps engine color keys to terminal colors.
func colorFor(k core.ColorKey) platformcore.Color {
	switch k {
	case core.ColorLightBlue:
		return platformcore.ColorLightBlue
	case core.ColorBlue:
		return platformcore.ColorBlue
	case core.ColorOrange:
		return platformcore.ColorOrange
	case core.ColorYellow:
		return platformcore.ColorYellow
	case core.ColorGreen:
		return platformcore.ColorGreen
	case core.ColorRed:
		return platformcore.ColorRed
	case core.ColorPurple:
		return platformcore.ColorPurple
	default:
		return platformcore.ColorDefault
	}
}
