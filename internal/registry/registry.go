// Package registry maps mode IDs to game factories. Game packages register
// their modes from init(), so front ends only need a blank import.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/blockfall/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a playable mode driven by the platform loop. Implementations keep
// their rules free of terminal code; the platform owns input decoding,
// timing and drawing to the terminal.
type Game interface {
	// ID is the stable key used on the command line and in score storage.
	ID() string

	// Title is the display name shown in menus.
	Title() string

	// Reset starts a new session. It is called before the first Step and
	// again on restart or when the platform cannot resize in place.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions pressed since the
	// previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizable is implemented by games that can adapt to a new screen size
// without a Reset.
type Resizable interface {
	Resize(w, h int)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. The title is read from one throwaway instance.
// Registering an ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return infos
}

// Create returns a new instance of the mode. Unknown IDs wrap ErrUnknownGame.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
