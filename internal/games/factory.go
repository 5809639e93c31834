// Package games builds the grammar for a configured target application.
package games

import (
	"fmt"
	"sort"
	"strings"

	"github.com/connorhough/chatkeys/internal/game"
	"github.com/connorhough/chatkeys/internal/game/ftl"
	"github.com/connorhough/chatkeys/internal/game/nds"
)

// constructors is the closed set of supported games. Adding a game means adding an entry.
var constructors = map[string]func(game.Options) (game.Game, error){
	ftl.ID: func(o game.Options) (game.Game, error) { return ftl.New(o) },
	nds.ID: func(o game.Options) (game.Game, error) { return nds.New(o) },
}

// New returns the game registered under id.
func New(id string, opts game.Options) (game.Game, error) {
	ctor, ok := constructors[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", game.ErrUnsupportedGame, id, strings.Join(IDs(), ", "))
	}
	return ctor(opts)
}

// IDs returns the supported game identifiers in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(constructors))
	for id := range constructors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Supported reports whether id names a supported game.
func Supported(id string) bool {
	_, ok := constructors[strings.ToLower(strings.TrimSpace(id))]
	return ok
}
