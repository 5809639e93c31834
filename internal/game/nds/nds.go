// Package nds implements the command grammar for Nintendo DS games running in DeSmuME.
package nds

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/connorhough/chatkeys/internal/game"
	"github.com/connorhough/chatkeys/internal/input"
	"github.com/connorhough/chatkeys/internal/key"
)

const (
	// ID is the configuration identifier.
	ID = "nds"

	// DefaultDelay is the hold time per key. Shorter holds are missed by the emulator.
	DefaultDelay = 75 * time.Millisecond
)

// Button is a DS button.
type Button int

const (
	Up Button = iota
	Down
	Left
	Right
	Y
	X
	A
	B
	L
	R
	Start
	Select

	numButtons
)

var buttonNames = [numButtons]string{
	Up:     "up",
	Down:   "down",
	Left:   "left",
	Right:  "right",
	Y:      "y",
	X:      "x",
	A:      "a",
	B:      "b",
	L:      "l",
	R:      "r",
	Start:  "start",
	Select: "select",
}

func (b Button) String() string {
	if b < 0 || b >= numButtons {
		return fmt.Sprintf("Button(%d)", int(b))
	}
	return buttonNames[b]
}

// Buttons returns every button.
func Buttons() []Button {
	out := make([]Button, numButtons)
	for i := range out {
		out[i] = Button(i)
	}
	return out
}

// ParseButton resolves a button by name.
func ParseButton(name string) (Button, error) {
	for i, n := range buttonNames {
		if n == name {
			return Button(i), nil
		}
	}
	return 0, fmt.Errorf("unknown DS button %q", name)
}

// defaultKeys follows DeSmuME's default keyboard layout.
func defaultKeys(b Button) []key.Key {
	switch b {
	case Up:
		return []key.Key{key.Up}
	case Down:
		return []key.Key{key.Down}
	case Left:
		return []key.Key{key.Left}
	case Right:
		return []key.Key{key.Right}
	case Y:
		return []key.Key{key.A}
	case X:
		return []key.Key{key.S}
	case A:
		return []key.Key{key.X}
	case B:
		return []key.Key{key.Z}
	case L:
		return []key.Key{key.Q}
	case R:
		return []key.Key{key.W}
	case Start:
		return []key.Key{key.Enter}
	case Select:
		return []key.Key{key.Slash}
	}
	panic(fmt.Sprintf("nds: no keys for %v", b))
}

// Game is the DS grammar: a button name optionally followed by a press count.
type Game struct {
	keys  map[Button][]key.Key
	delay time.Duration
}

var _ game.Game = (*Game)(nil)

// New creates the DS grammar.
func New(opts game.Options) (*Game, error) {
	g := &Game{keys: make(map[Button][]key.Key), delay: opts.DelayOr(DefaultDelay)}
	for _, b := range Buttons() {
		g.keys[b] = defaultKeys(b)
	}
	for name, keys := range opts.Keymap {
		b, err := ParseButton(name)
		if err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("keymap for %s is empty", name)
		}
		g.keys[b] = keys
	}
	return g, nil
}

func (g *Game) ID() string { return ID }
func (g *Game) Name() string { return "Nintendo DS" }
func (g *Game) WindowTitle() string { return "DeSmuME" }

// Commands implements game.Game.
func (g *Game) Commands() []game.Command {
	out := make([]game.Command, 0, numButtons)
	for _, b := range Buttons() {
		out = append(out, game.Command{Name: b.String(), Usage: "[count]"})
	}
	return out
}

// Parse implements game.Game. Only the first word after the button is read as the count. A
// missing count, or one that is not an integer within ±127, means one press.
func (g *Game) Parse(raw string) (*input.Repeatable, error) {
	cmd, arg, hasArg := game.Split(raw)
	if cmd == "" {
		return nil, game.ErrEmpty()
	}
	b, err := ParseButton(cmd)
	if err != nil {
		return nil, game.ErrUnknown(cmd)
	}

	presses := 1
	if hasArg {
		if n, err := strconv.ParseInt(strings.Fields(arg)[0], 10, 8); err == nil {
			presses = int(n)
		}
	}
	return input.New(b.String(), g.keys[b], presses, g.delay, ""), nil
}
