// Package ftl implements the command grammar for FTL: Faster Than Light.
package ftl

import (
	"time"

	"github.com/connorhough/chatkeys/internal/game"
	"github.com/connorhough/chatkeys/internal/input"
	"github.com/connorhough/chatkeys/internal/key"
)

const (
	// ID is the configuration identifier.
	ID = "ftl"

	// DefaultDelay is the hold time per key.
	DefaultDelay = 50 * time.Millisecond

	maxPower = 8
)

const (
	systemMsg = "system power allocation must be accompanied by an integer whose absolute value is in the range [1, 8]"
	eventMsg  = "event choice must be accompanied by an integer within the range [1, 4]"
	weaponMsg = "weapon selection must be accompanied by an integer within the range [1, 4]"
	droneMsg  = "drone selection must be accompanied by an integer within the range [1, 3]"
	doorsMsg  = "doors must be accompanied by either \"open\" or \"close\""
)

// Game is the FTL grammar.
type Game struct {
	codec *Codec
	delay time.Duration
}

var _ game.Game = (*Game)(nil)

// New creates the FTL grammar.
func New(opts game.Options) (*Game, error) {
	codec, err := NewCodec(opts.Keymap)
	if err != nil {
		return nil, err
	}
	return &Game{codec: codec, delay: opts.DelayOr(DefaultDelay)}, nil
}

func (g *Game) ID() string { return ID }
func (g *Game) Name() string { return "FTL: Faster Than Light" }
func (g *Game) WindowTitle() string { return "FTL: Faster Than Light" }

// Commands implements game.Game.
func (g *Game) Commands() []game.Command {
	out := make([]game.Command, len(commands))
	for i, c := range commands {
		out[i] = game.Command{Name: c.aliases[0], Aliases: c.aliases[1:], Usage: c.usage}
	}
	return out
}

// Parse implements game.Game.
func (g *Game) Parse(raw string) (*input.Repeatable, error) {
	action, presses, err := g.ParseAction(raw)
	if err != nil {
		return nil, err
	}
	return input.New(action.String(), g.codec.Keys(action), presses, g.delay, key.Shift), nil
}

// ParseAction resolves raw to an action and its signed repeat count.
func (g *Game) ParseAction(raw string) (Action, int, error) {
	cmd, arg, hasArg := game.Split(raw)
	if cmd == "" {
		return 0, 0, game.ErrEmpty()
	}
	t, ok := aliasTable[cmd]
	if !ok {
		return 0, 0, game.ErrUnknown(cmd)
	}

	switch t {
	case targetShields:
		return power(PowerShields, cmd, arg, hasArg)
	case targetEngines:
		return power(PowerEngines, cmd, arg, hasArg)
	case targetOxygen:
		return power(PowerOxygen, cmd, arg, hasArg)
	case targetMedbay:
		return power(PowerMedbay, cmd, arg, hasArg)
	case targetCloneBay:
		return power(PowerCloneBay, cmd, arg, hasArg)
	case targetTeleporter:
		return power(PowerTeleporter, cmd, arg, hasArg)
	case targetArtillery:
		return power(PowerArtillery, cmd, arg, hasArg)

	case targetCloaking:
		return startOrPower(ActivateCloaking, PowerCloaking, cmd, arg, hasArg)
	case targetHacking:
		return startOrPower(StartHacking, PowerHacking, cmd, arg, hasArg)
	case targetMindControl:
		return startOrPower(StartMindControl, PowerMindControl, cmd, arg, hasArg)

	case targetEvent:
		n, err := game.Choice(cmd, arg, hasArg, 1, 4, eventMsg)
		if err != nil {
			return 0, 0, err
		}
		return EventChoice1 + Action(n-1), 1, nil
	case targetWeapons:
		n, err := game.Choice(cmd, arg, hasArg, 1, 4, weaponMsg)
		if err != nil {
			return 0, 0, err
		}
		return PowerWeapon1 + Action(n-1), 1, nil
	case targetDrones:
		n, err := game.Choice(cmd, arg, hasArg, 1, 3, droneMsg)
		if err != nil {
			return 0, 0, err
		}
		return PowerDrone1 + Action(n-1), 1, nil

	case targetDoors:
		i, err := game.Keyword(cmd, arg, hasArg, doorsMsg, "open", "close")
		if err != nil {
			return 0, 0, err
		}
		return []Action{OpenDoors, CloseDoors}[i], 1, nil

	case targetBattery:
		return ActivateBattery, 1, nil
	}
	return 0, 0, game.ErrUnknown(cmd)
}

func power(a Action, cmd, arg string, hasArg bool) (Action, int, error) {
	n, err := game.Magnitude(cmd, arg, hasArg, maxPower, systemMsg)
	if err != nil {
		return 0, 0, err
	}
	return a, n, nil
}

func startOrPower(start, pow Action, cmd, arg string, hasArg bool) (Action, int, error) {
	if !hasArg {
		return start, 1, nil
	}
	return power(pow, cmd, arg, hasArg)
}
