package ftl

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/connorhough/chatkeys/internal/game"
	"github.com/connorhough/chatkeys/internal/key"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(game.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestParse(t *testing.T) {
	tests := []struct {
		raw     string
		action  Action
		presses int
		keys    []key.Key
	}{
		{raw: "shields 3", action: PowerShields, presses: 3, keys: []key.Key{key.A}},
		{raw: "s -2", action: PowerShields, presses: -2, keys: []key.Key{key.Shift, key.A}},
		{raw: "engines 8", action: PowerEngines, presses: 8, keys: []key.Key{key.S}},
		{raw: "o2 1", action: PowerOxygen, presses: 1, keys: []key.Key{key.F}},
		{raw: "med 2", action: PowerMedbay, presses: 2, keys: []key.Key{key.D}},
		{raw: "clone 2", action: PowerCloneBay, presses: 2, keys: []key.Key{key.D}},
		{raw: "tp 1", action: PowerTeleporter, presses: 1, keys: []key.Key{key.G}},
		{raw: "beam 4", action: PowerArtillery, presses: 4, keys: []key.Key{key.Y}},
		{raw: "hacking", action: StartHacking, presses: 1, keys: []key.Key{key.N}},
		{raw: "hack 3", action: PowerHacking, presses: 3, keys: []key.Key{key.L}},
		{raw: "cloak", action: ActivateCloaking, presses: 1, keys: []key.Key{key.C}},
		{raw: "cloaking -1", action: PowerCloaking, presses: -1, keys: []key.Key{key.Shift, key.H}},
		{raw: "mind", action: StartMindControl, presses: 1, keys: []key.Key{key.M}},
		{raw: "mc 2", action: PowerMindControl, presses: 2, keys: []key.Key{key.K}},
		{raw: "event 2", action: EventChoice2, presses: 1, keys: []key.Key{key.Num2}},
		{raw: "choose 4", action: EventChoice4, presses: 1, keys: []key.Key{key.Num4}},
		{raw: "weapon 1", action: PowerWeapon1, presses: 1, keys: []key.Key{key.Num1}},
		{raw: "w 4", action: PowerWeapon4, presses: 1, keys: []key.Key{key.Num4}},
		{raw: "drone 1", action: PowerDrone1, presses: 1, keys: []key.Key{key.Num5}},
		{raw: "d 3", action: PowerDrone3, presses: 1, keys: []key.Key{key.Num7}},
		{raw: "doors open", action: OpenDoors, presses: 1, keys: []key.Key{key.Z}},
		{raw: "door close", action: CloseDoors, presses: 1, keys: []key.Key{key.X}},
		{raw: "battery", action: ActivateBattery, presses: 1, keys: []key.Key{key.B}},
		{raw: "b ignored", action: ActivateBattery, presses: 1, keys: []key.Key{key.B}},
		{raw: "SHIELDS 3", action: PowerShields, presses: 3, keys: []key.Key{key.A}},
	}

	g := newGame(t)
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			in, err := g.Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.raw, err)
			}
			if in.Action != tt.action.String() {
				t.Errorf("action = %s, want %s", in.Action, tt.action)
			}
			if in.Presses != tt.presses {
				t.Errorf("presses = %d, want %d", in.Presses, tt.presses)
			}
			if got := in.Sequence(); !reflect.DeepEqual(got, tt.keys) {
				t.Errorf("sequence = %v, want %v", got, tt.keys)
			}
			if in.Delay != DefaultDelay {
				t.Errorf("delay = %v, want %v", in.Delay, DefaultDelay)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr error
	}{
		{raw: "shields 9"},
		{raw: "shields -9"},
		{raw: "shields 0"},
		{raw: "shields"},
		{raw: "shields max"},
		{raw: "hack 9"},
		{raw: "event 5"},
		{raw: "event 0"},
		{raw: "event"},
		{raw: "weapon 5"},
		{raw: "drone 4"},
		{raw: "drone one"},
		{raw: "doors"},
		{raw: "doors ajar"},
		{raw: "doors OPEN"},
		{raw: "jump 1", wantErr: game.ErrUnknownCommand},
		{raw: "   ", wantErr: game.ErrEmptyCommand},
	}

	g := newGame(t)
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			in, err := g.Parse(tt.raw)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.raw, in)
			}
			var verr *game.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *game.ValidationError, got %T", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v does not wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestBoundedMagnitudeKeepsSign(t *testing.T) {
	g := newGame(t)
	for n := -8; n <= 8; n++ {
		if n == 0 {
			continue
		}
		_, presses, err := g.ParseAction("shields " + strconv.Itoa(n))
		if err != nil {
			t.Fatalf("shields %d: %v", n, err)
		}
		if presses != n {
			t.Errorf("shields %d: presses = %d", n, presses)
		}
	}
}

func TestCodecIsTotal(t *testing.T) {
	c, err := NewCodec(nil)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	for _, a := range actions() {
		if len(c.Keys(a)) == 0 {
			t.Errorf("%s maps to no keys", a)
		}
		parsed, err := ActionByName(a.String())
		if err != nil || parsed != a {
			t.Errorf("ActionByName(%q) = %v, %v", a.String(), parsed, err)
		}
	}
}

func TestCodecAliasing(t *testing.T) {
	c, _ := NewCodec(nil)
	if !reflect.DeepEqual(c.Keys(EventChoice1), c.Keys(PowerWeapon1)) {
		t.Error("event choice 1 and weapon 1 should share a key")
	}
	if !reflect.DeepEqual(c.Keys(PowerMedbay), c.Keys(PowerCloneBay)) {
		t.Error("medbay and clone bay should share a key")
	}
}

func TestCodecOverrides(t *testing.T) {
	c, err := NewCodec(map[string][]key.Key{"open_doors": {key.Control, key.Z}})
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	if got := c.Keys(OpenDoors); !reflect.DeepEqual(got, []key.Key{key.Control, key.Z}) {
		t.Errorf("override not applied: %v", got)
	}
	if got := c.Keys(CloseDoors); !reflect.DeepEqual(got, []key.Key{key.X}) {
		t.Errorf("unrelated action changed: %v", got)
	}

	if _, err := NewCodec(map[string][]key.Key{"warp": {key.J}}); err == nil {
		t.Error("expected error for unknown action")
	}
	if _, err := NewCodec(map[string][]key.Key{"open_doors": {}}); err == nil {
		t.Error("expected error for empty key list")
	}
}

func TestEveryAliasParses(t *testing.T) {
	g := newGame(t)
	args := map[target]string{
		targetEvent:   "1",
		targetWeapons: "1",
		targetDrones:  "1",
		targetDoors:   "open",
	}
	for _, c := range commands {
		arg, ok := args[c.target]
		if !ok {
			arg = "1"
		}
		for _, alias := range c.aliases {
			in, err := g.Parse(alias + " " + arg)
			if err != nil {
				t.Errorf("%s %s: %v", alias, arg, err)
				continue
			}
			if len(in.Sequence()) == 0 {
				t.Errorf("%s %s decoded to no keys", alias, arg)
			}
		}
	}
}

func TestCommands(t *testing.T) {
	cmds := newGame(t).Commands()
	if len(cmds) != len(commands) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(commands))
	}
	if cmds[1].Name != "shields" || !reflect.DeepEqual(cmds[1].Aliases, []string{"shield", "s"}) {
		t.Errorf("unexpected shields entry: %+v", cmds[1])
	}
}
