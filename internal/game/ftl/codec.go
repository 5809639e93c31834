package ftl

import (
	"fmt"

	"github.com/connorhough/chatkeys/internal/key"
)

// defaultKeys returns the hotkeys of one repetition of a. Event choices and weapon slots
// share the digit row on purpose: the game reads the same key in both screens.
func defaultKeys(a Action) []key.Key {
	switch a {
	case PowerShields:
		return []key.Key{key.A}
	case PowerEngines:
		return []key.Key{key.S}
	case PowerOxygen:
		return []key.Key{key.F}
	case PowerMedbay, PowerCloneBay:
		return []key.Key{key.D}
	case PowerTeleporter:
		return []key.Key{key.G}
	case PowerCloaking:
		return []key.Key{key.H}
	case PowerMindControl:
		return []key.Key{key.K}
	case PowerHacking:
		return []key.Key{key.L}
	case PowerArtillery:
		return []key.Key{key.Y}
	case PowerWeapon1, EventChoice1:
		return []key.Key{key.Num1}
	case PowerWeapon2, EventChoice2:
		return []key.Key{key.Num2}
	case PowerWeapon3, EventChoice3:
		return []key.Key{key.Num3}
	case PowerWeapon4, EventChoice4:
		return []key.Key{key.Num4}
	case PowerDrone1:
		return []key.Key{key.Num5}
	case PowerDrone2:
		return []key.Key{key.Num6}
	case PowerDrone3:
		return []key.Key{key.Num7}
	case OpenDoors:
		return []key.Key{key.Z}
	case CloseDoors:
		return []key.Key{key.X}
	case ActivateCloaking:
		return []key.Key{key.C}
	case StartHacking:
		return []key.Key{key.N}
	case StartMindControl:
		return []key.Key{key.M}
	case ActivateBattery:
		return []key.Key{key.B}
	}
	panic(fmt.Sprintf("ftl: no keys for %v", a))
}

// Codec maps actions to key sequences, with optional per-action overrides.
type Codec struct {
	overrides map[Action][]key.Key
}

// NewCodec builds a Codec. Override keys are action names as returned by Action.String.
func NewCodec(overrides map[string][]key.Key) (*Codec, error) {
	c := &Codec{overrides: make(map[Action][]key.Key)}
	for name, keys := range overrides {
		a, err := ActionByName(name)
		if err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("keymap for %s is empty", name)
		}
		c.overrides[a] = keys
	}
	return c, nil
}

// Keys returns the key sequence of one repetition of a.
func (c *Codec) Keys(a Action) []key.Key {
	if keys, ok := c.overrides[a]; ok {
		return keys
	}
	return defaultKeys(a)
}
