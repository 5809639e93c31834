package ftl

import "fmt"

// Action is one semantic effect in FTL. The set is closed; every value maps to keys in
// defaultKeys.
type Action int

const (
	PowerShields Action = iota
	PowerEngines
	PowerOxygen
	PowerMedbay
	PowerCloneBay
	PowerTeleporter
	PowerCloaking
	PowerMindControl
	PowerHacking
	PowerArtillery

	PowerWeapon1
	PowerWeapon2
	PowerWeapon3
	PowerWeapon4
	PowerDrone1
	PowerDrone2
	PowerDrone3

	EventChoice1
	EventChoice2
	EventChoice3
	EventChoice4

	OpenDoors
	CloseDoors
	ActivateCloaking
	StartHacking
	StartMindControl
	ActivateBattery

	numActions
)

var actionNames = [numActions]string{
	PowerShields:     "power_shields",
	PowerEngines:     "power_engines",
	PowerOxygen:      "power_oxygen",
	PowerMedbay:      "power_medbay",
	PowerCloneBay:    "power_clone_bay",
	PowerTeleporter:  "power_teleporter",
	PowerCloaking:    "power_cloaking",
	PowerMindControl: "power_mind_control",
	PowerHacking:     "power_hacking",
	PowerArtillery:   "power_artillery",
	PowerWeapon1:     "power_weapon_1",
	PowerWeapon2:     "power_weapon_2",
	PowerWeapon3:     "power_weapon_3",
	PowerWeapon4:     "power_weapon_4",
	PowerDrone1:      "power_drone_1",
	PowerDrone2:      "power_drone_2",
	PowerDrone3:      "power_drone_3",
	EventChoice1:     "event_choice_1",
	EventChoice2:     "event_choice_2",
	EventChoice3:     "event_choice_3",
	EventChoice4:     "event_choice_4",
	OpenDoors:        "open_doors",
	CloseDoors:       "close_doors",
	ActivateCloaking: "activate_cloaking",
	StartHacking:     "start_hacking",
	StartMindControl: "start_mind_control",
	ActivateBattery:  "activate_battery",
}

func (a Action) String() string {
	if a < 0 || a >= numActions {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

func actions() []Action {
	out := make([]Action, numActions)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// ActionByName resolves an action by its String name.
func ActionByName(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown FTL action %q", name)
}
