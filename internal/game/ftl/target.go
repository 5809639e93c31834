package ftl

// target is the ship system or screen a command addresses.
type target int

const (
	targetEvent target = iota
	targetShields
	targetEngines
	targetOxygen
	targetMedbay
	targetCloneBay
	targetTeleporter
	targetCloaking
	targetMindControl
	targetHacking
	targetArtillery
	targetWeapons
	targetDrones
	targetDoors
	targetBattery
)

// commands lists the alias table in display order. The first alias is the canonical name.
var commands = []struct {
	target  target
	aliases []string
	usage   string
}{
	{targetEvent, []string{"event", "choice", "choose"}, "<1-4>"},
	{targetShields, []string{"shields", "shield", "s"}, "<±1-8>"},
	{targetEngines, []string{"engines", "engine", "e"}, "<±1-8>"},
	{targetOxygen, []string{"oxygen", "o2", "o"}, "<±1-8>"},
	{targetMedbay, []string{"medbay", "med", "mb"}, "<±1-8>"},
	{targetCloneBay, []string{"clone_bay", "clone", "cb"}, "<±1-8>"},
	{targetTeleporter, []string{"teleporter", "teleport", "tp"}, "<±1-8>"},
	{targetCloaking, []string{"cloaking", "cloak", "c"}, "[±1-8]"},
	{targetMindControl, []string{"mind_control", "mind", "mc"}, "[±1-8]"},
	{targetHacking, []string{"hacking", "hack", "h"}, "[±1-8]"},
	{targetArtillery, []string{"artillery", "beam", "a"}, "<±1-8>"},
	{targetWeapons, []string{"weapons", "weapon", "wep", "w"}, "<1-4>"},
	{targetDrones, []string{"drones", "drone", "d"}, "<1-3>"},
	{targetDoors, []string{"doors", "door"}, "<open|close>"},
	{targetBattery, []string{"backup", "battery", "b"}, ""},
}

var aliasTable = func() map[string]target {
	m := make(map[string]target)
	for _, c := range commands {
		for _, a := range c.aliases {
			m[a] = c.target
		}
	}
	return m
}()
