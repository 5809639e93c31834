// Package keymap loads per-game key overrides from a YAML file.
//
// The file maps a game id to action names and the keys each action should press:
//
//	ftl:
//	  open_doors: [ctrl, z]
//	nds:
//	  select: [shift]
package keymap

import (
	"fmt"
	"os"

	"github.com/connorhough/chatkeys/internal/key"
	"gopkg.in/yaml.v3"
)

// File is a parsed keymap file.
type File map[string]map[string][]string

// Load reads and parses a keymap file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keymap file: %w", err)
	}
	return Parse(data)
}

// Parse parses keymap YAML.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse keymap: %w", err)
	}
	return f, nil
}

// For returns the overrides for one game with key names resolved. A game absent from the
// file has no overrides.
func (f File) For(gameID string) (map[string][]key.Key, error) {
	actions, ok := f[gameID]
	if !ok {
		return nil, nil
	}
	out := make(map[string][]key.Key, len(actions))
	for action, names := range actions {
		keys := make([]key.Key, 0, len(names))
		for _, n := range names {
			k, err := key.Parse(n)
			if err != nil {
				return nil, fmt.Errorf("keymap %s.%s: %w", gameID, action, err)
			}
			keys = append(keys, k)
		}
		out[action] = keys
	}
	return out, nil
}
