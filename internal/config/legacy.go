package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// legacyKeys are the INI keys imported from a legacy settings file.
var legacyKeys = []string{KeyPrefix, KeyToken, KeyGame}

// ImportINI reads prefix, token and game from the [bot] section of a legacy INI settings
// file (keys outside any section are accepted too). Only keys with a value are returned.
func ImportINI(path string) (map[string]string, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load legacy config file: %w", err)
	}

	out := make(map[string]string)
	for _, section := range []*ini.Section{cfg.Section(ini.DefaultSection), cfg.Section("bot")} {
		for _, k := range legacyKeys {
			if v := section.Key(k).MustString(""); v != "" {
				out[k] = v
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no %v settings found in %s", legacyKeys, path)
	}
	return out, nil
}
