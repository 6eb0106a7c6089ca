package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for variant id.
// Search order: customPath -> ~/.germsmash/configs/<id>.yaml ->
// ./configs/<id>.yaml -> embedded default -> hard-coded default.
// Only an explicit customPath may fail; the other sources are skipped when
// missing or unparsable. The result is validated.
func Load(id, customPath string) (GermSmashConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GermSmashConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(id, data)
		if err != nil {
			return GermSmashConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	filename := id + ".yaml"
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(id, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if data := GetDefaultYAML(id); data != nil {
		if cfg, err := parse(id, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}
	return DefaultConfig(id), nil
}

// parse decodes data on top of the hard-coded defaults so partial files
// only override what they set.
func parse(id string, data []byte) (GermSmashConfig, error) {
	cfg := DefaultConfig(id)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GermSmashConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".germsmash", "configs", filename)
}
