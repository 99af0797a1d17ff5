package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const fileName = "arcade.yaml"

// Load reads the arcade configuration.
// Search order: customPath -> ~/.arcade/configs/arcade.yaml -> ./configs/arcade.yaml -> embedded default
// Files are layered over the defaults, so a file only needs the keys it
// changes. Environment overrides are applied last, see ApplyEnv.
func Load(customPath string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultArcadeYAML, &cfg); err != nil {
		cfg = Default() // Fallback to hardcoded if embed fails
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
	} else {
		for _, path := range []string{userConfigPath(fileName), filepath.Join("configs", fileName)} {
			if path == "" {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			next := cfg
			if err := yaml.Unmarshal(data, &next); err == nil {
				cfg = next
				break
			}
		}
	}

	if err := ApplyEnv(&cfg, ".env"); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

// ApplyEnv loads envFile if it exists, then applies ARCADE_* overrides.
// Variables already set in the environment win over the file.
func ApplyEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	if v := os.Getenv("ARCADE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ARCADE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("ARCADE_SSH_ADDR"); v != "" {
		cfg.SSH.Address = v
	}
	if v := os.Getenv("ARCADE_WEB_ADDR"); v != "" {
		cfg.Web.Address = v
	}
	if v := os.Getenv("ARCADE_AUDIO"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: ARCADE_AUDIO: %w", err)
		}
		cfg.Audio.Enabled = enabled
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ExpandHome resolves a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
