package config

import (
	_ "embed"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
			File:  "~/.arcade/arcade.log",
		},
		TUI: TUIConfig{
			FrameMs:      50,
			CellPx:       10,
			KeyReleaseMs: 180,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		SSH: SSHConfig{
			Address:        ":23234",
			IdleTimeoutMin: 30,
		},
		Web: WebConfig{
			Address:       ":8080",
			SessionTTLMin: 15,
		},
	}
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	d := Default()
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.TUI.FrameMs <= 0 {
		c.TUI.FrameMs = d.TUI.FrameMs
	}
	if c.TUI.CellPx <= 0 {
		c.TUI.CellPx = d.TUI.CellPx
	}
	if c.TUI.KeyReleaseMs <= 0 {
		c.TUI.KeyReleaseMs = d.TUI.KeyReleaseMs
	}
	if c.SSH.Address == "" {
		c.SSH.Address = d.SSH.Address
	}
	if c.SSH.IdleTimeoutMin <= 0 {
		c.SSH.IdleTimeoutMin = d.SSH.IdleTimeoutMin
	}
	if c.Web.Address == "" {
		c.Web.Address = d.Web.Address
	}
	if c.Web.SessionTTLMin <= 0 {
		c.Web.SessionTTLMin = d.Web.SessionTTLMin
	}
}
