// Package config loads the arcade host configuration from YAML, an optional
// .env file and ARCADE_* environment variables.
package config

import "time"

// Config is the complete host configuration.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	TUI   TUIConfig   `yaml:"tui"`
	Audio AudioConfig `yaml:"audio"`
	SSH   SSHConfig   `yaml:"ssh"`
	Web   WebConfig   `yaml:"web"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Used by terminal commands; servers log to stderr
}

// TUIConfig controls the terminal host.
type TUIConfig struct {
	FrameMs      int `yaml:"frame_ms"`       // Clock period for the tick loop
	CellPx       int `yaml:"cell_px"`        // Approximate pixel width of one column
	KeyReleaseMs int `yaml:"key_release_ms"` // Held keys release after this long without a repeat
}

// AudioConfig controls the audio cues.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// SSHConfig controls `arcade serve`.
type SSHConfig struct {
	Address        string `yaml:"address"`
	HostKey        string `yaml:"host_key"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}

// WebConfig controls `arcade web`.
type WebConfig struct {
	Address       string `yaml:"address"`
	SessionTTLMin int    `yaml:"session_ttl_min"`
}

// FrameInterval returns the terminal clock period.
func (c TUIConfig) FrameInterval() time.Duration {
	return time.Duration(c.FrameMs) * time.Millisecond
}

// KeyRelease returns how long a held key stays down without a repeat.
func (c TUIConfig) KeyRelease() time.Duration {
	return time.Duration(c.KeyReleaseMs) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMin) * time.Minute
}

// SessionTTL returns how long an untouched web session lives.
func (c WebConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMin) * time.Minute
}
