// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Preview  PreviewConfig  `yaml:"preview"`
	Design   DesignConfig   `yaml:"design"`
	Tracking TrackingConfig `yaml:"tracking"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PreviewConfig holds display settings for the preview window.
type PreviewConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// DesignConfig holds design document settings.
type DesignConfig struct {
	// Path is the design document loaded on startup; empty starts from
	// the built-in default design.
	Path string `yaml:"path"`
	// MeshResolution is the marching cubes cell count for ornament
	// shape meshing.
	MeshResolution int `yaml:"mesh_resolution"`
}

// TrackingConfig holds landmark source settings.
type TrackingConfig struct {
	// Source selects the landmark source: "synthetic" or "replay".
	Source string `yaml:"source"`
	// CapturePath is the recorded session played by the replay source.
	CapturePath string `yaml:"capture_path"`
	// SwayAmplitude drives the synthetic source's head motion.
	SwayAmplitude float32 `yaml:"sway_amplitude"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Preview: PreviewConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			ShowFPS:    false,
		},
		Design: DesignConfig{
			Path:           "",
			MeshResolution: 48,
		},
		Tracking: TrackingConfig{
			Source:        "synthetic",
			CapturePath:   "",
			SwayAmplitude: 0.08,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
