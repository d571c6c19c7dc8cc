package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagDesign     = flag.String("design", "", "Design document to load on startup")
	flagCapture    = flag.String("capture", "", "Recorded landmark session to replay")
	flagWindowed   = flag.Bool("windowed", false, "Run the preview in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run the preview in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Preview window width")
	flagHeight     = flag.Int("height", 0, "Preview window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Preview.ShowFPS = true
	}
	if *flagDesign != "" {
		cfg.Design.Path = *flagDesign
	}
	if *flagCapture != "" {
		cfg.Tracking.Source = "replay"
		cfg.Tracking.CapturePath = *flagCapture
	}
	if *flagWindowed {
		cfg.Preview.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Preview.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Preview.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Preview.Height = *flagHeight
	}
}
