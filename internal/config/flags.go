package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagMoves      = flag.String("moves", "", "Move sequence to play on start, e.g. \"R U R' U'\"")
	flagStep       = flag.Float64("step", 0, "Animation progress per frame (0.05 = 20 frames per turn)")
	flagDB         = flag.String("db", "", "Session database path")
	flagNoRecord   = flag.Bool("no-record", false, "Do not record the session")
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
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagMoves != "" {
		cfg.Puzzle.Moves = *flagMoves
	}
	if *flagStep > 0 {
		cfg.Puzzle.Step = float32(*flagStep)
	}
	if *flagDB != "" {
		cfg.Storage.Path = *flagDB
	}
	if *flagNoRecord {
		cfg.Storage.Enabled = false
	}
}
