package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagTickRate = flag.Int("tick-rate", 0, "Simulation ticks per second")
	flagSeed     = flag.Int64("seed", 0, "Terrain noise seed")
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
	if *flagTickRate > 0 {
		cfg.Simulation.TickRate = *flagTickRate
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
}
