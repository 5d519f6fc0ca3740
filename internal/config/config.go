// Package config handles demo configuration loading and management.
package config

// Config holds all settings for the simulation host.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Potato     PotatoConfig     `yaml:"potato"`
	Turbines   []TurbineConfig  `yaml:"turbines"`
	Player     PlayerConfig     `yaml:"player"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig holds tick-loop settings.
type SimulationConfig struct {
	TickRate      int     `yaml:"tick_rate"`       // ticks per second; <=0 means uncapped
	StatsEverySec float64 `yaml:"stats_every_sec"` // periodic stats log interval
}

// TerrainConfig holds heightfield generation parameters.
type TerrainConfig struct {
	Size  int     `yaml:"size"`  // side length in samples
	Scale float64 `yaml:"scale"` // noise-space frequency multiplier
	Seed  int64   `yaml:"seed"`
}

// PotatoConfig holds ellipsoid generation parameters.
type PotatoConfig struct {
	LonSegments int     `yaml:"longitude_segments"`
	LatSegments int     `yaml:"latitude_segments"`
	NoiseFactor float64 `yaml:"noise_factor"`
	Elongation  float64 `yaml:"elongation_factor"`
	Scale       float32 `yaml:"scale"`
	Seed        int64   `yaml:"seed"` // 0 means time-seeded (non-deterministic)
}

// TurbineConfig places one wind turbine in the scene.
type TurbineConfig struct {
	Position      [3]float32 `yaml:"position"`
	RotationSpeed float32    `yaml:"rotation_speed"` // radians/sec
}

// PlayerConfig holds controller tuning.
type PlayerConfig struct {
	WalkSpeed    float32 `yaml:"walk_speed"`
	JumpHeight   float32 `yaml:"jump_height"`
	DashDistance float32 `yaml:"dash_distance"`
	FloatHeight  float32 `yaml:"float_height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TickRate:      60,
			StatsEverySec: 5,
		},
		Terrain: TerrainConfig{
			Size:  100,
			Scale: 0.2,
			Seed:  42,
		},
		Potato: PotatoConfig{
			LonSegments: 32,
			LatSegments: 16,
			NoiseFactor: 0.2,
			Elongation:  1.4,
			Scale:       5.0,
			Seed:        0,
		},
		Turbines: []TurbineConfig{
			{Position: [3]float32{0, 0, 0}, RotationSpeed: 1.0},
			{Position: [3]float32{3, 0, 10}, RotationSpeed: 1.2},
			{Position: [3]float32{-3, 0, -10}, RotationSpeed: 0.8},
		},
		Player: PlayerConfig{
			WalkSpeed:    10.0,
			JumpHeight:   4.0,
			DashDistance: 10.0,
			FloatHeight:  30.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
