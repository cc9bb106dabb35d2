// Package config handles configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Terrain TerrainConfig `yaml:"terrain"`
	Tank    TankConfig    `yaml:"tank"`
	Camera  CameraConfig  `yaml:"camera"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds terrain source and placement settings.
type TerrainConfig struct {
	// Heightmap is a local path or a go-getter URL. Empty generates rolling hills.
	Heightmap string `yaml:"heightmap"`
	// Texture is the ground texture, also a path or URL. Empty uses a checker.
	Texture        string  `yaml:"texture"`
	ElevationScale float32 `yaml:"elevation_scale"`
	Position       Vec3    `yaml:"position"`
	// Center shifts the grid so its midpoint sits at Position.
	Center    bool   `yaml:"center"`
	SplitRule string `yaml:"split_rule"` // "quadrant" or "diagonal"
	CacheDir  string `yaml:"cache_dir"`  // Download cache for remote sources
}

// TankConfig holds vehicle tuning.
type TankConfig struct {
	Speed         float32 `yaml:"speed"`          // World units per frame
	RotationSpeed float32 `yaml:"rotation_speed"` // Radians per frame
	StartX        float32 `yaml:"start_x"`
	StartZ        float32 `yaml:"start_z"`
}

// CameraConfig holds chase camera settings.
type CameraConfig struct {
	Offset Vec3    `yaml:"offset"`
	FovY   float32 `yaml:"fov_y"` // Radians
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Vec3 is a YAML-friendly 3D vector.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			Heightmap:      "",
			ElevationScale: 100,
			Center:         true,
			SplitRule:      "quadrant",
			CacheDir:       "",
		},
		Tank: TankConfig{
			Speed:         0.5,
			RotationSpeed: 0.1,
		},
		Camera: CameraConfig{
			Offset: Vec3{X: 0, Y: 8, Z: -15},
			FovY:   0.7853982, // pi/4
			Near:   1,
			Far:    1000,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
