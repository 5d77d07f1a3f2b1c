package config

// Config is the root configuration structure
type Config struct {
	Data   DataConfig   `yaml:"data" koanf:"data"`
	Log    LogConfig    `yaml:"log" koanf:"log"`
	Report ReportConfig `yaml:"report" koanf:"report"`
}

// DataConfig locates the catalog data
type DataConfig struct {
	Path   string `yaml:"path" koanf:"path" validate:"required"`
	Format string `yaml:"format,omitempty" koanf:"format" validate:"omitempty,oneof=json yaml yml sqlite"` // empty = infer from extension
}

// LogConfig controls zerolog output
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	Format string `yaml:"format" koanf:"format" validate:"required,oneof=console json"`
}

// ReportConfig holds the arguments of the standard report
type ReportConfig struct {
	Tag            string `yaml:"tag" koanf:"tag" validate:"required"`
	PieceThreshold int    `yaml:"piece_threshold" koanf:"piece_threshold"`
	Letter         string `yaml:"letter" koanf:"letter" validate:"required,len=1"`
}
