package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// StorageConfig selects and parameterizes the persistence backend.
// DatabaseURL is required for the postgres backend, DataDir for the file
// backend; the memory backend needs neither.
type StorageConfig struct {
	Backend     string `mapstructure:"backend"      validate:"required,oneof=memory file postgres"`
	DataDir     string `mapstructure:"data_dir"     validate:"required_if=Backend file"`
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Backend postgres,omitempty,url"`
}
