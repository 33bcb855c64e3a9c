package config

// Config contains all application settings
type Config struct {
	BindPort        int    `mapstructure:"PORT" yaml:"port"`
	BindHost        string `mapstructure:"HOST" yaml:"host"`
	DatabaseURL     string `mapstructure:"DATABASE_URL" yaml:"database_url"`
	StaticDir       string `mapstructure:"STATIC_DIR" yaml:"static_dir"`
	DisplayTimezone string `mapstructure:"DISPLAY_TIMEZONE" yaml:"display_timezone"`
	NATSServerURL   string `mapstructure:"NATS_URL" yaml:"nats_url"`
	NATSSubject     string `mapstructure:"NATS_SUBJECT" yaml:"nats_subject"`
	LogLevel        string `mapstructure:"LOG_LEVEL" yaml:"log_level"`
	LogFile         string `mapstructure:"LOG_FILE" yaml:"log_file"`

	// Version
	BuildVersion string `yaml:"-"`
	BuildHash    string `yaml:"-"`
	BuildTime    string `yaml:"-"`
}

// MemoryDatabase selects the in-memory store instead of a SQLite file.
const MemoryDatabase = "memory"

// UseMemoryStore reports whether the records are kept in process memory only.
func (c *Config) UseMemoryStore() bool {
	return c.DatabaseURL == MemoryDatabase
}

// NATSEnabled reports whether saved records are published to NATS.
func (c *Config) NATSEnabled() bool {
	return c.NATSServerURL != ""
}
