package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rpedroni/project-luca-car-trivia/internal/service"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidConfig               = errors.New("invalid config")
)

const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"`      // current application environment (local, dev, production etc)
	TelegramAPIToken string   `mapstructure:"-"`        // Telegram API token loaded from environment, empty disables the bot
	HTTP             HTTP     `mapstructure:"http"`     // browser API section
	Catalog          Catalog  `mapstructure:"catalog"`  // where brands and cars come from
	DB               DB       `mapstructure:"database"` // database configuration section
	Game             Game     `mapstructure:"game"`     // session timings and announcer settings
	Sessions         Sessions `mapstructure:"sessions"` // session storage housekeeping
}

// HTTP contains the browser API settings.
type HTTP struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Catalog selects the catalog source.
type Catalog struct {
	Source string `mapstructure:"source"` // file or postgres
	Path   string `mapstructure:"path"`   // JSON file, also the seed input
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Game contains the session rules.
type Game struct {
	IdentifyDelay    time.Duration `mapstructure:"identify_delay"`
	DetailDelay      time.Duration `mapstructure:"detail_delay"`
	CelebrationDelay time.Duration `mapstructure:"celebration_delay"`
	CelebrationEvery int           `mapstructure:"celebration_every"`
	PlayerName       string        `mapstructure:"player_name"`
	Seed             int64         `mapstructure:"seed"` // 0 seeds from the clock
}

// SessionConfig converts the game section into session timings.
func (g Game) SessionConfig() service.SessionConfig {
	return service.SessionConfig{
		IdentifyDelay:    g.IdentifyDelay,
		DetailDelay:      g.DetailDelay,
		CelebrationDelay: g.CelebrationDelay,
		CelebrationEvery: g.CelebrationEvery,
	}
}

// Sessions contains the idle session eviction settings.
type Sessions struct {
	IdleTTL       time.Duration `mapstructure:"idle_ttl"`
	SweepSchedule string        `mapstructure:"sweep_schedule"`
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	return load("./config")
}

func load(configPaths ...string) (*Config, error) {
	// Values from .env never override variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("http.addr", "HTTP_ADDR")
	_ = v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("catalog.source", CatalogSourceFile)
	v.SetDefault("catalog.path", "assets/data/catalog.json")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30m")

	def := service.DefaultSessionConfig()
	v.SetDefault("game.identify_delay", def.IdentifyDelay)
	v.SetDefault("game.detail_delay", def.DetailDelay)
	v.SetDefault("game.celebration_delay", def.CelebrationDelay)
	v.SetDefault("game.celebration_every", def.CelebrationEvery)
	v.SetDefault("game.player_name", "Luca")
	v.SetDefault("game.seed", 0)

	v.SetDefault("sessions.idle_ttl", "30m")
	v.SetDefault("sessions.sweep_schedule", "@every 1m")
}

// Validate checks values that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSourceFile:
		if c.Catalog.Path == "" {
			return fmt.Errorf("%w: catalog.path is empty", ErrInvalidConfig)
		}
	case CatalogSourcePostgres:
		if c.DB.URL == "" {
			return fmt.Errorf("%w: postgres catalog needs DATABASE_URL", ErrMissingEnvironmentVariables)
		}
	default:
		return fmt.Errorf("%w: unknown catalog source %q", ErrInvalidConfig, c.Catalog.Source)
	}

	g := c.Game
	if g.IdentifyDelay <= 0 || g.DetailDelay <= 0 || g.CelebrationDelay <= 0 {
		return fmt.Errorf("%w: game delays must be positive", ErrInvalidConfig)
	}
	if g.CelebrationEvery <= 0 {
		return fmt.Errorf("%w: game.celebration_every must be positive", ErrInvalidConfig)
	}
	if c.Sessions.IdleTTL <= 0 {
		return fmt.Errorf("%w: sessions.idle_ttl must be positive", ErrInvalidConfig)
	}

	return nil
}
