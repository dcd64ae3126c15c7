package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cwrk-planet/board-service/internal/pg"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultPath = "config/config.yaml"

type HTTP struct {
	Addr            string        `yaml:"addr" env:"BOARD_HTTP_ADDR"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	RequestTimeout  time.Duration `yaml:"requestTimeout"` // chi middleware.Timeout
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// Logging: env dev|stage|prod, backend std|zap, level debug|info|warn|error.
type Logging struct {
	Env       string `yaml:"env" env:"APP_ENV"`
	Service   string `yaml:"service"`
	Version   string `yaml:"version"`
	Backend   string `yaml:"backend" env:"LOG_BACKEND"`
	Level     string `yaml:"level" env:"LOG_LEVEL"`
	AddSource bool   `yaml:"addSource"`
	Debug     bool   `yaml:"debug" env:"LOG_DEBUG"`
}

type Postgres struct {
	DSN               string        `yaml:"dsn" env:"BOARD_POSTGRES_DSN"`
	MaxConns          int32         `yaml:"maxConns"`
	MinConns          int32         `yaml:"minConns"`
	MaxConnLifetime   time.Duration `yaml:"maxConnLifetime"`
	MaxConnIdleTime   time.Duration `yaml:"maxConnIdleTime"`
	HealthCheckPeriod time.Duration `yaml:"healthCheckPeriod"`
	ApplicationName   string        `yaml:"applicationName"`
	Migrate           bool          `yaml:"migrate" env:"BOARD_POSTGRES_MIGRATE"`
}

func (p Postgres) Validate() error {
	if strings.TrimSpace(p.DSN) == "" {
		return errors.New("postgres.dsn is required")
	}
	if p.MaxConns < 0 || p.MinConns < 0 {
		return errors.New("postgres.maxConns/minConns must be >= 0")
	}
	if p.MaxConns > 0 && p.MinConns > p.MaxConns {
		return errors.New("postgres.minConns must be <= maxConns")
	}

	return nil
}

func (p Postgres) ToPGConfig() pg.Config {
	return pg.Config{
		DSN:               p.DSN,
		MaxConns:          p.MaxConns,
		MinConns:          p.MinConns,
		MaxConnLifetime:   p.MaxConnLifetime,
		MaxConnIdleTime:   p.MaxConnIdleTime,
		HealthCheckPeriod: p.HealthCheckPeriod,
		ApplicationName:   p.ApplicationName,
	}
}

type Config struct {
	HTTP     HTTP     `yaml:"http"`
	CORS     CORS     `yaml:"cors"`
	Logging  Logging  `yaml:"logging"`
	Postgres Postgres `yaml:"postgres"`
}

// Validate проверяет обязательные поля и проставляет дефолты.
func (c *Config) Validate() error {
	if err := c.Postgres.Validate(); err != nil {
		return err
	}

	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = 15 * time.Second
	}
	if c.HTTP.WriteTimeout == 0 {
		c.HTTP.WriteTimeout = 30 * time.Second
	}
	if c.HTTP.IdleTimeout == 0 {
		c.HTTP.IdleTimeout = 60 * time.Second
	}
	if c.HTTP.RequestTimeout == 0 {
		c.HTTP.RequestTimeout = 30 * time.Second
	}
	if c.HTTP.ShutdownTimeout == 0 {
		c.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if c.HTTP.ReadTimeout < 0 || c.HTTP.WriteTimeout < 0 || c.HTTP.RequestTimeout < 0 {
		return errors.New("http timeouts must be > 0")
	}

	if c.Logging.Service == "" {
		c.Logging.Service = "board-service"
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "dev"
	}
	if c.Logging.Version == "" {
		c.Logging.Version = "v0.1.0"
	}
	switch c.Logging.Backend {
	case "", "std", "zap":
	default:
		return fmt.Errorf("logging.backend must be std|zap, got %q", c.Logging.Backend)
	}

	if c.Postgres.ApplicationName == "" {
		c.Postgres.ApplicationName = c.Logging.Service
	}

	return nil
}

// LoadConfig читает YAML (путь из аргумента, CONFIG_PATH или config/config.yaml),
// затем поверх накладывает переменные окружения, включая .env, если он есть.
func LoadConfig(path ...string) (*Config, error) {
	_ = godotenv.Load()

	filename := os.Getenv("CONFIG_PATH")
	if len(path) > 0 && strings.TrimSpace(path[0]) != "" {
		filename = path[0]
	}
	if filename == "" {
		filename = defaultPath
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv переопределяет только те поля, для которых переменная реально задана.
func applyEnv(cfg *Config) error {
	var fromEnv Config
	if _, err := env.UnmarshalFromEnviron(&fromEnv); err != nil {
		return fmt.Errorf("read env: %w", err)
	}

	if fromEnv.HTTP.Addr != "" {
		cfg.HTTP.Addr = fromEnv.HTTP.Addr
	}
	if fromEnv.Postgres.DSN != "" {
		cfg.Postgres.DSN = fromEnv.Postgres.DSN
	}
	if _, ok := os.LookupEnv("BOARD_POSTGRES_MIGRATE"); ok {
		cfg.Postgres.Migrate = fromEnv.Postgres.Migrate
	}
	if fromEnv.Logging.Env != "" {
		cfg.Logging.Env = fromEnv.Logging.Env
	}
	if fromEnv.Logging.Backend != "" {
		cfg.Logging.Backend = fromEnv.Logging.Backend
	}
	if fromEnv.Logging.Level != "" {
		cfg.Logging.Level = fromEnv.Logging.Level
	}
	if _, ok := os.LookupEnv("LOG_DEBUG"); ok {
		cfg.Logging.Debug = fromEnv.Logging.Debug
	}

	return nil
}
