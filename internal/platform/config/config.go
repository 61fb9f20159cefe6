package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config del servicio. Orden de carga: defaults -> archivo (opcional) -> env.
type Config struct {
	Server ServerConfig `toml:"server" yaml:"server"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	DB     DBConfig     `toml:"db" yaml:"db"`
	Login  LoginConfig  `toml:"login" yaml:"login"`
}

type ServerConfig struct {
	Port         int      `toml:"port" yaml:"port"`
	ReadTimeout  Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout" yaml:"write_timeout"`
}

type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	App    string `toml:"app" yaml:"app"`
}

// DBConfig: si DSN está vacío se usan los datasets en memoria.
type DBConfig struct {
	DSN string `toml:"dsn" yaml:"dsn"`
}

// DefaultLoginDelay es la espera del login simulado cuando ni el archivo ni LOGIN_DELAY la fijan.
// Un delay explícito de 0 desactiva la espera.
const DefaultLoginDelay = time.Second

type LoginConfig struct {
	Delay Duration `toml:"delay" yaml:"delay"`
}

// Duration acepta "1s", "250ms" en TOML/YAML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  Duration{5 * time.Second},
			WriteTimeout: Duration{10 * time.Second},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "vetdesk",
		},
		Login: LoginConfig{
			Delay: Duration{DefaultLoginDelay},
		},
	}
}

// Addr en formato ":8080".
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// Load arma la config. path vacío = sin archivo.
func Load(path string) (Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return fmt.Errorf("config: unsupported file type %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// applyEnv respeta los nombres históricos: PORT, DB_DSN, LOG_LEVEL, LOG_FORMAT, APP_NAME.
func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			return fmt.Errorf("config: invalid PORT %q", v)
		}
		cfg.Server.Port = port
	}
	if v := strings.TrimSpace(getenv("DB_DSN")); v != "" {
		cfg.DB.DSN = v
	}
	if v := strings.TrimSpace(getenv("LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(getenv("LOG_FORMAT")); v != "" {
		cfg.Log.Format = v
	}
	if v := strings.TrimSpace(getenv("APP_NAME")); v != "" {
		cfg.Log.App = v
	}
	if v := strings.TrimSpace(getenv("LOGIN_DELAY")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid LOGIN_DELAY %q: %w", v, err)
		}
		cfg.Login.Delay = Duration{d}
	}
	return nil
}
