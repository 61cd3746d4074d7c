package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Development DevelopmentConfig `mapstructure:"development"`
	Game        GameConfig        `mapstructure:"game"`
	Render      RenderConfig      `mapstructure:"render"`
}

type ServerConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	StaticDir string `mapstructure:"static_dir"`
}

type DevelopmentConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// GameConfig bounds the number of concurrent hot-seat sessions the server
// keeps in memory.
type GameConfig struct {
	MaxSessions int `mapstructure:"max_sessions"`
}

type RenderConfig struct {
	SquareSize int    `mapstructure:"square_size"`
	LightColor string `mapstructure:"light_color"`
	DarkColor  string `mapstructure:"dark_color"`
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads config.yaml from the working directory or ./config, then
// applies HOTSEAT_* environment overrides. A missing file is not an error.
func Load() (*Config, error) {
	return load(newViper())
}

// LoadFile reads an explicit config file instead of searching for one.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	return load(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Enable environment variables
	v.SetEnvPrefix("HOTSEAT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.static_dir", "./web/static/")
	v.SetDefault("development.debug", false)
	v.SetDefault("development.log_level", "info")
	v.SetDefault("game.max_sessions", 64)
	v.SetDefault("render.square_size", 64)
	v.SetDefault("render.light_color", "#f0d9b5")
	v.SetDefault("render.dark_color", "#b58863")
	return v
}

func load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, defaults and env still apply
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Game.MaxSessions < 1 {
		return nil, fmt.Errorf("game.max_sessions must be positive, got %d", cfg.Game.MaxSessions)
	}
	if cfg.Render.SquareSize < 8 {
		return nil, fmt.Errorf("render.square_size must be at least 8, got %d", cfg.Render.SquareSize)
	}

	return &cfg, nil
}
