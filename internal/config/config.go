package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Game     GameConfig     `toml:"game"`
	Database DatabaseConfig `toml:"database"`
	Snapshot SnapshotConfig `toml:"snapshot"`
	Logging  LoggingConfig  `toml:"logging"`
}

type ServerConfig struct {
	Name      string `toml:"name"`
	ID        int    `toml:"id"`
	StartTime int64  // set at boot, not from config
}

type GameConfig struct {
	TickRate   time.Duration `toml:"tick_rate"`
	Players    int           `toml:"players"`     // player slots in the world
	ScriptsDir string        `toml:"scripts_dir"` // mission Lua scripts
	AIInterval int           `toml:"ai_interval"` // ticks between ai_proc calls
}

type DatabaseConfig struct {
	DSN             string        `toml:"dsn"` // empty = snapshot persistence disabled
	MaxOpenConns    int           `toml:"max_open_conns"`
	MaxIdleConns    int           `toml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `toml:"conn_max_lifetime"`
}

type SnapshotConfig struct {
	Interval int `toml:"interval"` // ticks between snapshot rows (0 = disabled)
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Game.Players < 1 {
		return nil, fmt.Errorf("config %s: game.players must be >= 1", path)
	}
	cfg.Server.StartTime = time.Now().Unix()
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "colonysim",
			ID:   1,
		},
		Game: GameConfig{
			TickRate:   100 * time.Millisecond,
			Players:    4,
			ScriptsDir: "scripts",
			AIInterval: 4,
		},
		Database: DatabaseConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Snapshot: SnapshotConfig{
			Interval: 600, // 600 ticks x 100ms = 1 minute
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
