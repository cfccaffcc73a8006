package config

import (
	"fmt"
	"os"
	"path/filepath"

	"reversi/game"
	"reversi/meta"
	"reversi/player"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var (
	cfgFile = "reversi/config.yaml"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type GameConfig struct {
	Topology string `yaml:"topology"`
	Size     int    `yaml:"size"`
	Player1  string `yaml:"player1"`
	Player2  string `yaml:"player2"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// TournamentConfig describes a round robin between machine players.
type TournamentConfig struct {
	Players  []string `yaml:"players"`
	Games    int      `yaml:"games"` // Per seating of each pair
	Topology string   `yaml:"topology"`
	Size     int      `yaml:"size"`
	OutDir   string   `yaml:"out_dir"`
}

type Config struct {
	Game       GameConfig       `yaml:"game"`
	Log        LogConfig        `yaml:"log"`
	Tournament TournamentConfig `yaml:"tournament"`
}

// InitConfig loads the file at path, or the user's config file when path is empty,
// over the defaults. A missing user config file is not an error.
func InitConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		found, err := xdg.SearchConfigFile(cfgFile)
		if err != nil {
			return config, config.Validate()
		}
		path = found
	}

	if err := readCfgFile(path, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if _, ok := game.ParseKind(c.Game.Topology); !ok {
		return &InvalidConfig{fmt.Sprintf("unknown topology %q", c.Game.Topology)}
	}
	if c.Game.Size < 0 {
		return &InvalidConfig{fmt.Sprintf("negative board size %d", c.Game.Size)}
	}
	for _, name := range []string{c.Game.Player1, c.Game.Player2} {
		if _, ok := player.ParseKind(name); !ok {
			return &InvalidConfig{fmt.Sprintf("unknown player kind %q", name)}
		}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return c.Tournament.validate()
}

func (t *TournamentConfig) validate() error {
	if len(t.Players) < meta.NUM_PLAYERS {
		return &InvalidConfig{"a tournament needs at least two players"}
	}
	for _, name := range t.Players {
		kind, ok := player.ParseKind(name)
		if !ok || kind == player.HumanKind {
			return &InvalidConfig{fmt.Sprintf("tournament player %q is not a machine", name)}
		}
	}
	if t.Games < 1 {
		return &InvalidConfig{"a tournament needs at least one game per seating"}
	}
	if _, ok := game.ParseKind(t.Topology); !ok {
		return &InvalidConfig{fmt.Sprintf("unknown tournament topology %q", t.Topology)}
	}
	if t.OutDir == "" {
		return &InvalidConfig{"missing tournament output directory"}
	}
	return nil
}

// LogLevel is the configured level. Validate has already rejected unknown names.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Save writes the config to path, or to the user's config file when path is empty.
func (c *Config) Save(path string) (string, error) {
	if path == "" {
		found, err := xdg.ConfigFile(cfgFile)
		if err != nil {
			return "", fmt.Errorf("failed to locate config file: %w", err)
		}
		path = found
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}

func readCfgFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
