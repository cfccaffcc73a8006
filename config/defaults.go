package config

import "reversi/meta"

func DefaultConfig() *Config {
	return &Config{
		Game: GameConfig{
			Topology: "hex",
			Size:     meta.DEFAULT_BOARD_SIZE,
			Player1:  "human",
			Player2:  "human",
		},
		Log: LogConfig{
			Level: "info",
		},
		Tournament: TournamentConfig{
			Players:  []string{"simplistic", "smarter", "minimax"},
			Games:    1,
			Topology: "hex",
			Size:     meta.DEFAULT_BOARD_SIZE,
			OutDir:   "experiments",
		},
	}
}
