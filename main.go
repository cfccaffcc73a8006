package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"reversi/config"
	"reversi/engine"
	"reversi/experiments"
	"reversi/game"
	"reversi/meta"
	"reversi/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file, defaults to reversi/config.yaml in the XDG config dirs")
	tournament := flag.Bool("tournament", false, "Run a tournament between machine players instead of a game")
	games := flag.Int("games", 0, "Games per seating in a tournament, overrides the config")
	outDir := flag.String("out", "", "Tournament output directory, overrides the config")
	level := flag.String("log-level", "", "Log level, overrides the config")
	saveConfig := flag.Bool("save-config", false, "Write the effective config to the user config file and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [hex|square] [size] [player1] [player2]\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "players: human, simplistic, smarter, minimax")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *games > 0 {
		cfg.Tournament.Games = *games
	}
	if *outDir != "" {
		cfg.Tournament.OutDir = *outDir
	}
	if *level != "" {
		cfg.Log.Level = *level
	}
	applyArgs(&cfg.Game, flag.Args())
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel())

	switch {
	case *saveConfig:
		path, err := cfg.Save("")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to save config")
		}
		log.Info().Msgf("saved config to %s", path)
	case *tournament:
		runTournament(cfg.Tournament)
	default:
		playGame(cfg.Game)
	}
}

// applyArgs reads the positional tokens [topology] [size] [player1] [player2].
// Unknown tokens fall back to hex, the default size and human players.
func applyArgs(cfg *config.GameConfig, args []string) {
	for i, arg := range args {
		switch i {
		case 0:
			kind, _ := game.ParseKind(arg)
			cfg.Topology = kind.String()
		case 1:
			size, err := strconv.Atoi(arg)
			if err != nil || size < 0 {
				size = meta.DEFAULT_BOARD_SIZE
			}
			cfg.Size = size
		case 2:
			kind, _ := player.ParseKind(arg)
			cfg.Player1 = kind.String()
		case 3:
			kind, _ := player.ParseKind(arg)
			cfg.Player2 = kind.String()
		}
	}
}

func playGame(cfg config.GameConfig) {
	topology, _ := game.ParseKind(cfg.Topology)
	players := []player.Player{}
	machines := 0
	for i, name := range []string{cfg.Player1, cfg.Player2} {
		kind, _ := player.ParseKind(name)
		if kind != player.HumanKind {
			machines++
		}
		players = append(players, player.New(kind, fmt.Sprintf("%s-%d", kind, i+1)))
	}

	eng, err := engine.LocalEngine(topology, cfg.Size, players, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	var winner string
	if machines == len(players) {
		winner, _, _, err = eng.Run()
	} else {
		winner, _, _, err = eng.Play(os.Stdin)
	}
	if errors.Is(err, engine.ErrAborted) {
		log.Info().Msg("game abandoned")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
	if winner == "" {
		winner = "nobody, it is a draw"
	}
	fmt.Printf("Winner: %s\n", winner)
}

func runTournament(cfg config.TournamentConfig) {
	result, err := experiments.RunTournament(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}
	fmt.Printf("Results stored in %s\n", result.Dir)
	for _, s := range result.Standings {
		fmt.Printf("%-12s wins %3d  losses %3d  draws %3d\n", s.Kind, s.Wins, s.Losses, s.Draws)
	}
}
