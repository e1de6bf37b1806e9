package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/config"
	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/domain"
	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/service/bot"
	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/service/cleanup"
	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/service/game"
	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/service/simulation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: connect4 <command> [flags]

commands:
  play       play against the computer in the terminal
  simulate   run the AI vs AI depth matchups
  log        play one logged game of the AI against a random mover
`

func main() {
	config.LoadEnvFile()
	cfg := config.LoadConfig()
	setupLogging(cfg.LogLevel)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "play":
		err = runPlay(ctx, cfg, os.Args[2:])
	case "simulate":
		err = runSimulate(ctx, cfg, os.Args[2:])
	case "log":
		err = runLog(cfg, os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("command failed")
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func resolveDepth(cfg *config.Config, depth int, difficulty string) int {
	if difficulty == "" {
		difficulty = cfg.Difficulty
	}
	if difficulty != "" {
		if d, ok := bot.DepthForDifficulty(difficulty); ok {
			return d
		}
		log.Warn().Str("difficulty", difficulty).Msg("unknown difficulty, using search depth")
	}
	if depth > 0 {
		return depth
	}
	return cfg.SearchDepth
}

// terminalNotifier draws every snapshot to out.
type terminalNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func (n *terminalNotifier) Publish(_ string, snap domain.Snapshot) {
	n.mu.Lock()
	defer n.mu.Unlock()

	fmt.Fprintln(n.out)
	for _, row := range snap.Board {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = domain.Piece(v).Symbol()
		}
		fmt.Fprintln(n.out, "  "+strings.Join(cells, " "))
	}
	fmt.Fprintln(n.out, "  1 2 3 4 5 6 7")
	if snap.LastMove != nil {
		fmt.Fprintf(n.out, "last move: %s in column %d\n", snap.LastMove.Piece.Symbol(), snap.LastMove.Column+1)
	}
	fmt.Fprintln(n.out, snap.Message)
	if snap.Command == domain.CommandGameOver {
		fmt.Fprintln(n.out, "type r to play again or q to quit")
	}
}

func runPlay(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	depth := fs.Int("depth", 0, "search depth in plies (defaults to SEARCH_DEPTH)")
	difficulty := fs.String("difficulty", "", "easy, medium or hard (overrides -depth)")
	aiFirst := fs.Bool("ai-first", false, "let the computer open")
	delay := fs.Duration("delay", cfg.ThinkingDelay, "pause before the computer replies")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d := resolveDepth(cfg, *depth, *difficulty)
	notifier := &terminalNotifier{out: os.Stdout}
	sm := game.NewSessionManager(bot.NewEngine(nil), game.Options{
		Depth:         d,
		ThinkingDelay: *delay,
		Notifier:      notifier,
	})

	worker := cleanup.NewWorker(sm, cfg.CleanupInterval, cfg.SessionFinishedTTL, cfg.SessionIdleTTL)
	go worker.Start(ctx)

	log.Info().Int("depth", d).Str("opponent", bot.GetBotName(*difficulty)).Msg("starting game")
	session := sm.Create(!*aiFirst)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("shutting down")
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			switch strings.ToLower(line) {
			case "":
				continue
			case "q", "quit":
				return nil
			case "r", "reset":
				session.Reset()
				continue
			}

			col, err := strconv.Atoi(line)
			if err != nil {
				fmt.Println("enter a column from 1 to 7, r to reset or q to quit")
				continue
			}
			if err := session.HandleMove(col - 1); err != nil {
				switch {
				case errors.Is(err, domain.ErrColumnFull):
					fmt.Println("that column is full")
				case errors.Is(err, domain.ErrInvalidMove):
					fmt.Println("enter a column from 1 to 7")
				case errors.Is(err, domain.ErrNotYourTurn):
					fmt.Println("wait for the computer to move")
				case errors.Is(err, domain.ErrGameOver):
					fmt.Println("the game is over, type r to play again")
				default:
					return err
				}
			}
		}
	}
}

func runSimulate(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	games := fs.Int("games", cfg.SimGames, "games per matchup")
	matchupList := fs.String("matchups", cfg.SimMatchups, "comma separated depth matchups, e.g. 3v1,5v3")
	workers := fs.Int("workers", cfg.SimWorkers, "matchups run at once")
	seed := fs.Int64("seed", 0, "seed the random tie-breaks for a reproducible run (0 = unseeded)")
	asJSON := fs.Bool("json", false, "print results as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	matchups, err := simulation.ParseMatchups(*matchupList)
	if err != nil {
		return err
	}

	opts := simulation.SuiteOptions{Games: *games, Workers: *workers}
	if *seed != 0 {
		base := *seed
		opts.NewSource = func(i int) bot.RandSource { return bot.NewSeededSource(base + int64(i)) }
	}

	suite, err := simulation.RunSuite(ctx, matchups, opts)
	if err != nil {
		return err
	}
	if *asJSON {
		return simulation.WriteJSON(os.Stdout, suite)
	}
	return simulation.WriteTable(os.Stdout, suite)
}

func runLog(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("log", flag.ExitOnError)
	depth := fs.Int("depth", cfg.SearchDepth, "search depth of the AI")
	opening := fs.Int("opening", 4, "column (1-7) of the forced first move")
	if err := fs.Parse(args); err != nil {
		return err
	}

	gl := simulation.RunSingleGameWithLog(bot.NewEngine(nil), bot.NewCryptoSource(), *depth, *opening-1)
	if gl.Err != nil && len(gl.Entries) == 0 {
		return gl.Err
	}
	return simulation.WriteGameLog(os.Stdout, gl)
}
