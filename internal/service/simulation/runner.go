package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/domain"
	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/service/bot"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const ErrMoveRejected domain.Error = "mover returned no playable column"

// GameRecord is the full account of one simulated game.
type GameRecord struct {
	Winner domain.Piece // Empty for a draw
	Moves  []domain.Move
	Board  domain.Board
	Err    error
}

// PlayGame plays from board with toMove to move until the game ends.
// movers maps each piece to the player controlling it. The board is
// played on in place.
func PlayGame(board domain.Board, toMove domain.Piece, movers map[domain.Piece]Mover) GameRecord {
	rec := GameRecord{Board: board}

	for {
		col, ok := movers[toMove].Move(domain.CopyBoard(board), toMove)
		row := domain.LandingRow(board, col)
		if !ok || !domain.DropPiece(board, col, toMove) {
			drawn := domain.IsBoardFull(board) &&
				!domain.CheckWin(board, domain.PlayerPiece) && !domain.CheckWin(board, domain.AIPiece)
			if !drawn {
				rec.Err = fmt.Errorf("simulation: piece %d column %d: %w", toMove, col, ErrMoveRejected)
				log.Error().Err(rec.Err).Str("component", "simulation").Msg("simulation error")
			}
			return rec
		}
		rec.Moves = append(rec.Moves, domain.Move{Piece: toMove, Column: col, Row: row})

		if domain.CheckWin(board, toMove) {
			rec.Winner = toMove
			return rec
		}
		if domain.IsBoardFull(board) {
			return rec
		}

		toMove = toMove.Opponent()
	}
}

// Outcome of one matchup game from the higher depth's point of view.
type Outcome int

const (
	OutcomeDraw Outcome = iota
	OutcomeHighWin
	OutcomeLowWin
	OutcomeError
)

// RunSingleGame plays the higher depth against the lower one. The side
// that starts takes PlayerPiece.
func RunSingleGame(engine *bot.Engine, m Matchup, highStarts bool) Outcome {
	high := MinimaxPlayer{Engine: engine, Depth: m.High}
	low := MinimaxPlayer{Engine: engine, Depth: m.Low}

	highPiece := domain.PlayerPiece
	movers := map[domain.Piece]Mover{domain.PlayerPiece: high, domain.AIPiece: low}
	if !highStarts {
		highPiece = domain.AIPiece
		movers = map[domain.Piece]Mover{domain.PlayerPiece: low, domain.AIPiece: high}
	}

	rec := PlayGame(domain.NewBoard(), domain.PlayerPiece, movers)
	switch {
	case rec.Err != nil:
		return OutcomeError
	case rec.Winner == domain.Empty:
		return OutcomeDraw
	case rec.Winner == highPiece:
		return OutcomeHighWin
	default:
		return OutcomeLowWin
	}
}

// MatchupResult aggregates every game of a matchup.
type MatchupResult struct {
	Matchup
	Key             string    `json:"key"`
	NumGames        int       `json:"numGames"`
	HighWins        int       `json:"highDepthWins"`
	LowWins         int       `json:"lowDepthWins"`
	Draws           int       `json:"draws"`
	Errors          int       `json:"errors"`
	HighWinRate     float64   `json:"highDepthWinRate"`
	LowWinRate      float64   `json:"lowDepthWinRate"`
	DrawRate        float64   `json:"drawRate"`
	DurationSeconds float64   `json:"duration_sec"`
	Outcomes        []Outcome `json:"-"`
}

func (r *MatchupResult) record(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o {
	case OutcomeHighWin:
		r.HighWins++
	case OutcomeLowWin:
		r.LowWins++
	case OutcomeDraw:
		r.Draws++
	default:
		r.Errors++
	}
}

func (r *MatchupResult) finish(d time.Duration) {
	r.DurationSeconds = d.Seconds()
	if r.NumGames == 0 {
		return
	}
	n := float64(r.NumGames)
	r.HighWinRate = 100 * float64(r.HighWins) / n
	r.LowWinRate = 100 * float64(r.LowWins) / n
	r.DrawRate = 100 * float64(r.Draws) / n
}

// RunMatchup plays games alternating who starts; the higher depth opens
// the even-numbered games. It stops early if ctx is cancelled.
func RunMatchup(ctx context.Context, engine *bot.Engine, m Matchup, games int) (MatchupResult, error) {
	res := MatchupResult{Matchup: m, Key: m.Key()}
	start := time.Now()

	log.Info().Str("component", "simulation").Str("matchup", res.Key).Int("games", games).Msg("running matchup")

	for i := 0; i < games; i++ {
		if err := ctx.Err(); err != nil {
			res.finish(time.Since(start))
			return res, fmt.Errorf("simulation: matchup %s: %w", res.Key, err)
		}
		res.record(RunSingleGame(engine, m, i%2 == 0))
		res.NumGames++
	}

	res.finish(time.Since(start))
	log.Info().Str("component", "simulation").Str("matchup", res.Key).
		Float64("duration_sec", res.DurationSeconds).Msg("matchup complete")
	return res, nil
}

// SuiteOptions controls RunSuite.
type SuiteOptions struct {
	Games   int
	Workers int
	// NewSource returns the random source for the i-th matchup. Each
	// matchup gets its own engine, so nothing is shared between workers.
	NewSource func(i int) bot.RandSource
}

// SuiteResult holds every matchup result, ordered for display.
type SuiteResult struct {
	GamesPerMatchup int             `json:"gamesPerMatchup"`
	Results         []MatchupResult `json:"results"`
	Ratings         map[int]int     `json:"ratings"`
	DurationSeconds float64         `json:"duration_sec"`
}

// RunSuite runs every matchup, at most Workers at a time. With one
// worker the matchups run one after another.
func RunSuite(ctx context.Context, matchups []Matchup, opts SuiteOptions) (SuiteResult, error) {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.NewSource == nil {
		opts.NewSource = func(int) bot.RandSource { return bot.NewCryptoSource() }
	}

	start := time.Now()
	log.Info().Str("component", "simulation").Int("matchups", len(matchups)).
		Int("games", opts.Games).Int("workers", opts.Workers).Msg("starting AI vs AI simulation suite")

	results := make([]MatchupResult, len(matchups))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, m := range matchups {
		i, m := i, m
		g.Go(func() error {
			engine := bot.NewEngine(opts.NewSource(i))
			res, err := RunMatchup(gctx, engine, m, opts.Games)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SuiteResult{}, err
	}

	SortResults(results)
	suite := SuiteResult{
		GamesPerMatchup: opts.Games,
		Results:         results,
		Ratings:         EstimateRatings(results),
		DurationSeconds: time.Since(start).Seconds(),
	}

	log.Info().Str("component", "simulation").Float64("duration_sec", suite.DurationSeconds).Msg("simulation suite complete")
	return suite, nil
}
