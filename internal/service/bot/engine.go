package bot

import (
	"math"
	"strings"

	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/domain"
	"github.com/rs/zerolog/log"
)

// DefaultDepth is the search depth in plies used when none is configured.
const DefaultDepth = 5

var difficultyDepths = map[string]int{
	"easy":   1,
	"medium": 3,
	"hard":   5,
}

var BotNames = map[string]string{
	"easy":   "Alice",
	"medium": "Bob",
	"hard":   "Charles",
}

// DepthForDifficulty maps a named difficulty to a search depth.
func DepthForDifficulty(difficulty string) (int, bool) {
	depth, ok := difficultyDepths[strings.ToLower(strings.TrimSpace(difficulty))]
	return depth, ok
}

func GetBotName(difficulty string) string {
	if name, ok := BotNames[strings.ToLower(difficulty)]; ok {
		return name
	}
	return "BOT"
}

// Result describes a completed search.
type Result struct {
	Column int
	OK     bool
	Score  int
	Nodes  int
}

// Engine chooses computer moves. It keeps no state between calls apart
// from its random source, so one Engine may serve many games at once.
type Engine struct {
	rng RandSource
}

// NewEngine builds an engine on src; nil falls back to frand.
func NewEngine(src RandSource) *Engine {
	if src == nil {
		src = NewCryptoSource()
	}
	return &Engine{rng: src}
}

// Minimax searches from the computer's (AIPiece) perspective.
func (e *Engine) Minimax(board domain.Board, depth, alpha, beta int, maximizing bool) (int, bool, int) {
	return e.MinimaxFor(board, domain.AIPiece, depth, alpha, beta, maximizing)
}

// MinimaxFor searches with piece as the maximizing side.
func (e *Engine) MinimaxFor(board domain.Board, piece domain.Piece, depth, alpha, beta int, maximizing bool) (int, bool, int) {
	s := newSearch(piece, e.rng)
	return s.minimax(domain.CopyBoard(board), depth, alpha, beta, maximizing)
}

// Search runs a full-window search for piece and reports node counts.
func (e *Engine) Search(board domain.Board, piece domain.Piece, depth int) Result {
	s := newSearch(piece, e.rng)
	col, ok, score := s.minimax(domain.CopyBoard(board), depth, math.MinInt, math.MaxInt, true)
	if !ok {
		// only happens when depth is exhausted or the board is terminal
		// on entry; fall back to the first playable column
		if valid := domain.ValidLocations(board); len(valid) > 0 {
			col, ok = valid[0], true
		}
	}
	return Result{Column: col, OK: ok, Score: score, Nodes: s.nodes}
}

// MakeMove recommends a column for the computer. ok is false only when
// the board has no playable column.
func (e *Engine) MakeMove(board domain.Board, depth int) (int, bool) {
	return e.MakeMoveFor(board, domain.AIPiece, depth)
}

// MakeMoveFor recommends a column for piece.
func (e *Engine) MakeMoveFor(board domain.Board, piece domain.Piece, depth int) (int, bool) {
	res := e.Search(board, piece, depth)

	log.Debug().
		Str("component", "bot").
		Int("depth", depth).
		Int("piece", int(piece)).
		Int("column", res.Column).
		Int("score", res.Score).
		Int("nodes", res.Nodes).
		Msg("minimax recommendation")

	return res.Column, res.OK
}
