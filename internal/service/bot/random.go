package bot

import (
	"math/rand"
	"sync"

	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/domain"
	"lukechampine.com/frand"
)

// RandSource supplies the uniform choices the engine makes. Tests inject
// a seeded source to pin tie-breaks.
type RandSource interface {
	Intn(n int) int
}

type frandSource struct{}

func (frandSource) Intn(n int) int {
	return frand.Intn(n)
}

// NewCryptoSource returns a source backed by frand, safe for concurrent use.
func NewCryptoSource() RandSource {
	return frandSource{}
}

// lockedSource guards a math/rand generator, which is not goroutine-safe.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// NewSeededSource returns a deterministic source.
func NewSeededSource(seed int64) RandSource {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

// RandomMove picks a uniformly random playable column.
func RandomMove(board domain.Board, src RandSource) (int, bool) {
	validColumns := domain.ValidLocations(board)
	if len(validColumns) == 0 {
		return -1, false
	}
	return validColumns[src.Intn(len(validColumns))], true
}

// RandomMover plays uniformly random columns regardless of depth.
type RandomMover struct {
	Source RandSource
}

func (m RandomMover) MakeMove(board domain.Board, _ int) (int, bool) {
	return RandomMove(board, m.Source)
}
