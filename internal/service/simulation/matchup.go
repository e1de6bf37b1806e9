package simulation

import (
	"fmt"
	"strconv"
	"strings"
)

// Matchup pits two search depths against each other. High >= Low.
type Matchup struct {
	High int `json:"depthHigh"`
	Low  int `json:"depthLow"`
}

func NewMatchup(a, b int) Matchup {
	return Matchup{High: max(a, b), Low: min(a, b)}
}

// Key is the "5v3" form used in reports.
func (m Matchup) Key() string {
	return fmt.Sprintf("%dv%d", m.High, m.Low)
}

// ParseMatchups reads a comma separated list such as "3v1,5v1,5v3".
// Duplicates (including "1v3" after "3v1") are dropped.
func ParseMatchups(s string) ([]Matchup, error) {
	var matchups []Matchup
	seen := make(map[Matchup]bool)

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		left, right, ok := strings.Cut(strings.ToLower(part), "v")
		if !ok {
			return nil, fmt.Errorf("simulation: matchup %q: expected form AvB", part)
		}
		a, err := strconv.Atoi(strings.TrimSpace(left))
		if err != nil {
			return nil, fmt.Errorf("simulation: matchup %q: %w", part, err)
		}
		b, err := strconv.Atoi(strings.TrimSpace(right))
		if err != nil {
			return nil, fmt.Errorf("simulation: matchup %q: %w", part, err)
		}
		if a < 1 || b < 1 {
			return nil, fmt.Errorf("simulation: matchup %q: depths must be at least 1", part)
		}

		m := NewMatchup(a, b)
		if seen[m] {
			continue
		}
		seen[m] = true
		matchups = append(matchups, m)
	}

	if len(matchups) == 0 {
		return nil, fmt.Errorf("simulation: no matchups in %q", s)
	}
	return matchups, nil
}
