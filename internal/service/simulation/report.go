package simulation

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

// SortResults orders results by higher depth, then lower depth, both
// descending.
func SortResults(results []MatchupResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].High != results[j].High {
			return results[i].High > results[j].High
		}
		return results[i].Low > results[j].Low
	})
}

// WriteTable renders the suite as an aligned text table.
func WriteTable(w io.Writer, suite SuiteResult) error {
	fmt.Fprintf(w, "AI vs AI Simulation Results (%d games per matchup)\n\n", suite.GamesPerMatchup)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Matchup\tHigher Depth Wins %\tLower Depth Wins %\tDraw %\tDuration (s)\tErrors\t")
	for _, r := range suite.Results {
		fmt.Fprintf(tw, "%s\t%.1f%%\t%.1f%%\t%.1f%%\t%.2f\t%d\t\n",
			r.Key, r.HighWinRate, r.LowWinRate, r.DrawRate, r.DurationSeconds, r.Errors)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(suite.Ratings) > 0 {
		depths := make([]int, 0, len(suite.Ratings))
		for d := range suite.Ratings {
			depths = append(depths, d)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(depths)))

		fmt.Fprintln(w, "\nEstimated Elo")
		for _, d := range depths {
			fmt.Fprintf(w, "  depth %d: %d\n", d, suite.Ratings[d])
		}
	}

	_, err := fmt.Fprintf(w, "\nTotal duration: %.2fs\n", suite.DurationSeconds)
	return err
}

// WriteJSON encodes the suite with indentation.
func WriteJSON(w io.Writer, suite SuiteResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(suite)
}
