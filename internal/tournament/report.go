// apps/solver/internal/tournament/report.go
//
// Plain-text rendering of tournament results: the fixed-width summary
// table, the champion call-out and the guess distributions.

package tournament

import (
	"fmt"
	"io"
	"strings"
)

const reportWidth = 91

// WriteReport renders the final results table to w. The champion's
// guess distribution is always shown; in a head-to-head of exactly two
// strategies the runner-up's follows for comparison.
func WriteReport(w io.Writer, results []Stats) {
	rule := strings.Repeat("=", reportWidth)

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "%31sFINAL TOURNAMENT RESULTS\n", "")
	fmt.Fprintf(w, "%s\n", rule)
	fmt.Fprintf(w, "| %-30s | %-5s | %-6s | %-10s | %-11s | %-8s |\n",
		"STRATEGY", "WINS", "LOSSES", "WIN %", "AVG GUESSES", "TIME (s)")
	fmt.Fprintf(w, "|%s|%s|%s|%s|%s|%s|\n",
		strings.Repeat("-", 32), strings.Repeat("-", 7), strings.Repeat("-", 8),
		strings.Repeat("-", 12), strings.Repeat("-", 13), strings.Repeat("-", 10))

	for i := range results {
		fmt.Fprintf(w, "| %-30s | %-5d | %-6d | %9.2f%% | %11.4f | %8.0f |\n",
			results[i].Strategy,
			results[i].Wins,
			results[i].Losses,
			results[i].WinPercent,
			results[i].AverageGuesses,
			results[i].Elapsed.Seconds())
	}
	fmt.Fprintf(w, "%s\n", rule)

	best := Champion(results)
	if best < 0 {
		return
	}
	fmt.Fprintf(w, "\n*** TOURNAMENT CHAMPION: %s ***\n", results[best].Strategy)

	fmt.Fprintf(w, "\n--- Detailed Distribution for Champion ---\n")
	writeDistribution(w, &results[best])

	if len(results) == 2 {
		runnerUp := 1 - best
		writeDistribution(w, &results[runnerUp])
	}
}

// writeDistribution prints the per-guess-count histogram of one
// strategy's wins.
func writeDistribution(w io.Writer, s *Stats) {
	fmt.Fprintf(w, "  %s Distribution:\n", s.Strategy)
	if s.Wins == 0 {
		fmt.Fprintf(w, "    N/A (0 wins)\n")
		return
	}
	for i := 1; i < len(s.Distribution); i++ {
		if s.Distribution[i] == 0 {
			continue
		}
		pct := 100.0 * float64(s.Distribution[i]) / float64(s.Wins)
		unit := "es"
		if i == 1 {
			unit = "  "
		}
		fmt.Fprintf(w, "    %d guess%s | %4d (%5.2f%%)\n", i, unit, s.Distribution[i], pct)
	}
	fmt.Fprintln(w)
}
