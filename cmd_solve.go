// apps/solver/cmd_solve.go
//
// Interactive solving assistant: prints the per-turn analysis, reads
// real-world feedback, feeds it back into the engine.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

var (
	solveHard     bool
	solveStrategy int
	solveTop      int
)

func newSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Interactive solving assistant",
		Long: `Suggests guesses turn by turn and folds your real-world results back in.

Each turn enter your guess and the five-letter result pattern
(B=gray, Y=yellow, G=green) on one line:

    crane bgybb

Enter ! as the pattern when the guess was the answer, or q to quit.`,
		Args: cobra.NoArgs,
		RunE: runSolve,
	}

	cmd.Flags().BoolVar(&solveHard, "hard", false, "Hard mode: suggestions must fit all known clues")
	cmd.Flags().IntVar(&solveStrategy, "strategy", 0, "Roster index of the strategy driving suggestions")
	cmd.Flags().IntVar(&solveTop, "top", 10, "Rows in the per-turn comparison table")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	roster := solver.Roster()
	if solveStrategy < 0 || solveStrategy >= len(roster) {
		return fmt.Errorf("strategy index %d out of range (0-%d)", solveStrategy, len(roster)-1)
	}
	lex, err := loadLexicon(cmd.Context())
	if err != nil {
		return err
	}

	strat := roster[solveStrategy]
	g := solver.NewGame(lex, strat, solveHard)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Interactive mode strategy: %s\n", strat.Name)
	if solveHard {
		fmt.Fprintln(out, "Hard mode: suggestions stay inside the live answer pool.")
	}

	sc := bufio.NewScanner(cmd.InOrStdin())
	for !g.Over() {
		printTurn(out, g, solveTop)
		fmt.Fprintf(out, "\n--- Turn %d of %d ---\n", g.Turn(), solver.MaxGuesses)

		guess, pattern, ok := readTurn(out, sc)
		if !ok {
			fmt.Fprintln(out, "Exiting game loop.")
			return nil
		}
		if guess == "" {
			continue // invalid input, same turn again
		}

		if err := g.ApplyFeedback(guess, pattern); err != nil {
			switch err {
			case solver.ErrExhausted:
				fmt.Fprintln(out, "CRITICAL: no words remaining. Check the entered patterns.")
				return nil
			default:
				fmt.Fprintf(out, "%v. Try again!\n", err)
				continue
			}
		}
		if g.Solved() {
			fmt.Fprintf(out, "\n*** CONGRATULATIONS! Solved in %d guesses! ***\n", len(g.History))
			return nil
		}
		fmt.Fprintf(out, "Remaining valid words: %d\n", g.ValidCount())
	}

	fmt.Fprintln(out, "Out of guesses.")
	return nil
}

// readTurn reads one "guess pattern" line. Returns ok=false on quit or
// EOF; an empty guess with ok=true means invalid input (retry).
func readTurn(out io.Writer, sc *bufio.Scanner) (string, game.Pattern, bool) {
	fmt.Fprint(out, "guess pattern> ")
	if !sc.Scan() {
		return "", 0, false
	}
	line := strings.TrimSpace(sc.Text())
	if strings.EqualFold(line, "q") {
		return "", 0, false
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		fmt.Fprintln(out, "Enter a 5-letter guess and its result pattern, e.g. 'crane bgybb'. Try again!")
		return "", 0, true
	}
	guess, err := words.NormalizeWord(fields[0])
	if err != nil {
		fmt.Fprintf(out, "%v. Try again!\n", err)
		return "", 0, true
	}
	if fields[1] == "!" {
		return guess, game.AllGreen, true
	}
	p, err := game.ParsePattern(fields[1])
	if err != nil {
		fmt.Fprintf(out, "%v. Try again!\n", err)
		return "", 0, true
	}
	return guess, p, true
}

// printTurn renders the comparison table, the recommendation box and
// the engine's pick for the current position.
func printTurn(w io.Writer, g *solver.Game, topN int) {
	byEntropy, byRank := g.TopCandidates(topN)
	printComparison(w, byEntropy, byRank)
	if recs, ok := g.Recommendations(); ok {
		printRecommendations(w, recs)
	}
	if pick := g.Suggest(); pick != nil {
		fmt.Fprintf(w, ">>> CHAMPION PICK: %s (R=%03d, H=%.4f) <<<\n", pick.Word, pick.Rank, pick.Entropy)
	}
	fmt.Fprintf(w, "Valid answers remaining: %d\n", g.ValidCount())
}

// printComparison shows the entropy and rank orderings side by side, so
// the trade-off between best-math and most-common words stays visible.
func printComparison(w io.Writer, byEntropy, byRank []*words.Entry) {
	rule := strings.Repeat("-", 85)
	fmt.Fprintf(w, "\n%17s## Top %d Entries Comparison ##\n", "", len(byEntropy))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "|%s| |%s|\n", centerText("ENTROPY SORTED", 40), centerText("RANK SORTED", 40))
	fmt.Fprintln(w, rule)
	header := fmt.Sprintf("| %2s | %-5s | %7s | %3s | %s | %s | %s |", "#", "WORD", "ENTROPY", "RNK", "N", "V", "D")
	fmt.Fprintf(w, "%s %s\n", header, header)
	fmt.Fprintln(w, rule)
	for i := range byEntropy {
		fmt.Fprintf(w, "%s %s\n", compareCell(i, byEntropy[i]), compareCell(i, byRank[i]))
	}
	fmt.Fprintln(w, rule)
}

// compareCell formats one fixed-width table cell.
func compareCell(i int, e *words.Entry) string {
	dup := "N"
	if e.HasDuplicates {
		dup = "Y"
	}
	return fmt.Sprintf("| %2d | %-5s | %7.4f | %3d | %c | %c | %s |", i+1, e.Word, e.Entropy, e.Rank, e.Noun, e.Verb, dup)
}

// printRecommendations renders the four recommendation categories.
func printRecommendations(w io.Writer, recs [solver.RecommendationCount]solver.Recommendation) {
	rule := strings.Repeat("-", 60)
	fmt.Fprintln(w, rule)
	for _, i := range []int{solver.BaseEntropyRaw, solver.BaseEntropyFiltered, solver.BaseRankRaw, solver.BaseRankFiltered} {
		r := recs[i]
		fmt.Fprintf(w, "| %-23s %-5s  E:%7.4f  R:%03d%10s|\n", r.Label+":", r.Entry.Word, r.Entry.Entropy, r.Entry.Rank, "")
	}
	fmt.Fprintln(w, rule)
}

// centerText pads s to width with spaces on both sides.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
