// apps/solver/cmd_practice.go
//
// Daily practice run: a strategy solves a hidden word picked
// deterministically from the date, so everyone practicing on the same
// day chases the same answer.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

var (
	practiceStrategy int
	practiceHard     bool
)

func newPracticeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Watch a strategy solve today's practice word",
		Long: `Picks a practice answer by hashing DAILY_SALT with the UTC date,
so everyone gets the same word on the same day, and lets the chosen
strategy solve it with honest feedback. The answer is only revealed if
the strategy fails.`,
		Args: cobra.NoArgs,
		RunE: runPractice,
	}

	cmd.Flags().IntVar(&practiceStrategy, "strategy", 0, "Roster index of the strategy playing")
	cmd.Flags().BoolVar(&practiceHard, "hard", false, "Hard mode: guesses must stay inside the live answer pool")

	return cmd
}

func runPractice(cmd *cobra.Command, args []string) error {
	roster := solver.Roster()
	if practiceStrategy < 0 || practiceStrategy >= len(roster) {
		return fmt.Errorf("strategy index %d out of range (0-%d)", practiceStrategy, len(roster)-1)
	}
	lex, err := loadLexicon(cmd.Context())
	if err != nil {
		return err
	}

	now := time.Now()
	salt := envStr("DAILY_SALT", "local_dev_salt")
	target := lex.Entries[words.DailyIndex(now, salt, lex.Len())].Word
	strat := roster[practiceStrategy]

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Practice for %s, played by %s:\n\n", now.UTC().Format("2006-01-02"), strat.Name)

	g := solver.NewGame(lex, strat, practiceHard)
	for !g.Over() {
		pick := g.Suggest()
		if pick == nil {
			break
		}
		p := game.Score(pick.Word, target)
		fmt.Fprintf(out, "Turn %d: %s -> %s", g.Turn(), pick.Word, p)
		if err := g.ApplyFeedback(pick.Word, p); err != nil {
			fmt.Fprintln(out)
			return err
		}
		if !g.Solved() {
			fmt.Fprintf(out, "  (%d candidates left)", g.ValidCount())
		}
		fmt.Fprintln(out)
	}

	if g.Solved() {
		fmt.Fprintf(out, "\nSolved in %d guesses.\n", len(g.History))
	} else {
		fmt.Fprintf(out, "\nOut of guesses; the answer was %s.\n", target)
	}
	return nil
}
