// apps/solver/cmd_simulate.go
//
// Tournament runner: every selected strategy plays every lexicon word
// as the hidden answer, then the standings and champion are printed.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/tournament"
)

var (
	simStrategies []int
	simHard       bool
	simWorkers    int
	simList       bool
)

func newSimulateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a strategy tournament over every word",
		Long: `Plays every lexicon word as the hidden answer for each selected
strategy and prints the final standings. Strategy numbers index the
built-in roster; print it with --list.`,
		Args: cobra.NoArgs,
		RunE: runSimulate,
	}

	cmd.Flags().IntSliceVar(&simStrategies, "strategies", nil, "Roster indices to enter (default 0,9,5,2)")
	cmd.Flags().BoolVar(&simHard, "hard", false, "Hard mode: guesses must stay inside the live answer pool")
	cmd.Flags().IntVar(&simWorkers, "workers", 0, "Worker goroutines (0 = all CPUs)")
	cmd.Flags().BoolVar(&simList, "list", false, "List the strategy roster and exit")

	return cmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	roster := solver.Roster()

	if simList {
		for i, s := range roster {
			fmt.Fprintf(out, "%2d  %s\n", i, s.Name)
		}
		return nil
	}

	var strats []solver.Strategy
	if len(simStrategies) == 0 {
		strats = tournament.DefaultRoster()
	} else {
		for _, i := range simStrategies {
			if i < 0 || i >= len(roster) {
				return fmt.Errorf("strategy index %d out of range (0-%d)", i, len(roster)-1)
			}
			strats = append(strats, roster[i])
		}
	}

	lex, err := loadLexicon(cmd.Context())
	if err != nil {
		return err
	}

	runner := &tournament.Runner{Lexicon: lex, Hard: simHard, Workers: simWorkers}
	results, err := runner.Run(cmd.Context(), strats)
	if err != nil {
		return err
	}
	tournament.WriteReport(out, results)
	return nil
}
