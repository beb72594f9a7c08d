// apps/solver/cmd_history.go
//
// Fetch (or reuse today's cached copy of) the past-answers archive.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyRefresh bool

func newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Fetch and cache the list of past answers",
		Long: `Downloads the published archive of past answers, stores today's
snapshot in the local day cache, and prints a summary. Same-day reruns
serve from the cache unless --refresh is given.`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}

	cmd.Flags().BoolVar(&historyRefresh, "refresh", false, "Bypass the day cache and refetch")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	used, err := usedAnswers(cmd.Context(), historyRefresh)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d past answers on record\n", len(used))
	const sample = 10
	for i := 0; i < len(used) && i < sample; i++ {
		fmt.Fprintln(out, used[i])
	}
	if len(used) > sample {
		fmt.Fprintf(out, "... and %d more\n", len(used)-sample)
	}
	return nil
}
