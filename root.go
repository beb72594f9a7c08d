// apps/solver/root.go
//
// Root command plus the lexicon/history plumbing every subcommand
// shares. Flags pick the word list and whether past answers are
// filtered out; env vars cover the rest (WORDS_FILE, HISTORY_DB,
// REPLAY_WORDS, LOG_LEVEL).

package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/history"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

var version = "dev"

// Persistent flags shared by every subcommand.
var (
	wordsPath   string
	excludeUsed bool
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solver",
		Short: "Entropy-driven Wordle solver and strategy lab",
		Long: `An information-theoretic Wordle assistant.

It suggests guesses by Shannon entropy over feedback patterns, applies
linguistic and risk filters on top, and can tournament every strategy
in its roster against the full word list to find the best one.`,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&wordsPath, "words", "", "Word list path (default: WORDS_FILE env or the embedded list)")
	cmd.PersistentFlags().BoolVar(&excludeUsed, "exclude-used", false, "Drop already-used answers from the lexicon")

	cmd.AddCommand(newSolveCommand())
	cmd.AddCommand(newPracticeCommand())
	cmd.AddCommand(newSimulateCommand())
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newHistoryCommand())

	return cmd
}

func execute() error {
	return newRootCommand().Execute()
}

// loadLexicon assembles the master lexicon for a command: the word list
// from --words / WORDS_FILE / the embedded default, minus the
// used-answers list when --exclude-used is set. A failed history fetch
// degrades to the unfiltered lexicon.
func loadLexicon(ctx context.Context) (*words.Lexicon, error) {
	path := wordsPath
	if path == "" {
		path = os.Getenv("WORDS_FILE")
	}

	var exclude []string
	if excludeUsed {
		used, err := usedAnswers(ctx, false)
		if err != nil {
			log.Warn().Err(err).Msg("used-answers fetch failed; continuing unfiltered")
		} else {
			exclude = used
		}
	}
	return words.Load(path, exclude)
}

// usedAnswers wires the history service: archive fetcher, replay
// whitelist from env, SQLite day cache. A broken cache only costs the
// caching.
func usedAnswers(ctx context.Context, refresh bool) ([]string, error) {
	f := history.NewFetcher()
	if v := os.Getenv("REPLAY_WORDS"); v != "" {
		f.Replay = strings.Split(v, ",")
	}

	svc := &history.Service{Source: f}
	if cache, err := history.Open(envStr("HISTORY_DB", "./data/history.db")); err != nil {
		log.Warn().Err(err).Msg("history cache unavailable")
	} else {
		svc.Cache = cache
		defer cache.Close()
	}
	return svc.Load(ctx, time.Now(), refresh)
}
