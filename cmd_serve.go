// apps/solver/cmd_serve.go
//
// HTTP API: interactive solver sessions plus JWT-gated tournament runs.

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

var serveAddr string

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: PORT env or :8090)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	lex, err := loadLexicon(cmd.Context())
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = ":" + envStr("PORT", "8090")
	}

	srv := httpserver.New(store.NewMemoryStore(), lex)
	log.Info().Str("addr", addr).Msg("starting solver api")
	return srv.Start(addr)
}
