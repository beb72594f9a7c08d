// apps/solver/main.go
//
// Entry point: env bootstrap, log level, command dispatch.

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(envStr("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := execute(); err != nil {
		log.Fatal().Err(err).Msg("solver exited")
	}
}

// envStr returns the value of k or def if unset/empty.
func envStr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
