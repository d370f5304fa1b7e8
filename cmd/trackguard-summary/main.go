// trackguard-summary prints the guardrail auditor's operational summary
// from the configured state backend. It is an ops tool; the trust layer
// itself is consumed as a library.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/slazien/trackguard/internal/auditor"
	"github.com/slazien/trackguard/internal/setup"
	"github.com/slazien/trackguard/internal/setup/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	cfg := setup.LoadConfig()
	lg := logger.New(cfg.LogLevel)

	deps, err := setup.Wire(context.Background(), cfg, &lg)
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to wire trust layer")
	}

	printSummary(deps.Auditor)
}

func printSummary(a *auditor.Auditor) {
	out, err := json.MarshalIndent(a.Summary(), "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to marshal summary")
	}
	fmt.Fprintln(os.Stdout, string(out))
}
