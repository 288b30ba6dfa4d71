package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/contactkeval/option-pricer/internal/cli"
	"github.com/contactkeval/option-pricer/internal/config"
	"github.com/contactkeval/option-pricer/internal/data"
	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
	"github.com/contactkeval/option-pricer/internal/report"
	"github.com/contactkeval/option-pricer/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	verbosity := flag.Int("v", int(logger.Info), "log verbosity (0=error 1=info 2=debug 3=trace)")
	rest := flag.Bool("rest", false, "run as REST server")
	port := flag.String("port", "", "REST server listen address (overrides config)")
	symbol := flag.String("symbol", "", "resolve spot price for this ticker from the data provider")
	ladder := flag.Int("ladder", 0, "also price a strike ladder of this half-width")
	step := flag.Float64("step", 5, "ladder strike spacing")
	reportDir := flag.String("report", "", "directory for ladder report files")
	flag.Parse()

	logger.SetVerbosity(*verbosity)
	config.LoadEnv()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// Positional contract: <S> <K> <r> <sigma> <T>, each optional, each
	// falling back to its configured default when absent or unparseable.
	params := cli.ParseParams(flag.Args(), cfg.Defaults.Params())

	if *symbol != "" {
		prov, err := data.NewProvider(cfg.Data.Provider, cfg.Data.APIKey)
		if err != nil {
			log.Fatalf("data provider: %v", err)
		}
		spot, err := prov.GetSpot(*symbol)
		if err != nil {
			log.Fatalf("resolving spot for %s: %v", *symbol, err)
		}
		logger.Infof("spot for %s: %.4f", *symbol, spot)
		params.S = spot
	}

	if *rest {
		addr := cfg.Server.Port
		if *port != "" {
			addr = *port
		}
		logger.Infof("starting REST server on %s", addr)
		log.Fatal(http.ListenAndServe(addr, server.New(params).Router()))
		return
	}

	quote := pricing.Evaluate(params)
	fmt.Printf("Call Price: %.4f\n", quote.CallPrice)
	fmt.Printf("Put Price: %.4f\n", quote.PutPrice)
	fmt.Printf("Call Delta: %.4f\n", quote.CallDelta)
	fmt.Printf("Put Delta: %.4f\n", quote.PutDelta)

	if *ladder > 0 && *reportDir != "" {
		if err := params.Validate(); err != nil {
			log.Fatalf("ladder report: %v", err)
		}
		quotes := pricing.Ladder(params, *ladder, *step)
		if err := os.MkdirAll(*reportDir, 0755); err != nil {
			log.Fatalf("creating report dir %s: %v", *reportDir, err)
		}
		if err := report.WriteJSON(quotes, *reportDir); err != nil {
			log.Fatalf("writing JSON report: %v", err)
		}
		if err := report.WriteCSV(quotes, *reportDir); err != nil {
			log.Fatalf("writing CSV report: %v", err)
		}
		logger.Infof("wrote %d quotes to %s", len(quotes), *reportDir)
	}
}
