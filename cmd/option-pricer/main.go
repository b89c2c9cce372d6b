package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/contactkeval/option-pricer/internal/handlers"
	"github.com/contactkeval/option-pricer/internal/input"
	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
	"github.com/contactkeval/option-pricer/internal/report"
)

func main() {
	scenarioPath := flag.String("scenario", "", "path to YAML scenario with the five parameters (skips the prompt)")
	rest := flag.Bool("rest", false, "run as REST server")
	port := flag.String("port", ":8080", "REST server listen address")
	outDir := flag.String("out", "", "directory to write quote.json and quote.csv")
	verbosity := flag.Int("v", 1, "verbosity: 0=errors,1=info,2=debug,3=trace")
	flag.Parse()

	logger.SetVerbosity(*verbosity)

	if *rest {
		logger.Infof("starting REST server on %s", *port)
		if err := http.ListenAndServe(*port, handlers.NewRouter()); err != nil {
			logger.Errorf("server: %v", err)
			os.Exit(1)
		}
		return
	}

	params, err := gatherParams(*scenarioPath)
	if err != nil {
		logger.Errorf("reading parameters: %v", err)
		os.Exit(1)
	}

	start := time.Now()
	res, err := pricing.Price(params)
	if err != nil {
		// validation failure: surface the parameter and constraint, no price
		var ipe *pricing.InvalidParameterError
		if errors.As(err, &ipe) {
			fmt.Fprintf(os.Stderr, "cannot price: %v\n", ipe)
			os.Exit(1)
		}
		logger.Errorf("pricing: %v", err)
		os.Exit(1)
	}

	quote := report.Quote{Params: params, Result: res}
	fmt.Print(report.Render(quote))

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0755); err != nil {
			logger.Errorf("could not create output dir %s: %v", *outDir, err)
			os.Exit(1)
		}
		if err := report.WriteJSON(quote, *outDir); err != nil {
			logger.Errorf("writing quote.json: %v", err)
		}
		if err := report.WriteCSV(quote, *outDir); err != nil {
			logger.Errorf("writing quote.csv: %v", err)
		}
		logger.Infof("wrote quote files to %s", *outDir)
	}
	logger.Debugf("finished in %v", time.Since(start))
}

func gatherParams(scenarioPath string) (pricing.Parameters, error) {
	if scenarioPath != "" {
		logger.Infof("pricing scenario %s", scenarioPath)
		return input.LoadScenario(scenarioPath)
	}
	fmt.Println()
	fmt.Println("--- Black-Scholes-Merton European Option Pricer ---")
	fmt.Println("Please enter the required parameters.")
	return input.NewReader(os.Stdin, os.Stdout).Prompt()
}
