// Command ingest submits wager text to the ledger.
//
// Usage:
//
//	ingest --customer NAME [--market T.O] [--date 2025-03-01] [--file slip.txt]
//	ingest typetables
//
// Text is read from --file, or from stdin when the flag is absent. The
// typetables subcommand seeds the SP/DP/CP lookup tables.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/SohamSachinDhore/bet-v2/internal/app"
	"github.com/SohamSachinDhore/bet-v2/internal/domain"
	"github.com/SohamSachinDhore/bet-v2/internal/lookup"
	"github.com/SohamSachinDhore/bet-v2/internal/service/intake"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "typetables" {
		runTypeTables()
		return
	}
	runSubmit()
}

func runSubmit() {
	customerFlag := flag.String("customer", "", "customer name (required)")
	marketFlag := flag.String("market", "", "market code (default: configured default market)")
	dateFlag := flag.String("date", "", "entry date YYYY-MM-DD (default: today)")
	fileFlag := flag.String("file", "", "file with wager text (default: stdin)")
	flag.Parse()

	if *customerFlag == "" {
		log.Fatal("--customer is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	a, err := app.Setup(ctx)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	defer a.Close()

	market := domain.Market(*marketFlag)
	if *marketFlag == "" {
		market = domain.Market(a.Cfg.Ingest.DefaultMarket)
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if *dateFlag != "" {
		date, err = time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			log.Fatalf("parse --date: %v", err)
		}
	}

	text, err := readText(*fileFlag)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	result, err := a.Intake.Submit(ctx, intake.SubmitInput{
		CustomerName: *customerFlag,
		Market:       market,
		EntryDate:    date,
		Text:         text,
	})
	if err != nil {
		a.Log.Error("submission failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("customer:    %s\n", result.Customer.Name)
	fmt.Printf("market:      %s  date: %s\n", market, date.Format("2006-01-02"))
	fmt.Printf("inserted:    %d records\n", result.Inserted)
	fmt.Printf("grand total: %d\n", result.GrandTotal)
	for _, lineErr := range result.LineErrors {
		fmt.Printf("line error:  %s\n", lineErr)
	}
	for _, expandErr := range result.ExpandErrors {
		fmt.Printf("skip:        %s\n", expandErr)
	}
	if !result.Clean() {
		os.Exit(1)
	}
}

func runTypeTables() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	a, err := app.Setup(ctx)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	defer a.Close()

	inserted, err := a.TypeTables.Seed(ctx, lookup.GenerateSP(), lookup.GenerateDP(), lookup.GenerateCP())
	if err != nil {
		a.Log.Error("seed type tables", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Seeded %d type table rows.\n", inserted)
}

func readText(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
