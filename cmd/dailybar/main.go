package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/navid-fn/dailybar/configs"
	"github.com/navid-fn/dailybar/internal/drivers/yahoo"
	"github.com/navid-fn/dailybar/internal/pipeline"
	"github.com/navid-fn/dailybar/internal/scraper"
	"github.com/navid-fn/dailybar/internal/transform"
	"github.com/navid-fn/dailybar/internal/writer"
)

func main() {
	cfg := configs.AppLoad()

	flag.StringVar(&cfg.Symbol, "symbol", cfg.Symbol, "Provider ticker to download")
	flag.StringVar(&cfg.Output.Path, "output", cfg.Output.Path, "CSV file to write")
	flag.IntVar(&cfg.MaxRows, "max-rows", cfg.MaxRows, "Number of most recent trading days to keep")
	flag.Parse()

	logger := scraper.NewLogger(cfg.LogLevel)

	// The data directory is created but the CSV goes to Output.Path.
	if err := os.MkdirAll(cfg.Output.DataDir, 0o755); err != nil {
		logger.Warnf("Failed to create data directory %s: %v", cfg.Output.DataDir, err)
	}

	httpConfig := scraper.DefaultHTTPConfig(cfg.Yahoo.BaseURL, cfg.Yahoo.RequestsPerSecond)
	httpConfig.RequestTimeout = time.Duration(cfg.Yahoo.RequestTimeoutSeconds) * time.Second

	fetcher := yahoo.NewYahooFetcher(httpConfig, cfg.Yahoo.AutoAdjust, cfg.MaxRows, logger)

	params := transform.Params{
		TSCode:     cfg.Fundamentals.TSCode,
		TotalShare: cfg.Fundamentals.TotalShare,
		FloatShare: cfg.Fundamentals.FloatShare,
		FreeShare:  cfg.Fundamentals.FreeShare,
		PE:         cfg.Fundamentals.PE,
		PB:         cfg.Fundamentals.PB,
		PS:         cfg.Fundamentals.PS,
	}

	p := pipeline.New(fetcher, writer.SaveCSV, pipeline.Config{
		Symbol:     cfg.Symbol,
		OutputPath: cfg.Output.Path,
		Params:     params,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result := p.Run(ctx)

	// Failures are reported, not signalled through the exit code.
	if !result.OK() {
		fmt.Printf("Error fetching data: %v\n", result.Err)
		fmt.Println("Please try again later")
		return
	}

	fmt.Printf("Successfully saved %d records to %s\n", len(result.Records), result.Path)
	fmt.Println("\nData preview:")
	if err := writer.Preview(os.Stdout, result.Records, cfg.Output.PreviewRows); err != nil {
		logger.Errorf("Failed to print preview: %v", err)
	}
}
