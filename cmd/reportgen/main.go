package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"marketpulse/internal/config"
	"marketpulse/internal/infrastructure"
	"marketpulse/internal/loader"
	"marketpulse/internal/pipeline"
	"marketpulse/internal/schema"
)

func main() {
	amazonSales := flag.String("amazon-sales", "", "path to the Amazon sales export (xlsx or csv)")
	tiktokSales := flag.String("tiktok-sales", "", "path to the TikTok Shop sales export (xlsx or csv)")
	tiktokComments := flag.String("tiktok-comments", "", "path to the TikTok comments export (xlsx or csv)")
	redditComments := flag.String("reddit-comments", "", "path to the Reddit comments export (xlsx or csv)")
	amazonReviews := flag.String("amazon-reviews", "", "path to the Amazon reviews export (xlsx or csv)")
	tiktokReviews := flag.String("tiktok-reviews", "", "path to the TikTok Shop reviews export (xlsx or csv)")
	configFile := flag.String("config", "", "path to a yaml config file (optional)")
	outPath := flag.String("out", "", "output path for the JSON report (defaults to stdout)")
	flag.Parse()

	// .env is optional, ignore a missing file
	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.InitializeLogger(cfg.Logging)

	inputs, err := loadInputs(*amazonSales, *tiktokSales, *tiktokComments,
		*redditComments, *amazonReviews, *tiktokReviews)
	if err != nil {
		logger.Error("Failed to load input tables", "error", err)
		os.Exit(1)
	}
	if inputs.Empty() {
		fmt.Fprintln(os.Stderr, "no input files supplied, see -h for the available flags")
		os.Exit(1)
	}

	report, err := pipeline.New(*cfg, logger).Run(context.Background(), inputs)
	if err != nil {
		logger.Error("Pipeline run failed", "error", err)
		os.Exit(1)
	}

	if err := writeReport(report, *outPath); err != nil {
		logger.Error("Failed to write report", "error", err)
		os.Exit(1)
	}

	logger.Info("Report generated",
		slog.String("report_id", report.ReportID),
		slog.String("output", outputName(*outPath)))
}

// loadInputs reads every supplied input file. A blank path means the
// feed was not provided and stays nil.
func loadInputs(amazonSales, tiktokSales, tiktokComments, redditComments, amazonReviews, tiktokReviews string) (pipeline.Inputs, error) {
	var in pipeline.Inputs

	feeds := []struct {
		path  string
		name  string
		table **schema.RawTable
	}{
		{amazonSales, "amazon_sales", &in.AmazonSales},
		{tiktokSales, "tiktok_sales", &in.TikTokSales},
		{tiktokComments, "tiktok_comments", &in.TikTokComments},
		{redditComments, "reddit_comments", &in.RedditComments},
		{amazonReviews, "amazon_reviews", &in.AmazonReviews},
		{tiktokReviews, "tiktok_reviews", &in.TikTokReviews},
	}

	for _, feed := range feeds {
		if feed.path == "" {
			continue
		}
		table, err := loader.Read(feed.path, feed.name)
		if err != nil {
			return in, fmt.Errorf("load %s: %w", feed.name, err)
		}
		*feed.table = table
	}

	return in, nil
}

func writeReport(report *pipeline.Report, outPath string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if outPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}

func outputName(outPath string) string {
	if outPath == "" {
		return "stdout"
	}
	return outPath
}
