// Package pipeline wires the normalizers and the statistics engines
// into a single run that turns raw input tables into a report.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"marketpulse/internal/config"
	"marketpulse/internal/marketstats"
	"marketpulse/internal/normalize"
	"marketpulse/internal/schema"
	"marketpulse/internal/vocstats"
	"marketpulse/pkg/contracts/domain"
)

// Inputs holds the raw tables for one run. Every feed is optional; a
// nil table means the feed was not supplied and is skipped.
type Inputs struct {
	AmazonSales    *schema.RawTable
	TikTokSales    *schema.RawTable
	TikTokComments *schema.RawTable
	RedditComments *schema.RawTable
	AmazonReviews  *schema.RawTable
	TikTokReviews  *schema.RawTable
}

// Empty reports whether no feed was supplied at all.
func (in Inputs) Empty() bool {
	return in.AmazonSales == nil && in.TikTokSales == nil &&
		in.TikTokComments == nil && in.RedditComments == nil &&
		in.AmazonReviews == nil && in.TikTokReviews == nil
}

// Report is the output envelope written to the caller.
type Report struct {
	ReportID    string              `json:"report_id"`
	GeneratedAt time.Time           `json:"generated_at"`
	MarketStats *marketstats.Report `json:"market_stats"`
	VOCStats    *vocstats.Report    `json:"voc_stats"`
}

// Pipeline orchestrates normalization and statistics for one run.
type Pipeline struct {
	cfg    config.Config
	logger *slog.Logger

	now   func() time.Time
	newID func() string
}

// New creates a pipeline. A nil logger falls back to slog.Default.
func New(cfg config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// platformResult collects the normalized records of one marketplace.
type platformResult struct {
	sales   []domain.SalesRecord
	reviews []domain.ReviewRecord
}

// Run normalizes every supplied feed and computes both statistics
// reports. Any normalization error fails the whole run; no partial
// report is produced.
func (p *Pipeline) Run(ctx context.Context, in Inputs) (*Report, error) {
	if in.Empty() {
		return nil, fmt.Errorf("no input tables supplied")
	}

	var (
		amazon   platformResult
		tiktok   platformResult
		comments []domain.CommentRecord
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := p.normalizePlatform(ctx, in.AmazonSales, in.AmazonReviews,
			normalize.NewAmazonSales(p.logger), normalize.NewAmazonReviews(p.logger))
		if err != nil {
			return err
		}
		amazon = res
		return nil
	})

	g.Go(func() error {
		res, err := p.normalizePlatform(ctx, in.TikTokSales, in.TikTokReviews,
			normalize.NewTikTokSales(p.logger), normalize.NewTikTokReviews(p.logger))
		if err != nil {
			return err
		}
		tiktok = res
		return nil
	})

	g.Go(func() error {
		recs, err := p.normalizeComments(ctx, in.TikTokComments, in.RedditComments)
		if err != nil {
			return err
		}
		comments = recs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sales := map[domain.Platform][]domain.SalesRecord{}
	if len(amazon.sales) > 0 {
		sales[domain.PlatformAmazon] = amazon.sales
	}
	if len(tiktok.sales) > 0 {
		sales[domain.PlatformTikTok] = tiktok.sales
	}
	reviews := normalize.CombineReviews(amazon.reviews, tiktok.reviews)

	marketEngine := marketstats.NewEngine(marketstats.Config{
		PriceBands:  p.cfg.Pipeline.PriceBands,
		TopFeatures: p.cfg.Pipeline.TopFeatures,
	}, p.logger)
	vocEngine := vocstats.NewEngine(p.logger)

	report := &Report{
		ReportID:    p.newID(),
		GeneratedAt: p.now().UTC(),
		MarketStats: marketEngine.Compute(sales),
		VOCStats:    vocEngine.Compute(comments, reviews),
	}

	p.logger.Info("pipeline run complete",
		slog.String("report_id", report.ReportID),
		slog.Int("sales_platforms", len(sales)),
		slog.Int("comments", len(comments)),
		slog.Int("reviews", len(reviews)))

	return report, nil
}

func (p *Pipeline) normalizePlatform(ctx context.Context, salesTable, reviewsTable *schema.RawTable,
	salesNorm *normalize.SalesNormalizer, reviewsNorm *normalize.ReviewsNormalizer) (platformResult, error) {

	var res platformResult

	if salesTable != nil {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		out, err := salesNorm.Normalize(salesTable)
		if err != nil {
			return res, fmt.Errorf("normalize %s: %w", salesTable.Name, err)
		}
		res.sales = out.Records
	}

	if reviewsTable != nil {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		out, err := reviewsNorm.Normalize(reviewsTable)
		if err != nil {
			return res, fmt.Errorf("normalize %s: %w", reviewsTable.Name, err)
		}
		res.reviews = out.Records
	}

	return res, nil
}

func (p *Pipeline) normalizeComments(ctx context.Context, tiktokTable, redditTable *schema.RawTable) ([]domain.CommentRecord, error) {
	var records []domain.CommentRecord

	if tiktokTable != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := normalize.NewTikTokComments(p.logger).Normalize(tiktokTable)
		if err != nil {
			return nil, fmt.Errorf("normalize %s: %w", tiktokTable.Name, err)
		}
		records = append(records, out.Records...)
	}

	if redditTable != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := normalize.NewRedditComments(p.logger).Normalize(redditTable)
		if err != nil {
			return nil, fmt.Errorf("normalize %s: %w", redditTable.Name, err)
		}
		records = append(records, out.Records...)
	}

	return records, nil
}
