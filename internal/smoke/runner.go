package smoke

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"github.com/okian/medalboard/internal/domain/selection"
	"github.com/okian/medalboard/pkg/logger"
)

// Run executes a complete smoke run against cfg.BaseURL.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get().Named("smoke")
	client := NewClient(cfg.BaseURL, *cfg)

	log.Info(ctx, "starting medalboard smoke run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("selections", cfg.Selections),
		logger.Int("workers", cfg.Workers),
		logger.String("timeout", cfg.Timeout.String()),
		logger.Any("seed", cfg.Seed))

	if err := client.Health(ctx); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	top := cfg.Top
	if top <= 0 {
		n, err := client.TopCountries(ctx)
		if err != nil {
			return stats, fmt.Errorf("reading tally size: %w", err)
		}
		top = n
	}

	catalog, err := loadCatalog(ctx, client, max(cfg.Workers, 1))
	if err != nil {
		return stats, fmt.Errorf("loading options: %w", err)
	}

	selections := NewGenerator(catalog, cfg.Seed).Generate(cfg.Selections)
	stats.Selections = len(selections)

	verifySelections(ctx, client, cfg, selections, top, stats)

	if err := checkRejection(ctx, client); err != nil {
		stats.Violations++
		log.Error(ctx, "invalid criteria accepted", logger.Error(err))
	}
	if len(selections) > 0 {
		if err := checkDeterminism(ctx, client, selections[0]); err != nil {
			stats.Violations++
			log.Error(ctx, "selection not deterministic", logger.Error(err))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if stats.Violations > 0 || stats.Failed > 0 {
		return stats, fmt.Errorf("%w: %d violations, %d failed requests", ErrViolation, stats.Violations, stats.Failed)
	}
	return stats, nil
}

// loadCatalog reads the option lists, then the events of every sport.
func loadCatalog(ctx context.Context, client *Client, workers int) (Catalog, error) {
	opts, err := client.Options(ctx, nil)
	if err != nil {
		return Catalog{}, err
	}
	catalog := Catalog{
		Years:  opts.Years,
		Step:   opts.YearStep,
		Events: make(map[string][]string, len(opts.Sports)),
	}
	for _, s := range opts.Sports {
		if s != selection.All {
			catalog.Sports = append(catalog.Sports, s)
		}
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, sport := range catalog.Sports {
		g.Go(func() error {
			o, err := client.Options(gctx, url.Values{selection.ParamSport: {sport}})
			if err != nil {
				return fmt.Errorf("events of %s: %w", sport, err)
			}
			events := slices.DeleteFunc(o.Events, func(e string) bool { return e == selection.All })
			mu.Lock()
			catalog.Events[sport] = events
			mu.Unlock()
			return nil
		})
	}
	return catalog, g.Wait()
}

func verifySelections(ctx context.Context, client *Client, cfg *Config, selections []selection.Criteria, top int, stats *Stats) {
	log := logger.Get().Named("smoke")
	var verified, violations, failed, empty atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for i, c := range selections {
		g.Go(func() error {
			q := c.Values()
			a, err := client.Selection(gctx, q)
			if err != nil {
				failed.Add(1)
				log.Warn(gctx, "selection request failed", logger.Int("index", i), logger.Error(err))
				return nil
			}
			if a.Rows == 0 {
				empty.Add(1)
			}
			if err := Verify(a, top); err != nil {
				violations.Add(1)
				log.Error(gctx, "selection violates invariants",
					logger.String("query", q.Encode()), logger.Error(err))
				return nil
			}

			q.Set("limit", "1")
			page, err := client.Records(gctx, q)
			if err != nil {
				failed.Add(1)
				log.Warn(gctx, "records request failed", logger.Int("index", i), logger.Error(err))
				return nil
			}
			if page.Total != a.Rows {
				violations.Add(1)
				log.Error(gctx, "records total differs from selection rows",
					logger.String("query", q.Encode()),
					logger.Int("records", page.Total),
					logger.Int("rows", a.Rows))
				return nil
			}

			n := verified.Add(1)
			if cfg.Verbose {
				log.Info(gctx, "selection verified",
					logger.Int("index", i),
					logger.String("query", c.Values().Encode()),
					logger.Int("rows", a.Rows),
					logger.Int("tally", len(a.Tally)),
					logger.Int("markers", len(a.Markers)),
					logger.Any("verified", n))
			}
			return nil
		})
	}
	_ = g.Wait()

	stats.Verified = int(verified.Load())
	stats.Violations += int(violations.Load())
	stats.Failed = int(failed.Load())
	stats.EmptyResults = int(empty.Load())
}

// checkRejection makes sure unparseable criteria are refused with 400.
func checkRejection(ctx context.Context, client *Client) error {
	status, body, err := client.Status(ctx, "/api/selection", url.Values{selection.ParamGender: {"robot"}})
	if err != nil {
		return err
	}
	if status != http.StatusBadRequest {
		return fmt.Errorf("%w: gender=robot answered %d %s", ErrViolation, status, body.Code)
	}
	return nil
}

// checkDeterminism asks for the same selection twice and compares the answers.
func checkDeterminism(ctx context.Context, client *Client, c selection.Criteria) error {
	first, err := client.Selection(ctx, c.Values())
	if err != nil {
		return err
	}
	second, err := client.Selection(ctx, c.Values())
	if err != nil {
		return err
	}
	if diff := cmp.Diff(first, second); diff != "" {
		return fmt.Errorf("%w: repeated selection differs (-first +second):\n%s", ErrViolation, diff)
	}
	return nil
}

func displayFinalStats(ctx context.Context, stats *Stats) {
	var perSecond float64
	if stats.Duration > 0 {
		perSecond = float64(stats.Selections) / stats.Duration.Seconds()
	}
	logger.Get().Info(ctx, "final statistics",
		logger.Int("selections", stats.Selections),
		logger.Int("verified", stats.Verified),
		logger.Int("violations", stats.Violations),
		logger.Int("failed", stats.Failed),
		logger.Int("emptyResults", stats.EmptyResults),
		logger.Duration("duration", stats.Duration),
		logger.Float64("selectionsPerSecond", perSecond))
}
