// Package crawl provides the headless-browser website knowledge source.
// It loads a fixed, ordered list of pages once at startup, extracts their
// visible text and concatenates the survivors into the corpus.
package crawl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/arah-infotech/sitebot/internal/core/domain"
	"github.com/arah-infotech/sitebot/internal/core/ports/driven"
	"github.com/arah-infotech/sitebot/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.KnowledgeSource = (*Source)(nil)

// Default crawl behaviour.
const (
	// DefaultPageTimeout bounds a single page navigation. A slow page fails
	// individually; it never aborts the rest of the run.
	DefaultPageTimeout = 30 * time.Second

	// pageRate throttles page loads to roughly one per second so the crawl
	// never hammers the site it is describing.
	pageRate = 1.0
)

// Browser navigates to pages and returns their rendered HTML.
// The chromedp adapter implements it; tests substitute a stub.
type Browser interface {
	// PageHTML loads url and returns the rendered document. The context
	// carries the per-page navigation deadline.
	PageHTML(ctx context.Context, url string) (string, error)

	// Close shuts the browser down.
	Close() error
}

// LaunchFunc starts a browser. Launch failure degrades the whole crawl to
// an empty corpus rather than an error.
type LaunchFunc func(ctx context.Context) (Browser, error)

// Source crawls a fixed URL list with a headless browser.
type Source struct {
	launch      LaunchFunc
	urls        []string
	pageTimeout time.Duration
	minText     int
	limiter     *rate.Limiter
}

// Config holds crawl source configuration.
type Config struct {
	// URLs is the ordered page list. Empty means domain.DefaultCrawlURLs.
	URLs []string

	// PageTimeout bounds a single navigation (default 30s).
	PageTimeout time.Duration

	// MinText is the minimum extracted text length for a page to count as
	// content (default domain.DefaultMinPageText). Shorter pages are
	// treated as boilerplate and contribute nothing.
	MinText int
}

// New creates a crawl source using the given browser launcher.
func New(launch LaunchFunc, cfg Config) *Source {
	urls := cfg.URLs
	if len(urls) == 0 {
		urls = domain.DefaultCrawlURLs()
	}
	timeout := cfg.PageTimeout
	if timeout <= 0 {
		timeout = DefaultPageTimeout
	}
	minText := cfg.MinText
	if minText <= 0 {
		minText = domain.DefaultMinPageText
	}
	return &Source{
		launch:      launch,
		urls:        urls,
		pageTimeout: timeout,
		minText:     minText,
		limiter:     rate.NewLimiter(rate.Limit(pageRate), 1),
	}
}

// Name identifies the strategy.
func (s *Source) Name() string {
	return "crawl"
}

// Fetch crawls every configured URL in order and concatenates the extracted
// text of each surviving page, prefixed with its source URL. Per-page
// failures are logged and skipped. If the browser itself fails to start,
// Fetch returns an empty corpus and a nil error: the assistant degrades to
// its not-ready fallback instead of crashing startup.
func (s *Source) Fetch(ctx context.Context) (string, error) {
	browser, err := s.launch(ctx)
	if err != nil {
		logger.Warn("Browser failed to launch, continuing with empty corpus: %v", err)
		return "", nil
	}
	defer browser.Close()

	var sb strings.Builder
	kept := 0
	for _, url := range s.urls {
		if err := s.limiter.Wait(ctx); err != nil {
			return strings.TrimSpace(sb.String()), fmt.Errorf("crawl cancelled: %w", err)
		}

		text, err := s.fetchPage(ctx, browser, url)
		if err != nil {
			logger.Warn("Skipping %s: %v", url, err)
			continue
		}
		if len(text) < s.minText {
			logger.Debug("Skipping %s: extracted %d chars, below threshold %d", url, len(text), s.minText)
			continue
		}

		fmt.Fprintf(&sb, "Content from %s:\n%s\n\n", url, text)
		kept++
		logger.Debug("Crawled %s: %d chars", url, len(text))
	}

	logger.Info("Crawl complete: %d/%d pages kept", kept, len(s.urls))
	return strings.TrimSpace(sb.String()), nil
}

// fetchPage loads one page under the navigation timeout and extracts its
// visible text.
func (s *Source) fetchPage(ctx context.Context, browser Browser, url string) (string, error) {
	pageCtx, cancel := context.WithTimeout(ctx, s.pageTimeout)
	defer cancel()

	page, err := browser.PageHTML(pageCtx, url)
	if err != nil {
		return "", fmt.Errorf("load page: %w", err)
	}
	return ExtractText(page), nil
}
