package driven

import "context"

// KnowledgeSource produces the text corpus that grounds assistant answers.
// A source runs once per process lifetime; the corpus is never refreshed
// without a restart. That is a deliberate simplicity tradeoff: freshness is
// sacrificed for a compute-once lifecycle.
//
// Implementations:
//   - static: fixed hand-authored business description, no failure mode
//   - crawl: headless-browser scrape of a fixed URL list at startup
type KnowledgeSource interface {
	// Name identifies the strategy ("static" or "crawl").
	Name() string

	// Fetch produces the corpus. A degraded source may return an empty
	// string with a nil error; callers treat an empty corpus as "not ready".
	Fetch(ctx context.Context) (string, error)
}
