package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/arah-infotech/sitebot/internal/core/ports/driven"
	"github.com/arah-infotech/sitebot/internal/logger"
)

// KnowledgeState owns the website knowledge corpus and its readiness flag.
// The corpus is a single text blob, written wholesale by Populate and read
// by the chat responder. Population normally happens once in a background
// goroutine while the HTTP server is already accepting traffic, so access
// is guarded by a RWMutex even though steady state is read-only.
//
// Readiness is set exactly once, after the first population attempt that
// yields a non-empty corpus, and is never reset except by process restart.
type KnowledgeState struct {
	source driven.KnowledgeSource

	mu     sync.RWMutex
	corpus string
	ready  bool

	doneOnce sync.Once
	done     chan struct{}
}

// NewKnowledgeState creates a knowledge state backed by the given source.
func NewKnowledgeState(source driven.KnowledgeSource) *KnowledgeState {
	return &KnowledgeState{
		source: source,
		done:   make(chan struct{}),
	}
}

// Populate runs the source and replaces the corpus with its output.
// Idempotent in effect, not in cost: calling it again repeats the full
// fetch. An empty result leaves the state not ready; the error, if any, is
// returned for logging but the state itself stays usable.
func (s *KnowledgeState) Populate(ctx context.Context) error {
	defer s.doneOnce.Do(func() { close(s.done) })

	logger.Section("Knowledge Population")
	logger.Info("Populating corpus from %s source", s.source.Name())

	corpus, err := s.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("populate knowledge from %s: %w", s.source.Name(), err)
	}

	corpus = strings.TrimSpace(corpus)

	s.mu.Lock()
	s.corpus = corpus
	if corpus != "" {
		s.ready = true
	}
	s.mu.Unlock()

	if corpus == "" {
		logger.Warn("Knowledge source %q produced an empty corpus; assistant stays in not-ready state", s.source.Name())
		return nil
	}

	logger.Info("Corpus ready: %d characters", len(corpus))
	return nil
}

// Snapshot returns the current corpus. Empty string is a valid state
// meaning "not ready"; callers must not treat it as an error.
func (s *KnowledgeState) Snapshot() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.corpus
}

// Ready reports whether a population attempt has produced a usable corpus.
func (s *KnowledgeState) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Done returns a channel closed after the first population attempt
// finishes, successfully or not. Callers that prefer to delay serving until
// knowledge is settled can select on it with a timeout.
func (s *KnowledgeState) Done() <-chan struct{} {
	return s.done
}
