package dashboard

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"weather-watchlist/internal/application/view"
	"weather-watchlist/internal/domain/gateway/api"
	"weather-watchlist/pkg/debounce"
	"weather-watchlist/pkg/generation"
	"weather-watchlist/pkg/log"
	"weather-watchlist/pkg/msg"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	defaultSearchDelay     = 300 * time.Millisecond
	defaultSearchMinLength = 3
)

// SuggesterOptions configure the search box. Zero values use a 300ms quiet period and a 3 character minimum.
type SuggesterOptions struct {
	Clock     clockwork.Clock
	Delay     time.Duration
	MinLength int
	// DropStale discards a response whose request was superseded by a later search.
	// When false the late response still replaces the list and the overwrite is logged.
	DropStale bool
}

// Suggester turns keystrokes into city suggestions. In-flight requests are never cancelled.
type Suggester struct {
	gateway     api.WatchlistGateway
	suggestions view.Suggestions
	toaster     view.Toaster
	debouncer   *debounce.Debouncer
	generations generation.Counter
	minLength   int
	dropStale   bool

	inflight sync.WaitGroup
}

func NewSuggester(gateway api.WatchlistGateway, page view.Page, opts SuggesterOptions) *Suggester {
	if opts.Delay <= 0 {
		opts.Delay = defaultSearchDelay
	}
	if opts.MinLength <= 0 {
		opts.MinLength = defaultSearchMinLength
	}

	return &Suggester{
		gateway:     gateway,
		suggestions: page.Suggestions,
		toaster:     page.Toaster,
		debouncer:   debounce.New(opts.Clock, opts.Delay),
		minLength:   opts.MinLength,
		dropStale:   opts.DropStale,
	}
}

// Input re-arms the quiet period; only the last input of a burst reaches HandleSearch.
func (s *Suggester) Input(ctx context.Context, query string) {
	s.debouncer.Arm(func() {
		s.HandleSearch(ctx, query)
	})
}

// Flush runs a pending debounced search now. It reports whether one was pending.
func (s *Suggester) Flush() bool {
	return s.debouncer.Flush()
}

// Cancel drops a pending debounced search.
func (s *Suggester) Cancel() {
	s.debouncer.Cancel()
}

// HandleSearch looks up suggestions for query. Queries shorter than the minimum hide the list
// without a network call; an empty result hides it as well.
func (s *Suggester) HandleSearch(ctx context.Context, query string) {
	s.inflight.Add(1)
	defer s.inflight.Done()

	token := s.generations.Next()
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < s.minLength {
		s.suggestions.Hide()
		return
	}

	results, err := s.gateway.Search(ctx, query)
	if err != nil {
		log.Warn("city search failed", zap.String("query", query), zap.Error(err))
		s.toaster.Toast(view.ToastError, msg.GetMessage("dashboard.toast.search-failed"))
		return
	}

	if !s.generations.IsCurrent(token) {
		if s.dropStale {
			log.Debug("dropping stale search response", zap.String("query", query))
			return
		}
		log.Debug("stale search response overwrites newer results", zap.String("query", query))
	}

	if len(results) == 0 {
		s.suggestions.Hide()
		return
	}
	s.suggestions.Show(results)
}

// Wait blocks until every running HandleSearch has returned, including one the debouncer fired.
func (s *Suggester) Wait() {
	s.debouncer.Wait()
	s.inflight.Wait()
}
