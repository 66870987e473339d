package form

import (
	"context"
	"strings"
	"sync/atomic"
	"time"
)

// Inputs shorter than this never reach the store.
const MinSuggestLen = 2

// DefaultSuggestLimit caps how many suggestions one query returns.
const DefaultSuggestLimit = 5

// SuggestionSource is the store capability suggestions need.
// repository.BiltyRepository satisfies it.
type SuggestionSource interface {
	Suggest(ctx context.Context, field, prefix string, limit int) ([]string, error)
}

// Suggester serves autocomplete values for a single input. Every request takes
// the next sequence number; a response is delivered only while its request is
// still the newest, so a slow reply can never replace the suggestions for a
// later keystroke.
type Suggester struct {
	Source  SuggestionSource
	Field   string
	Limit   int
	Timeout time.Duration

	seq atomic.Uint64
}

func (s *Suggester) limit() int {
	if s.Limit > 0 {
		return s.Limit
	}
	return DefaultSuggestLimit
}

func (s *Suggester) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return DefaultLookupTimeout
}

// Fetch returns suggestions for the current input text. The bool reports
// whether the result may be shown; it is false when a newer request was issued
// while this one was in flight. Short input resolves to no suggestions without
// querying, and a store error degrades to no suggestions rather than failing.
func (s *Suggester) Fetch(ctx context.Context, partial string) ([]string, bool) {
	ticket := s.seq.Add(1)

	if len(strings.TrimSpace(partial)) < MinSuggestLen {
		return []string{}, s.seq.Load() == ticket
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()
	values, err := s.Source.Suggest(ctx, s.Field, partial, s.limit())
	if err != nil {
		values = []string{}
	}

	if s.seq.Load() != ticket {
		return nil, false
	}
	return values, true
}
