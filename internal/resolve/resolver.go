// Package resolve orchestrates a metadata lookup: classify the identifier,
// route it to the right catalog providers, fan out concurrently, and pick the
// best candidate by completeness score.
package resolve

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lepinkainen/calliope/internal/identifier"
	"github.com/lepinkainen/calliope/internal/metadata"
	"github.com/lepinkainen/calliope/internal/provider"
)

// DefaultTimeout bounds one whole fan-out. Providers still running when it
// elapses count as failed; the call returns with whatever completed.
const DefaultTimeout = 15 * time.Second

var (
	// ErrEmptyIdentifier is returned for a blank lookup identifier. This is
	// the only caller-visible failure of Lookup; provider errors never
	// propagate.
	ErrEmptyIdentifier = errors.New("identifier must not be empty")
	// ErrEmptyQuery is returned for a blank search query.
	ErrEmptyQuery = errors.New("query must not be empty")
	// ErrUnknownMediaType is returned when a search names no known provider.
	ErrUnknownMediaType = errors.New("unknown media type")
)

// Aggregate is the result of one identifier resolution. Zero candidates is a
// normal outcome: Results is empty and BestMatch nil.
type Aggregate struct {
	Identifier     string          `json:"identifier"`
	IdentifierType identifier.Kind `json:"identifier_type"`
	Results        []metadata.Item `json:"results"`
	BestMatch      *metadata.Item  `json:"best_match"`
}

// Resolver routes identifiers to providers and aggregates their candidates.
type Resolver struct {
	movie   provider.Provider
	book    provider.Provider
	music   provider.Provider
	comic   provider.Provider
	timeout time.Duration
}

// New creates a Resolver over the four catalog providers.
func New(movie, book, music, comic provider.Provider, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Resolver{
		movie:   movie,
		book:    book,
		music:   music,
		comic:   comic,
		timeout: timeout,
	}
}

// call is one planned provider invocation. The plan order fixes the candidate
// order, which in turn fixes scoring tie-breaks.
type call struct {
	name string
	run  func(ctx context.Context) (*metadata.Item, error)
}

// Lookup resolves an identifier into candidates from every routed provider.
// An optional media-type hint narrows which providers run. Provider failures
// are logged and omitted from the candidates; they never fail the call.
func (r *Resolver) Lookup(ctx context.Context, raw string, hint metadata.MediaType) (*Aggregate, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyIdentifier
	}

	kind := identifier.Classify(raw)
	code := identifier.Normalize(raw)
	calls := r.route(kind, code, hint)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// Fixed-index slots keep candidate order equal to invocation order no
	// matter which goroutine finishes first.
	slots := make([]*metadata.Item, len(calls))
	g := new(errgroup.Group)
	g.SetLimit(maxConcurrency(len(calls)))
	for i, c := range calls {
		g.Go(func() error {
			item, err := c.run(ctx)
			if err != nil {
				slog.Warn("Provider lookup failed", "provider", c.name, "identifier", code, "error", err)
				return nil
			}
			slots[i] = item
			return nil
		})
	}
	_ = g.Wait()

	results := make([]metadata.Item, 0, len(slots))
	for _, item := range slots {
		if item != nil {
			results = append(results, *item)
		}
	}

	return &Aggregate{
		Identifier:     strings.TrimSpace(raw),
		IdentifierType: kind,
		Results:        results,
		BestMatch:      metadata.SelectBest(results),
	}, nil
}

// SearchByTitle queries exactly the one provider matching mediaType and
// returns its single normalized result, or nil when it has none. A provider
// failure also yields nil; only a blank query or unknown media type error.
func (r *Resolver) SearchByTitle(ctx context.Context, mediaType metadata.MediaType, query string) (*metadata.Item, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	p := r.byType(mediaType)
	if p == nil {
		return nil, ErrUnknownMediaType
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	item, err := p.Search(ctx, query)
	if err != nil {
		slog.Warn("Provider search failed", "provider", p.Name(), "query", query, "error", err)
		return nil, nil
	}
	return item, nil
}

// route plans the provider invocations for an identifier kind. Order matters:
// it decides scoring tie-breaks.
func (r *Resolver) route(kind identifier.Kind, code string, hint metadata.MediaType) []call {
	byID := func(p provider.Provider) call {
		return call{p.Name(), func(ctx context.Context) (*metadata.Item, error) { return p.LookupByID(ctx, code) }}
	}
	byCode := func(p provider.Provider) call {
		return call{p.Name(), func(ctx context.Context) (*metadata.Item, error) { return p.LookupByCode(ctx, code) }}
	}
	bySearch := func(p provider.Provider) call {
		return call{p.Name(), func(ctx context.Context) (*metadata.Item, error) { return p.Search(ctx, code) }}
	}

	wantType := func(p provider.Provider) bool {
		return hint == "" || hint == p.MediaType()
	}

	switch kind {
	case identifier.KindISBN:
		return []call{byCode(r.book)}
	case identifier.KindIMDB:
		return []call{byID(r.movie)}
	case identifier.KindUPC:
		var calls []call
		if wantType(r.movie) {
			calls = append(calls, byCode(r.movie))
		}
		if wantType(r.music) {
			calls = append(calls, byCode(r.music))
		}
		return calls
	case identifier.KindEAN:
		var calls []call
		for _, p := range []provider.Provider{r.movie, r.book, r.music, r.comic} {
			if wantType(p) {
				calls = append(calls, byCode(p))
			}
		}
		return calls
	default:
		var calls []call
		for _, p := range []provider.Provider{r.movie, r.book, r.music, r.comic} {
			if wantType(p) {
				calls = append(calls, bySearch(p))
			}
		}
		return calls
	}
}

func (r *Resolver) byType(mediaType metadata.MediaType) provider.Provider {
	switch mediaType {
	case metadata.MediaMovie:
		return r.movie
	case metadata.MediaBook:
		return r.book
	case metadata.MediaMusic:
		return r.music
	case metadata.MediaComic:
		return r.comic
	}
	return nil
}

// EnabledProviders lists the names of providers with usable configuration.
func (r *Resolver) EnabledProviders() []string {
	var names []string
	for _, p := range []provider.Provider{r.movie, r.book, r.music, r.comic} {
		if p.Enabled() {
			names = append(names, p.Name())
		}
	}
	return names
}

// maxConcurrency bounds the fan-out worker pool: one goroutine per invoked
// provider, never more than the four providers that exist.
func maxConcurrency(n int) int {
	if n < 1 {
		return 1
	}
	if n > 4 {
		return 4
	}
	return n
}
