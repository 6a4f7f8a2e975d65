package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/calliope/internal/metadata"
	"github.com/lepinkainen/calliope/internal/provider"
	"github.com/lepinkainen/calliope/internal/resolve"
)

// stubProvider returns a fixed item for every lookup variant.
type stubProvider struct {
	name      string
	mediaType metadata.MediaType
	item      *metadata.Item
	enabled   bool
}

var _ provider.Provider = (*stubProvider)(nil)

func (s *stubProvider) Name() string                  { return s.name }
func (s *stubProvider) MediaType() metadata.MediaType { return s.mediaType }
func (s *stubProvider) Enabled() bool                 { return s.enabled }

func (s *stubProvider) LookupByCode(context.Context, string) (*metadata.Item, error) {
	return s.item, nil
}

func (s *stubProvider) LookupByID(context.Context, string) (*metadata.Item, error) {
	return s.item, nil
}

func (s *stubProvider) Search(context.Context, string) (*metadata.Item, error) {
	return s.item, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	movie := &stubProvider{name: "omdb", mediaType: metadata.MediaMovie, enabled: true}
	book := &stubProvider{
		name:      "googlebooks",
		mediaType: metadata.MediaBook,
		enabled:   true,
		item: &metadata.Item{
			MediaType: metadata.MediaBook,
			Source:    "googlebooks",
			Title:     "Effective Java",
			Year:      2018,
			Creator:   "Joshua Bloch",
		},
	}
	music := &stubProvider{name: "discogs", mediaType: metadata.MediaMusic}
	comic := &stubProvider{name: "comicvine", mediaType: metadata.MediaComic}

	resolver := resolve.New(movie, book, music, comic, time.Second)
	return New(NewHandler(resolver), ":0", false)
}

func doGet(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status    string   `json:"status"`
		Providers []string `json:"providers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, []string{"omdb", "googlebooks"}, body.Providers)
}

func TestLookupISBN(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/lookup?id=9780134190440")

	require.Equal(t, http.StatusOK, rec.Code)

	var agg resolve.Aggregate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &agg))
	assert.Equal(t, "9780134190440", agg.Identifier)
	assert.EqualValues(t, "isbn", agg.IdentifierType)
	require.Len(t, agg.Results, 1)
	require.NotNil(t, agg.BestMatch)
	assert.Equal(t, "Effective Java", agg.BestMatch.Title)
}

func TestLookupMissingID(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/lookup")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing required parameter: id")
}

func TestLookupInvalidHint(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/lookup?id=foo&type=vinyl")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid media type")
}

func TestSearch(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/search?type=book&q=effective+java")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Query     string          `json:"query"`
		MediaType string          `json:"media_type"`
		Results   []metadata.Item `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "effective java", body.Query)
	assert.Equal(t, "book", body.MediaType)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "Effective Java", body.Results[0].Title)
}

func TestSearchNoMatchIsEmptyList(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/search?type=music&q=nothing")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"results":[]`)
}

func TestSearchMissingParams(t *testing.T) {
	for _, path := range []string{
		"/api/search?type=book",
		"/api/search?q=foo&type=vinyl",
	} {
		rec := doGet(t, newTestServer(t), path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestBarcode(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/barcode/9780134190440")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Barcode string            `json:"barcode"`
		Data    resolve.Aggregate `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "9780134190440", body.Barcode)
	require.NotNil(t, body.Data.BestMatch)
	assert.Equal(t, "Effective Java", body.Data.BestMatch.Title)
}

func TestUnknownRouteIs404(t *testing.T) {
	rec := doGet(t, newTestServer(t), "/api/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
