package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	var gotAccept, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"title":"The Matrix","year":"1999"}`)
	}))
	defer server.Close()

	client := New(Options{UserAgent: "calliope-test/1.0"})

	var payload struct {
		Title string `json:"title"`
		Year  string `json:"year"`
	}
	err := client.GetJSON(context.Background(), server.URL, nil, &payload)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", payload.Title)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "calliope-test/1.0", gotUA)
}

func TestGetSetsExtraHeaders(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := New(Options{})
	_, err := client.Get(context.Background(), server.URL, map[string]string{
		"Authorization": "Bearer test-token",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestGetNon2xxReturnsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	client := New(Options{})
	_, err := client.Get(context.Background(), server.URL, nil)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "nope")
}

func TestGetBoundedRedirects(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Redirect forever; the client must give up after its redirect cap.
		http.Redirect(w, r, server.URL, http.StatusFound)
	}))
	defer server.Close()

	client := New(Options{})
	_, err := client.Get(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirects")
}

func TestGetRespectsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	client := New(Options{})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, server.URL, nil)
	require.Error(t, err)
}

func TestGetJSONInvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>not json</html>`)
	}))
	defer server.Close()

	client := New(Options{})
	var target map[string]any
	err := client.GetJSON(context.Background(), server.URL, nil, &target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
