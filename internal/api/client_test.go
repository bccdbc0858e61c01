package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":1,"email":"a@b.c","role":"learner"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, func() string { return "tok123" })
	_, err := c.Me()
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"access_token":"t","token_type":"bearer","user":{"id":1}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, func() string { return "" })
	_, err := c.Login("a@b.c", "pw")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestHTTPErrorCarriesServerDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Login("a@b.c", "bad")
	require.Error(t, err)

	httpErr, ok := err.(*HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.Equal(t, "Incorrect email or password", httpErr.Message)
}

func TestHTTPErrorWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Me()
	require.Error(t, err)

	httpErr, ok := err.(*HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, httpErr.Status)
	assert.Empty(t, httpErr.Message)
	assert.Contains(t, httpErr.Error(), "502")
}

func TestNetworkFailureIsNotHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := New(srv.URL, nil)
	_, err := c.Me()
	require.Error(t, err)
	_, ok := err.(*HTTPError)
	assert.False(t, ok)
}

func TestFeedQueryParameters(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/reels/feed", r.URL.Path)
		assert.Equal(t, "python", r.URL.Query().Get("tags"))
		assert.Equal(t, "beginner", r.URL.Query().Get("difficulty"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	reels, err := c.Feed(FeedParams{Limit: 50, Tags: "python", Difficulty: "beginner"})
	require.NoError(t, err)
	assert.Equal(t, 1, requests, "one request carrying both filters")
	assert.Empty(t, reels, "empty feed is a successful empty result, not an error")
}

func TestFeedOmitsUnsetFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		_, hasTags := q["tags"]
		_, hasDifficulty := q["difficulty"]
		assert.False(t, hasTags)
		assert.False(t, hasDifficulty)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Feed(FeedParams{Limit: 50})
	require.NoError(t, err)
}
