package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textprep/internal/domain"
)

func TestFetchSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/book.txt", r.URL.Path)
		_, _ = w.Write([]byte("Hello world."))
	}))
	defer ts.Close()

	c := NewClient(5 * time.Second)
	text, err := c.Fetch(context.Background(), ts.URL+"/book.txt")
	require.NoError(t, err)
	assert.Equal(t, "Hello world.", text)
}

func TestFetchRejectsNonTextURL(t *testing.T) {
	c := NewClient(0)
	for _, url := range []string{
		"https://example.com/book.pdf",
		"https://example.com/book",
		"https://example.com/",
	} {
		_, err := c.Fetch(context.Background(), url)
		assert.ErrorIs(t, err, domain.ErrNotTextURL, "url %s", url)
	}
}

func TestFetchAcceptsUppercaseSuffix(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer ts.Close()

	c := NewClient(time.Second)
	text, err := c.Fetch(context.Background(), ts.URL+"/BOOK.TXT")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestFetchNonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	c := NewClient(time.Second)
	_, err := c.Fetch(context.Background(), ts.URL+"/missing.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchConnectionError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse connections

	c := NewClient(time.Second)
	_, err := c.Fetch(context.Background(), ts.URL+"/book.txt")
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}
