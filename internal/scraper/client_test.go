package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html>
<head><title>USS Example (CVN99)</title><style>body { color: red; }</style></head>
<body>
<h1>USS Example</h1>
<p>2025</p>
<p>Jan 5, moored at Naval Station Norfolk</p>
<script>var tracking = "should not appear";</script>
</body>
</html>`

func TestFetchHistoryText(t *testing.T) {
	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	client := NewClient(5*time.Second, "fleettrack-test", 0)
	text, err := client.FetchHistoryText(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "fleettrack-test", gotUserAgent)
	assert.Contains(t, text, "USS Example")
	assert.Contains(t, text, "2025\nJan 5, moored at Naval Station Norfolk")
	assert.NotContains(t, text, "should not appear")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "<p>")
}

func TestFetchHistoryText_KeepsTailWhenOverLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>old entry far in the past</p><p>newest entry</p></body></html>"))
	}))
	defer srv.Close()

	client := NewClient(5*time.Second, "fleettrack-test", 20)
	text, err := client.FetchHistoryText(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.LessOrEqual(t, len(text), 20)
	assert.Contains(t, text, "newest entry")
	assert.NotContains(t, text, "old entry")
}

func TestFetchHistoryText_TailCutRespectsRuneBoundaries(t *testing.T) {
	// Visible text is "AAAA\nééééé": 4 ASCII bytes, a newline, then five
	// 2-byte runes. A 9-byte limit puts the cut inside the first é; the
	// cut must move forward to the next rune start instead of returning
	// a string that opens with a continuation byte.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>AAAA</p><p>ééééé</p></body></html>"))
	}))
	defer srv.Close()

	client := NewClient(5*time.Second, "fleettrack-test", 9)
	text, err := client.FetchHistoryText(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.True(t, utf8.ValidString(text))
	assert.Equal(t, "éééé", text)
}

func TestFetchHistoryText_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(5*time.Second, "fleettrack-test", 0)
	_, err := client.FetchHistoryText(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchHistoryText_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(50*time.Millisecond, "fleettrack-test", 0)
	_, err := client.FetchHistoryText(context.Background(), srv.URL)

	require.Error(t, err)
}

func TestFetchHistoryText_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before the request

	client := NewClient(time.Second, "fleettrack-test", 0)
	_, err := client.FetchHistoryText(context.Background(), srv.URL)

	require.Error(t, err)
}
