package jd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_HTMLPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><style>body{color:red}</style></head>
			<body><nav>Menu</nav><h1>Backend   Engineer</h1><p>Build Go services.</p>
			<script>alert("x")</script><footer>Legal</footer></body></html>`))
	}))
	defer server.Close()

	text, err := Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Build Go services.")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "Menu")
	assert.NotContains(t, text, "Legal")
}

func TestFetch_PlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("  We are hiring a backend engineer.  "))
	}))
	defer server.Close()

	text, err := Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "We are hiring a backend engineer.", text)
}

func TestFetch_RejectsNonHTTPScheme(t *testing.T) {
	_, err := Fetch(context.Background(), "ftp://example.com/job")

	require.Error(t, err)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Message, "http or https")
}

func TestFetch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL)

	require.Error(t, err)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Message, "404")
}

func TestFetch_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><script>only()</script></body></html>"))
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text")
}

func TestFetch_SetsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("job text"))
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "intersync-backend/1.0", gotUA)
}

func TestExtractText_CollapsesWhitespace(t *testing.T) {
	text, err := ExtractText("<html><body><p>a\n\n   b</p>\t<p>c</p></body></html>")

	require.NoError(t, err)
	assert.Equal(t, "a b c", text)
}

func TestExtractText_HTMLWithoutBody(t *testing.T) {
	text, err := ExtractText("<p>fragment only</p>")

	require.NoError(t, err)
	assert.Equal(t, "fragment only", text)
}
