// Package jd fetches job-description text from a URL. HTML pages are reduced
// to their visible text; plain-text responses pass through unchanged.
package jd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	fetchTimeout = 30 * time.Second
	// maxBodyBytes caps how much of a response is read. Job postings are
	// small; anything larger is not a posting.
	maxBodyBytes = 2 << 20
)

// FetchError represents a failure to retrieve or extract a job description.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to fetch job description from %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to fetch job description from %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Fetch retrieves the job description text at rawURL with a bounded timeout.
func Fetch(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", &FetchError{URL: rawURL, Message: "URL must use http or https", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("User-Agent", "intersync-backend/1.0")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: rawURL, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "failed to read response body", Cause: err}
	}

	text := string(body)
	if isHTML(resp.Header.Get("Content-Type"), text) {
		extracted, err := ExtractText(text)
		if err != nil {
			return "", &FetchError{URL: rawURL, Message: "failed to extract text from HTML", Cause: err}
		}
		text = extracted
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &FetchError{URL: rawURL, Message: "page contained no text"}
	}
	return text, nil
}

// ExtractText reduces an HTML document to its visible text content.
// Script, style, and chrome elements are dropped and whitespace collapsed.
func ExtractText(htmlContent string) (string, error) {
	docReader, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	docReader.Find("script, style, noscript, nav, header, footer").Remove()

	body := docReader.Find("body")
	text := body.Text()
	if body.Length() == 0 {
		text = docReader.Text()
	}

	return strings.Join(strings.Fields(text), " "), nil
}

// isHTML reports whether a response should be treated as an HTML document.
func isHTML(contentType, body string) bool {
	if strings.Contains(contentType, "text/html") {
		return true
	}
	head := strings.ToLower(strings.TrimSpace(body))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}
