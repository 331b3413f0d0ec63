package helpers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
)

// ErrRateLimited is returned when the storefront refuses to serve the page
var ErrRateLimited = errors.New("rate limited")

// rateLimitStatuses are the codes storefronts answer with when they block a client.
// Amazon serves its robot check with 503.
var rateLimitStatuses = []int{http.StatusTooManyRequests, 430, http.StatusServiceUnavailable}

// HTTP client with timeout
var client = &http.Client{
	Timeout: 30 * time.Second,
}

// FetchWithHeaders sends a single HTTP GET request with the given headers,
// converts the response body to UTF-8 (if needed), and returns it as an io.Reader.
func FetchWithHeaders(ctx context.Context, url string, headers http.Header) (io.Reader, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	// Check for rate limiting
	if slices.Contains(rateLimitStatuses, resp.StatusCode) {
		retryAfter := resp.Header.Get("Retry-After")
		if retryAfter == "" {
			return nil, fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: status %d, retry after %s", ErrRateLimited, resp.StatusCode, retryAfter)
	}

	// Check for other error status codes
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s unexpected status code: %d", url, resp.StatusCode)
	}

	// Read the entire response body
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return toUTF8(bodyBytes, resp.Header.Get("Content-Type"))
}

// toUTF8 determines the encoding from the Content-Type header and body content
// and converts the body to UTF-8.
func toUTF8(body []byte, contentType string) (io.Reader, error) {
	encoding, name, _ := charset.DetermineEncoding(body, contentType)

	// If already UTF-8, return as is
	if strings.EqualFold(name, "utf-8") {
		return bytes.NewReader(body), nil
	}

	utf8Reader := encoding.NewDecoder().Reader(bytes.NewReader(body))
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, utf8Reader); err != nil {
		return nil, fmt.Errorf("failed to read converted UTF-8 body: %w", err)
	}

	return &buf, nil
}
