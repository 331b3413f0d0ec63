package scraper

import (
	"context"
	"errors"
	"io"
	"net/http"

	"sjsage522/pricetracker/helpers"
	"sjsage522/pricetracker/logger"
	trackererrors "sjsage522/pricetracker/pkg/errors"
)

// AmazonScraper extracts a product snapshot from an Amazon product page
type AmazonScraper struct {
	URL     string
	Headers http.Header
}

// NewAmazonScraper creates a scraper for the product page at url
func NewAmazonScraper(url string, headers http.Header) *AmazonScraper {
	return &AmazonScraper{
		URL:     url,
		Headers: headers,
	}
}

// GetName returns the scraper name
func (s *AmazonScraper) GetName() string {
	return "AmazonScraper"
}

// Scrape fetches the product page once and extracts its snapshot
func (s *AmazonScraper) Scrape(ctx context.Context) (ProductSnapshot, error) {
	utf8Body, err := s.fetch(ctx)
	if err != nil {
		return ProductSnapshot{}, err
	}

	doc, err := NewHTMLDocument(utf8Body)
	if err != nil {
		return ProductSnapshot{}, trackererrors.NewDecoding(componentName, "failed to parse product page", err)
	}

	return Extract(doc, s.URL)
}

func (s *AmazonScraper) fetch(ctx context.Context) (io.Reader, error) {
	logger.ForScraper().Debug().Str("url", s.URL).Msg("Fetching product page")

	utf8Body, err := helpers.FetchWithHeaders(ctx, s.URL, s.Headers)
	if err != nil {
		if errors.Is(err, helpers.ErrRateLimited) {
			return nil, trackererrors.NewRateLimit(componentName, err)
		}
		return nil, trackererrors.NewNetwork(componentName, "failed to fetch product page", err)
	}
	return utf8Body, nil
}
