package scraper

import (
	"encoding/json"
	"errors"
	"maps"
	"slices"

	"golang.org/x/text/unicode/norm"

	"sjsage522/pricetracker/logger"
)

// Amazon product page selectors
const (
	titleTag = "span"
	titleID  = "productTitle"

	// The off-screen price carries the whole formatted amount in one string,
	// unlike the split a-price-whole / a-price-fraction pair.
	priceTag   = "span"
	priceClass = "a-offscreen"

	priceDataTag   = "div"
	priceDataClass = "twister-plus-buying-options-price-data"
)

var (
	errEmptyPriceData = errors.New("price data holds no buying options")
	errMissingLocale  = errors.New("price data has no locale")
)

// LocateTitle returns the product title
func LocateTitle(doc DocumentView) (string, bool) {
	node, ok := doc.FindByIDAndTag(titleTag, titleID)
	if !ok {
		logger.ForScraper().Error().
			Str("tag", titleTag).
			Str("id", titleID).
			Msg("Product title element not found")
		return "", false
	}

	title := node.Text()
	if title == "" {
		logger.ForScraper().Error().
			Str("tag", titleTag).
			Str("id", titleID).
			Msg("Product title element is empty")
		return "", false
	}
	return title, true
}

// LocatePriceText returns the displayed price string, e.g. "R$ 3.999,90"
func LocatePriceText(doc DocumentView) (string, bool) {
	node, ok := doc.FindByClassAndTag(priceTag, priceClass)
	if !ok {
		logger.ForScraper().Error().
			Str("tag", priceTag).
			Str("class", priceClass).
			Msg("Price element not found")
		return "", false
	}

	price := node.Text()
	if price == "" {
		logger.ForScraper().Error().
			Str("tag", priceTag).
			Str("class", priceClass).
			Msg("Price element is empty")
		return "", false
	}
	return price, true
}

// LocatePriceMetadata decodes the buying options data island and returns its
// first entry. Malformed or empty data is reported as not found.
func LocatePriceMetadata(doc DocumentView) (PriceMetadata, bool) {
	node, ok := doc.FindByClassAndTag(priceDataTag, priceDataClass)
	if !ok {
		logger.ForScraper().Error().
			Str("tag", priceDataTag).
			Str("class", priceDataClass).
			Msg("Price data element not found")
		return PriceMetadata{}, false
	}

	// The page mixes composed and decomposed accented characters.
	raw := norm.NFKD.String(node.Text())

	meta, err := decodePriceMetadata(raw)
	if err != nil {
		logger.ForScraper().Error().
			Err(err).
			Str("class", priceDataClass).
			Msg("Failed to extract page locale from price data")
		return PriceMetadata{}, false
	}
	return meta, true
}

// decodePriceMetadata accepts either a JSON array of buying options or an
// object mapping buying option groups to such arrays.
func decodePriceMetadata(raw string) (PriceMetadata, error) {
	var entries []PriceMetadata
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		var groups map[string][]PriceMetadata
		if json.Unmarshal([]byte(raw), &groups) != nil {
			return PriceMetadata{}, err
		}
		if len(groups) > 0 {
			entries = groups[slices.Sorted(maps.Keys(groups))[0]]
		}
	}

	if len(entries) == 0 {
		return PriceMetadata{}, errEmptyPriceData
	}
	if entries[0].Locale == "" {
		return PriceMetadata{}, errMissingLocale
	}
	return entries[0], nil
}
