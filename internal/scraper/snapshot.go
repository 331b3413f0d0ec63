package scraper

import (
	"errors"

	"github.com/shopspring/decimal"

	"sjsage522/pricetracker/logger"
	trackererrors "sjsage522/pricetracker/pkg/errors"
)

const componentName = "scraper"

// Extract builds a snapshot from a parsed product page. The three lookups run
// independently so every missing fragment gets logged.
func Extract(doc DocumentView, link string) (ProductSnapshot, error) {
	title, titleFound := LocateTitle(doc)
	priceText, priceFound := LocatePriceText(doc)
	meta, metaFound := LocatePriceMetadata(doc)

	if !titleFound {
		return ProductSnapshot{}, trackererrors.NewExtraction(componentName, "product title not found")
	}
	if !priceFound {
		return ProductSnapshot{}, trackererrors.NewExtraction(componentName, "price text not found")
	}
	if !metaFound {
		return ProductSnapshot{}, trackererrors.NewDecoding(componentName, "price locale not found", nil)
	}

	amount, err := Normalize(priceText, meta.Locale)
	if err != nil {
		return ProductSnapshot{}, trackererrors.NewParsing(componentName, "failed to normalize price", err)
	}

	if meta.PriceAmount.Valid && !meta.PriceAmount.Decimal.Equal(amount) {
		logger.ForScraper().Warn().
			Str("price_text", priceText).
			Str("parsed_amount", amount.String()).
			Str("data_amount", meta.PriceAmount.Decimal.String()).
			Msg("Displayed price and price data disagree")
	}

	return ProductSnapshot{
		Title:        title,
		DisplayPrice: priceText,
		PriceAmount:  amount,
		Locale:       meta.Locale,
		Link:         link,
	}, nil
}

// Qualifies reports whether price is at or below threshold
func Qualifies(price, threshold decimal.Decimal) bool {
	return price.LessThanOrEqual(threshold)
}

// AsParseError returns the ParseError in err's chain, if any
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
