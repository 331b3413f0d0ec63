package scraper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrUnknownLocale is returned for a locale with no separator rules
	ErrUnknownLocale = errors.New("unknown locale")
	// ErrEmptyPrice is returned when the price text holds no digits
	ErrEmptyPrice = errors.New("price text has no digits")
	// ErrMalformedPrice is returned when the price text does not follow the locale's rules
	ErrMalformedPrice = errors.New("price text does not match locale format")
)

// ParseError reports a price string that could not be converted to a decimal
type ParseError struct {
	Text   string
	Locale string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse price %q for locale %q: %v", e.Text, e.Locale, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// separators describes how a locale writes numbers
type separators struct {
	decimal string
	group   string
}

var (
	pointDecimal = separators{decimal: ".", group: ","}
	commaDecimal = separators{decimal: ",", group: "."}
	// Space grouped locales use a (narrow) no-break space, which cleaning drops.
	spaceGrouped = separators{decimal: ",", group: " "}
)

// localeSeparators covers the Amazon storefront locales, keyed by canonical tag
var localeSeparators = map[string]separators{
	"en-US": pointDecimal,
	"en-GB": pointDecimal,
	"en-CA": pointDecimal,
	"en-AU": pointDecimal,
	"en-IN": pointDecimal,
	"en-SG": pointDecimal,
	"en-AE": pointDecimal,
	"es-US": pointDecimal,
	"es-MX": pointDecimal,
	"ja-JP": pointDecimal,
	"pt-BR": commaDecimal,
	"de-DE": commaDecimal,
	"es-ES": commaDecimal,
	"it-IT": commaDecimal,
	"nl-NL": commaDecimal,
	"nl-BE": commaDecimal,
	"tr-TR": commaDecimal,
	"fr-FR": spaceGrouped,
	"fr-CA": spaceGrouped,
	"sv-SE": spaceGrouped,
	"pl-PL": spaceGrouped,
}

var plainDecimal = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// lookupSeparators canonicalizes locale ("pt_br" and "pt-BR" are the same tag)
// and returns its separator rules.
func lookupSeparators(locale string) (separators, bool) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return separators{}, false
	}
	seps, ok := localeSeparators[tag.String()]
	return seps, ok
}

// Normalize converts a locale formatted price string such as "R$ 1.234,56"
// into an exact decimal amount.
func Normalize(priceText, locale string) (decimal.Decimal, error) {
	seps, ok := lookupSeparators(locale)
	if !ok {
		return decimal.Zero, &ParseError{Text: priceText, Locale: locale, Err: ErrUnknownLocale}
	}

	// NFKD folds full-width digits to ASCII before everything else is dropped.
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			return r
		}
		return -1
	}, norm.NFKD.String(priceText))

	if strings.IndexFunc(cleaned, func(r rune) bool { return r >= '0' && r <= '9' }) < 0 {
		return decimal.Zero, &ParseError{Text: priceText, Locale: locale, Err: ErrEmptyPrice}
	}

	// Group separators only belong to the whole part.
	whole, fraction, hasFraction := strings.Cut(cleaned, seps.decimal)
	if strings.Contains(fraction, seps.decimal) || strings.Contains(fraction, seps.group) {
		return decimal.Zero, &ParseError{Text: priceText, Locale: locale, Err: ErrMalformedPrice}
	}
	cleaned = strings.ReplaceAll(whole, seps.group, "")
	if hasFraction {
		cleaned += "." + fraction
	}

	if !plainDecimal.MatchString(cleaned) {
		return decimal.Zero, &ParseError{Text: priceText, Locale: locale, Err: ErrMalformedPrice}
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &ParseError{Text: priceText, Locale: locale, Err: fmt.Errorf("%w: %v", ErrMalformedPrice, err)}
	}
	return amount, nil
}

// FormatAmount renders amount without grouping using locale's decimal
// separator, so that Normalize(FormatAmount(a, l), l) == a.
func FormatAmount(amount decimal.Decimal, locale string) (string, error) {
	seps, ok := lookupSeparators(locale)
	if !ok {
		return "", &ParseError{Text: amount.String(), Locale: locale, Err: ErrUnknownLocale}
	}
	return strings.Replace(amount.String(), ".", seps.decimal, 1), nil
}
