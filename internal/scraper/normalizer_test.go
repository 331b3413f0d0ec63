package scraper

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		locale string
		want   string
	}{
		{"brazilian real", "R$ 3.999,90", "pt-BR", "3999.90"},
		{"brazilian real with nbsp", "R$ 1.234,56", "pt-BR", "1234.56"},
		{"brazilian real no grouping", "R$ 899,00", "pt-BR", "899"},
		{"us dollar", "$4,000.00", "en-US", "4000"},
		{"us dollar millions", "$1,234,567.89", "en-US", "1234567.89"},
		{"indian grouping", "₹1,23,456.78", "en-IN", "123456.78"},
		{"yen without fraction", "￥4,980", "ja-JP", "4980"},
		{"full width digits", "￥４,９８０", "ja-JP", "4980"},
		{"euro germany", "1.234,56 €", "de-DE", "1234.56"},
		{"euro france narrow nbsp", "1 234,56 €", "fr-FR", "1234.56"},
		{"lower case locale", "R$ 10,50", "pt-br", "10.50"},
		{"underscore locale", "R$ 10,50", "pt_BR", "10.50"},
		{"whole number", "$15", "en-US", "15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.text, tt.locale)
			assert.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestNormalizeSameDigitsOppositeSeparators(t *testing.T) {
	want := decimal.RequireFromString("1234.56")

	for _, locale := range []string{"pt-BR", "de-DE", "es-ES", "it-IT", "nl-NL", "tr-TR"} {
		got, err := Normalize("1.234,56", locale)
		assert.NoError(t, err, locale)
		assert.True(t, want.Equal(got), "%s: got %s", locale, got)

		_, err = Normalize("1,234.56", locale)
		assert.ErrorIs(t, err, ErrMalformedPrice, locale)
	}

	for _, locale := range []string{"en-US", "en-GB", "en-CA", "es-MX", "ja-JP"} {
		got, err := Normalize("1,234.56", locale)
		assert.NoError(t, err, locale)
		assert.True(t, want.Equal(got), "%s: got %s", locale, got)

		_, err = Normalize("1.234,56", locale)
		assert.ErrorIs(t, err, ErrMalformedPrice, locale)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []struct {
		text   string
		locale string
	}{
		{"R$ 3.999,90", "pt-BR"},
		{"$4,000.00", "en-US"},
		{"1.234,5 €", "de-DE"},
		{"1 234,56 €", "fr-FR"},
		{"￥4,980", "ja-JP"},
	}

	for _, in := range inputs {
		first, err := Normalize(in.text, in.locale)
		assert.NoError(t, err)

		clean, err := FormatAmount(first, in.locale)
		assert.NoError(t, err)

		second, err := Normalize(clean, in.locale)
		assert.NoError(t, err)
		assert.True(t, first.Equal(second), "%s: %s != %s", in.locale, first, second)
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		locale string
		err    error
	}{
		{"unknown locale", "R$ 3.999,90", "xx-YY", ErrUnknownLocale},
		{"empty locale", "R$ 3.999,90", "", ErrUnknownLocale},
		{"language only", "R$ 3.999,90", "pt", ErrUnknownLocale},
		{"no digits", "R$ ,", "pt-BR", ErrEmptyPrice},
		{"empty text", "", "en-US", ErrEmptyPrice},
		{"two decimal separators", "1,234,56", "pt-BR", ErrMalformedPrice},
		{"trailing decimal separator", "4.499,", "pt-BR", ErrMalformedPrice},
		{"leading decimal separator", ".99", "en-US", ErrMalformedPrice},
		{"point in space grouped locale", "1.234,56 €", "fr-FR", ErrMalformedPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.text, tt.locale)
			assert.ErrorIs(t, err, tt.err)

			var pe *ParseError
			assert.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.text, pe.Text)
			assert.Equal(t, tt.locale, pe.Locale)
			assert.Contains(t, err.Error(), tt.locale)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	s, err := FormatAmount(decimal.RequireFromString("3999.90"), "pt-BR")
	assert.NoError(t, err)
	assert.Equal(t, "3999,9", s)

	s, err = FormatAmount(decimal.RequireFromString("4000"), "en-US")
	assert.NoError(t, err)
	assert.Equal(t, "4000", s)

	_, err = FormatAmount(decimal.RequireFromString("1"), "zz")
	assert.ErrorIs(t, err, ErrUnknownLocale)
}

func TestQualifies(t *testing.T) {
	threshold := decimal.RequireFromString("4000.00")

	assert.True(t, Qualifies(decimal.RequireFromString("3999.90"), threshold))
	assert.True(t, Qualifies(decimal.RequireFromString("4000"), threshold), "price at threshold qualifies")
	assert.False(t, Qualifies(decimal.RequireFromString("4000.01"), threshold))
	assert.False(t, Qualifies(decimal.RequireFromString("3999.90"), decimal.RequireFromString("3000.00")))
}
