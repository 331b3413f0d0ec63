package scraper

import (
	"fmt"
	"strings"
)

// priceDataJSON mimics the buying options data island of a product page
func priceDataJSON(displayPrice, amount, locale string) string {
	return fmt.Sprintf(`[{"displayPrice":%q,"priceAmount":%s,"currencySymbol":"R$",`+
		`"decimalSeparator":",","symbolPosition":"left","hasSpace":true,`+
		`"offerListingId":"Xk2%%2FqZ","locale":%q,"buyingOptionType":"NEW"}]`,
		displayPrice, amount, locale)
}

// productPage renders a trimmed down product page. Empty arguments leave the
// corresponding element out.
func productPage(title, price, priceData string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html lang="pt-br"><head><title>Amazon.com.br</title></head><body>`)
	b.WriteString(`<div id="centerCol">`)
	if title != "" {
		fmt.Fprintf(&b, `<h1 id="title"><span id="productTitle" class="a-size-large product-title-word-break">
			%s
		</span></h1>`, title)
	}
	if price != "" {
		fmt.Fprintf(&b, `<div id="corePrice_feature_div"><span class="a-price aok-align-center" data-a-size="xl">`+
			`<span class="a-offscreen">%s</span>`+
			`<span aria-hidden="true"><span class="a-price-symbol">R$</span>`+
			`<span class="a-price-whole">3.999<span class="a-price-decimal">,</span></span>`+
			`<span class="a-price-fraction">90</span></span></span></div>`, price)
	}
	b.WriteString(`</div>`)
	if priceData != "" {
		fmt.Fprintf(&b, `<div class="a-section aok-hidden twister-plus-buying-options-price-data">%s</div>`, priceData)
	}
	b.WriteString(`</body></html>`)
	return b.String()
}
