package handler

import (
	"math"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	supportedLanguages = []language.Tag{language.English, language.German, language.French}
	languageMatcher    = language.NewMatcher(supportedLanguages)
)

// printerFor picks a number printer from the Accept-Language header
func printerFor(r *http.Request) *message.Printer {
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return message.NewPrinter(language.English)
	}
	_, index, _ := languageMatcher.Match(tags...)
	return message.NewPrinter(supportedLanguages[index])
}

// formatAmount renders whole cookies with digit grouping
func formatAmount(p *message.Printer, v float64) string {
	return p.Sprintf("%.0f", math.Floor(v))
}

// formatRate renders a per-second rate with one decimal
func formatRate(p *message.Printer, v float64) string {
	return p.Sprintf("%.1f", v)
}
