package validation

import (
	"regexp"
	"strings"
)

// Ticker symbols: uppercase letters, digits, dot or dash (BRK.B, BF-B).
var symbolRe = regexp.MustCompile(`^[A-Z0-9.\-]{1,10}$`)

// Alpha Vantage keys are 16 uppercase alphanumerics.
var apiKeyRe = regexp.MustCompile(`^[A-Z0-9]{16}$`)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeSymbol uppercases and trims a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// IsValidSymbol reports whether s is a plausible ticker after normalization.
func IsValidSymbol(s string) bool {
	return symbolRe.MatchString(NormalizeSymbol(s))
}

// IsValidAPIKey reports whether the provider API key has the expected
// format. "demo" is explicitly rejected.
func IsValidAPIKey(key string) bool {
	return key != "demo" && apiKeyRe.MatchString(key)
}

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
