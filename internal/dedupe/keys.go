package dedupe

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// streetSuffixes maps spelled-out street suffixes to their postal
// abbreviations, applied before hashing so "Main Street" and "Main St"
// derive the same address key.
var streetSuffixes = map[string]string{
	"street":    "st",
	"avenue":    "ave",
	"boulevard": "blvd",
	"road":      "rd",
	"drive":     "dr",
	"lane":      "ln",
	"court":     "ct",
	"place":     "pl",
	"circle":    "cir",
	"highway":   "hwy",
	"parkway":   "pkwy",
	"terrace":   "ter",
	"square":    "sq",
	"suite":     "ste",
	"apartment": "apt",
}

// PhoneKey reduces a phone number to its digit string, so "+1 415-555-0100"
// and "14155550100" dedup together.
func PhoneKey(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EmailKey prefers the provider-given normalized form, falling back to the
// raw address, lower-cased and NFKC-folded.
func EmailKey(address, normalized string) string {
	s := normalized
	if s == "" {
		s = address
	}
	return fold(s)
}

// AddressKey derives the dedup key street|city|state|postcode with suffix
// abbreviation, punctuation stripping, and whitespace collapsing applied to
// each part. Empty parts are skipped so partial addresses still key.
func AddressKey(street, city, state, postcode string) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{street, city, state, postcode} {
		if p := normalizeAddressPart(part); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "|")
}

// CompanyKey keys employment records by lower-cased company name.
func CompanyKey(company string) string {
	return strings.Join(strings.Fields(fold(company)), " ")
}

// RelativeKey keys relatives by their trimmed name.
func RelativeKey(name string) string {
	return strings.TrimSpace(name)
}

// PropertyKey derives the dedup key address|city|postcode, lower-cased.
func PropertyKey(address, city, postcode string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{address, city, postcode} {
		if p := normalizeAddressPart(part); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "|")
}

func normalizeAddressPart(s string) string {
	s = fold(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
		// Punctuation is dropped.
	}
	words := strings.Fields(b.String())
	for i, w := range words {
		if abbrev, ok := streetSuffixes[w]; ok {
			words[i] = abbrev
		}
	}
	return strings.Join(words, " ")
}

// fold lower-cases and NFKC-normalizes provider strings so visually equal
// unicode variants derive equal keys.
func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}
