// Package normalize canonicalizes the raw owner names and street
// addresses found in public-record filings so they can be compared
// across inconsistently formatted sources.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// legalSuffixRe strips incorporation-form suffixes wherever they
	// appear as whole words, with an optional trailing period. Longer
	// alternatives are listed first.
	legalSuffixRe = regexp.MustCompile(`\b(?:INCORPORATED|CORPORATION|COMPANY|LIMITED|P\.?L\.?L\.?C|L\.?L\.?C|L\.?L\.?P|L\.?P|P\.?C|P\.?A|D/B/A|INC|CORP|LTD|TRUST|DBA|CO)\b\.?`)

	// entityMarkerRe is the broader marker table used to classify a raw
	// string as entity-like. It includes the incorporation forms plus
	// the business descriptors common in shell-company names.
	entityMarkerRe = regexp.MustCompile(`\b(?:INCORPORATED|CORPORATION|COMPANY|LIMITED|PARTNERSHIP|ASSOCIATES|PROPERTIES|MANAGEMENT|DEVELOPMENT|ENTERPRISES|HOLDINGS|HOLDING|PARTNERS|VENTURES|EQUITIES|ESTATES|REALTY|CAPITAL|GROUP|FUND|P\.?L\.?L\.?C|L\.?L\.?C|L\.?L\.?P|L\.?P|INC|CORP|LTD|TRUST|DBA|CO)\b`)

	leadingArticleRe = regexp.MustCompile(`^(?:THE|A|AN)\s+`)
	separatorRe      = regexp.MustCompile(`[,.\-_/\\]+`)
	multiSpaceRe     = regexp.MustCompile(`\s{2,}`)

	diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Name canonicalizes a raw owner/entity name for matching: uppercase,
// diacritics folded, incorporation-form suffixes removed, leading
// article removed, punctuation collapsed to spaces, trailing possessive
// stripped. Idempotent: Name(Name(x)) == Name(x).
func Name(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	if folded, _, err := transform.String(diacriticFolder, s); err == nil {
		s = folded
	}

	// Dotted forms (L.L.C., L.P.) must be stripped before the periods
	// are collapsed away; the plain forms are swept again afterwards
	// for names where a separator hid the suffix (e.g. "ACME_LLC").
	s = legalSuffixRe.ReplaceAllString(s, " ")
	s = separatorRe.ReplaceAllString(s, " ")
	s = legalSuffixRe.ReplaceAllString(s, " ")

	s = strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))
	for {
		next := leadingArticleRe.ReplaceAllString(s, "")
		next = strings.TrimSuffix(next, "'S")
		next = strings.TrimSpace(next)
		if next == s {
			return s
		}
		s = next
	}
}

// IsEntityName reports whether the raw (un-normalized) string carries a
// legal-entity marker and is therefore presumed to be a company or
// shell rather than an individual.
func IsEntityName(raw string) bool {
	return entityMarkerRe.MatchString(strings.ToUpper(raw))
}

// IsPersonName reports whether the raw string looks like an individual's
// name: at least 3 characters, no entity marker, and an internal space
// separating first and last name.
func IsPersonName(raw string) bool {
	s := strings.TrimSpace(raw)
	if utf8.RuneCountInString(s) < 3 {
		return false
	}
	if IsEntityName(s) {
		return false
	}
	return strings.Contains(s, " ")
}

// ExtractLLCAddress returns the street-address prefix embedded in a
// shell-LLC name ("123 NASSAU ST HOLDINGS LLC" -> "123 NASSAU ST"), or
// "" when the name does not lead with a house number.
func ExtractLLCAddress(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	m := llcAddressRe.FindString(s)
	return strings.TrimSpace(m)
}
