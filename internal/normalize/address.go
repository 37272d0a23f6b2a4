package normalize

import (
	"regexp"
	"strings"

	"github.com/propwire/resolve-cli/internal/model"
	"github.com/propwire/resolve-cli/internal/strsim"
)

// streetTypes canonicalizes common street-type abbreviations. Canonical
// forms map to themselves so re-normalization is stable.
var streetTypes = map[string]string{
	"ST": "STREET", "STREET": "STREET",
	"AVE": "AVENUE", "AV": "AVENUE", "AVENUE": "AVENUE",
	"RD": "ROAD", "ROAD": "ROAD",
	"BLVD": "BOULEVARD", "BOULEVARD": "BOULEVARD",
	"DR": "DRIVE", "DRIVE": "DRIVE",
	"LN": "LANE", "LANE": "LANE",
	"CT": "COURT", "COURT": "COURT",
	"PL": "PLACE", "PLACE": "PLACE",
	"TER": "TERRACE", "TERRACE": "TERRACE",
	"PKWY": "PARKWAY", "PARKWAY": "PARKWAY",
	"HWY": "HIGHWAY", "HIGHWAY": "HIGHWAY",
	"EXPY": "EXPRESSWAY", "EXPRESSWAY": "EXPRESSWAY",
	"SQ": "SQUARE", "SQUARE": "SQUARE",
	"CIR": "CIRCLE", "CIRCLE": "CIRCLE",
	"PLZ": "PLAZA", "PLAZA": "PLAZA",
	"WAY": "WAY",
}

// directionals canonicalizes directional abbreviations.
var directionals = map[string]string{
	"N": "NORTH", "NORTH": "NORTH",
	"S": "SOUTH", "SOUTH": "SOUTH",
	"E": "EAST", "EAST": "EAST",
	"W": "WEST", "WEST": "WEST",
	"NE": "NORTHEAST", "NORTHEAST": "NORTHEAST",
	"NW": "NORTHWEST", "NORTHWEST": "NORTHWEST",
	"SE": "SOUTHEAST", "SOUTHEAST": "SOUTHEAST",
	"SW": "SOUTHWEST", "SOUTHWEST": "SOUTHWEST",
}

var (
	unitRe    = regexp.MustCompile(`(?:\b(?:APT|APARTMENT|UNIT|STE|SUITE|FL|FLOOR|RM|ROOM)\b\.?|#)\s*([0-9A-Z][0-9A-Z-]*)`)
	zipRe     = regexp.MustCompile(`\b(\d{5})(-\d{4})?\b`)
	houseRe   = regexp.MustCompile(`^(\d+(?:[-/]\d+)?)(?:\s+|$)`)
	stateRe   = regexp.MustCompile(`\b(NY|NEW YORK|NJ|NEW JERSEY)\b`)
	boroughRe = regexp.MustCompile(`\b(MANHATTAN|BRONX|BROOKLYN|QUEENS|STATEN ISLAND)\b`)

	// llcAddressRe matches the house-number-plus-street prefix that
	// shell LLCs are conventionally named after.
	llcAddressRe = regexp.MustCompile(`^(\d+(?:[-/]\d+)?)\s+([0-9A-Z]+)(?:\s+(?:ST|STREET|AVE|AV|AVENUE|RD|ROAD|BLVD|BOULEVARD|DR|DRIVE|LN|LANE|CT|COURT|PL|PLACE|TER|TERRACE|PKWY|PARKWAY|HWY|HIGHWAY|SQ|SQUARE|CIR|CIRCLE|PLZ|PLAZA|WAY)\b)?`)
)

// canonicalStates maps the recognized state spellings to 2-letter codes.
var canonicalStates = map[string]string{
	"NY": "NY", "NEW YORK": "NY",
	"NJ": "NJ", "NEW JERSEY": "NJ",
}

// Address decomposes a raw address string into structured components.
// Each extraction step consumes its match from the working string so
// later steps never re-match already-claimed tokens. Deterministic and
// idempotent over its own output.
func Address(raw string) model.Address {
	addr := model.Address{Raw: raw}
	work := strings.ToUpper(strings.TrimSpace(raw))
	work = strings.ReplaceAll(work, ",", " ")

	// 1. Unit / apartment designator.
	if m := unitRe.FindStringSubmatchIndex(work); m != nil {
		addr.Unit = work[m[2]:m[3]]
		work = work[:m[0]] + " " + work[m[1]:]
	}

	// 2. Zip. The last 5-digit token wins so a 5-digit house number at
	// the front of the string is not mistaken for a zip.
	if ms := zipRe.FindAllStringSubmatchIndex(work, -1); len(ms) > 0 {
		m := ms[len(ms)-1]
		addr.Zip = work[m[2]:m[3]]
		work = work[:m[0]] + " " + work[m[1]:]
	}

	// 3. Leading house number, allowing NYC compound lot numbers.
	work = strings.TrimSpace(work)
	if m := houseRe.FindStringSubmatchIndex(work); m != nil {
		addr.Number = work[m[2]:m[3]]
		work = work[m[1]:]
	}

	// 4. State.
	if ms := stateRe.FindAllStringSubmatchIndex(work, -1); len(ms) > 0 {
		addr.State = canonicalStates[work[ms[0][2]:ms[0][3]]]
		work = stateRe.ReplaceAllString(work, " ")
	}

	// 5. Borough keyword, reused as city when no city was parsed. The
	// last occurrence is consumed so street names that embed a borough
	// word ("QUEENS BLVD") keep it.
	if ms := boroughRe.FindAllStringSubmatchIndex(work, -1); len(ms) > 0 {
		m := ms[len(ms)-1]
		addr.Borough = work[m[2]:m[3]]
		work = work[:m[0]] + " " + work[m[1]:]
		if addr.City == "" {
			addr.City = addr.Borough
		}
	}

	// 6. Whatever remains is the street; canonicalize per token.
	addr.Street = canonicalizeStreet(work)
	return addr
}

// canonicalizeStreet rewrites street-type and directional abbreviations
// token by token.
func canonicalizeStreet(s string) string {
	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))
	for _, tok := range fields {
		tok = strings.TrimSuffix(tok, ".")
		tok = strings.Trim(tok, "#")
		if tok == "" {
			continue
		}
		if canon, ok := streetTypes[tok]; ok {
			out = append(out, canon)
			continue
		}
		if canon, ok := directionals[tok]; ok {
			out = append(out, canon)
			continue
		}
		out = append(out, tok)
	}
	return strings.Join(out, " ")
}

// AddressSimilarity scores two raw addresses on a 0-100 scale. A house
// number mismatch is conclusive: the score is 0 no matter how similar
// the streets are. Matching house numbers earn a +5 bonus (capped at
// 100) when street similarity is already at least 80. When neither side
// parses a street the raw strings are compared directly.
func AddressSimilarity(a, b string) int {
	na := Address(a)
	nb := Address(b)

	if na.Number != "" && nb.Number != "" && na.Number != nb.Number {
		return 0
	}

	if na.Street == "" && nb.Street == "" {
		return strsim.LevenshteinSimilarity(
			strings.ToUpper(strings.TrimSpace(a)),
			strings.ToUpper(strings.TrimSpace(b)),
		)
	}

	sim := strsim.LevenshteinSimilarity(na.Street, nb.Street)
	if na.Number != "" && na.Number == nb.Number && sim >= 80 {
		sim += 5
		if sim > 100 {
			sim = 100
		}
	}
	return sim
}
