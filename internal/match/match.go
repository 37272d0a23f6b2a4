// Package match decides whether two raw owner-name strings denote the
// same real-world entity, combining normalization, string similarity,
// and real-estate domain heuristics into a single ordered cascade.
package match

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/propwire/resolve-cli/internal/model"
	"github.com/propwire/resolve-cli/internal/normalize"
	"github.com/propwire/resolve-cli/internal/strsim"
)

const (
	containmentRatioFloor = 0.5
	jaroWinklerThreshold  = 0.90
	jaroWinklerMaxLen     = 15
	levenshteinThreshold  = 85
	llcAddressThreshold   = 90
	lastNameInitialScore  = 80
	lastNameOnlyScore     = 60
)

// SameEntity compares two raw owner names and returns a verdict with a
// confidence score and the cascade step that produced it. The cascade
// is evaluated in order and the first matching rule wins; downstream
// consumers depend on the exact thresholds and ordering.
func SameEntity(name1, name2 string) model.Match {
	if strings.TrimSpace(name1) == "" || strings.TrimSpace(name2) == "" {
		return model.Match{Match: false, Confidence: 0, Method: model.MethodEmpty}
	}

	n1 := normalize.Name(name1)
	n2 := normalize.Name(name2)
	if n1 == "" || n2 == "" {
		return model.Match{Match: false, Confidence: 0, Method: model.MethodEmptyAfterNormalize}
	}

	// Exact normalized match.
	if n1 == n2 {
		return model.Match{Match: true, Confidence: 100, Method: model.MethodExact}
	}

	// One form contains the other and the lengths are comparable.
	len1 := utf8.RuneCountInString(n1)
	len2 := utf8.RuneCountInString(n2)
	if strings.Contains(n1, n2) || strings.Contains(n2, n1) {
		ratio := float64(minInt(len1, len2)) / float64(maxInt(len1, len2))
		if ratio > containmentRatioFloor {
			return model.Match{
				Match:      true,
				Confidence: int(math.Round(85 + ratio*15)),
				Method:     model.MethodContainment,
			}
		}
	}

	// Jaro-Winkler favors short strings; only consulted when either
	// normalized form is short enough for its prefix bias to help.
	if len1 < jaroWinklerMaxLen || len2 < jaroWinklerMaxLen {
		if jw := strsim.JaroWinkler(n1, n2); jw >= jaroWinklerThreshold {
			return model.Match{
				Match:      true,
				Confidence: int(math.Round(jw * 100)),
				Method:     model.MethodJaroWinkler,
			}
		}
	}

	lev := strsim.LevenshteinSimilarity(n1, n2)
	if lev >= levenshteinThreshold {
		return model.Match{Match: true, Confidence: lev, Method: model.MethodLevenshtein}
	}

	// Shell LLCs are conventionally named after the property they hold;
	// two such names matching on the embedded address is decisive.
	addr1 := normalize.ExtractLLCAddress(name1)
	addr2 := normalize.ExtractLLCAddress(name2)
	if addr1 != "" && addr2 != "" {
		if sim := normalize.AddressSimilarity(addr1, addr2); sim >= llcAddressThreshold {
			return model.Match{
				Match:      true,
				Confidence: int(math.Round(float64(sim) * 0.9)),
				Method:     model.MethodLLCAddress,
			}
		}
	}

	if normalize.IsPersonName(name1) && normalize.IsPersonName(name2) {
		if m, ok := comparePersonNames(n1, n2); ok {
			return m
		}
	}

	return model.Match{Match: false, Confidence: lev, Method: model.MethodNoMatch}
}

// comparePersonNames fires only when both normalized names share a last
// token longer than 2 characters; first-initial agreement decides the
// verdict.
func comparePersonNames(n1, n2 string) (model.Match, bool) {
	t1 := strings.Fields(n1)
	t2 := strings.Fields(n2)
	if len(t1) < 2 || len(t2) < 2 {
		return model.Match{}, false
	}

	last1 := t1[len(t1)-1]
	last2 := t2[len(t2)-1]
	if last1 != last2 || utf8.RuneCountInString(last1) <= 2 {
		return model.Match{}, false
	}

	init1, _ := utf8.DecodeRuneInString(t1[0])
	init2, _ := utf8.DecodeRuneInString(t2[0])
	if init1 == init2 {
		return model.Match{
			Match:      true,
			Confidence: lastNameInitialScore,
			Method:     model.MethodLastNameFirstInit,
		}, true
	}
	return model.Match{
		Match:      false,
		Confidence: lastNameOnlyScore,
		Method:     model.MethodLastNameOnly,
	}, true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
