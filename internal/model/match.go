package model

// MatchMethod identifies which step of the entity matching cascade produced a verdict.
type MatchMethod string

const (
	MethodEmpty               MatchMethod = "empty"
	MethodEmptyAfterNormalize MatchMethod = "empty_after_normalize"
	MethodExact               MatchMethod = "exact"
	MethodContainment         MatchMethod = "containment"
	MethodJaroWinkler         MatchMethod = "jaro_winkler"
	MethodLevenshtein         MatchMethod = "levenshtein"
	MethodLLCAddress          MatchMethod = "llc_address"
	MethodLastNameFirstInit   MatchMethod = "last_name_first_initial"
	MethodLastNameOnly        MatchMethod = "last_name_only"
	MethodNoMatch             MatchMethod = "no_match"
)

// Match is the verdict for a single pairwise name comparison.
// Confidence is a heuristic score in [0,100], not a probability.
type Match struct {
	Match      bool        `json:"match" yaml:"match"`
	Confidence int         `json:"confidence" yaml:"confidence"`
	Method     MatchMethod `json:"method" yaml:"method"`
}
