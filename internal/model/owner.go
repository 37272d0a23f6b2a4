package model

// Source labels for the public-record datasets that supply owner name
// candidates, in priority order (lower = more authoritative).
const (
	SourceRegistrationIndividual = "registration_individual"
	SourceRegistrationCorporate  = "registration_corporate"
	SourceDeed                   = "deed"
	SourceAssessment             = "assessment"
	SourceTaxRoll                = "tax_roll"
)

// SourceName is a single owner-name candidate tagged with its source
// dataset and priority. Constructed fresh per resolution call.
type SourceName struct {
	Name     string `json:"name" yaml:"name"`
	Source   string `json:"source" yaml:"source"`
	Priority int    `json:"priority" yaml:"priority"`
}

// AgentContact carries the registered agent / managing agent contact
// details supplied alongside registration-roll records, when available.
type AgentContact struct {
	Name           string `json:"name" yaml:"name"`
	Phone          string `json:"phone" yaml:"phone"`
	Email          string `json:"email" yaml:"email"`
	MailingAddress string `json:"mailing_address" yaml:"mailing_address"`
}

// OwnerSources groups the raw owner-name candidates gathered from each
// public-record dataset for one property.
type OwnerSources struct {
	RegistrationIndividuals []string      `json:"registration_individuals" yaml:"registration_individuals"`
	RegistrationCorporates  []string      `json:"registration_corporates" yaml:"registration_corporates"`
	DeedGrantees            []string      `json:"deed_grantees" yaml:"deed_grantees"`
	AssessmentOwner         string        `json:"assessment_owner" yaml:"assessment_owner"`
	TaxRollOwner            string        `json:"tax_roll_owner" yaml:"tax_roll_owner"`
	Agent                   *AgentContact `json:"agent,omitempty" yaml:"agent,omitempty"`
}

// Flatten returns all candidate names as SourceName entries in priority
// order: registration roll (1), deed grantees (2), assessment (3), tax
// roll (4). Blank names are skipped.
func (s OwnerSources) Flatten() []SourceName {
	var out []SourceName
	add := func(name, source string, priority int) {
		if name == "" {
			return
		}
		out = append(out, SourceName{Name: name, Source: source, Priority: priority})
	}
	for _, n := range s.RegistrationIndividuals {
		add(n, SourceRegistrationIndividual, 1)
	}
	for _, n := range s.RegistrationCorporates {
		add(n, SourceRegistrationCorporate, 1)
	}
	for _, n := range s.DeedGrantees {
		add(n, SourceDeed, 2)
	}
	add(s.AssessmentOwner, SourceAssessment, 3)
	add(s.TaxRollOwner, SourceTaxRoll, 4)
	return out
}

// ResolvedOwner is the reconciled identity behind a property, assembled
// from multi-source candidates. If EntityName is non-empty, Sources is
// non-empty and Confidence is at least 40.
type ResolvedOwner struct {
	EntityName     string   `json:"entity_name" yaml:"entity_name"`
	LikelyPerson   string   `json:"likely_person" yaml:"likely_person"`
	LLCName        string   `json:"llc_name" yaml:"llc_name"`
	Phone          string   `json:"phone" yaml:"phone"`
	Email          string   `json:"email" yaml:"email"`
	MailingAddress string   `json:"mailing_address" yaml:"mailing_address"`
	Confidence     int      `json:"confidence" yaml:"confidence"`
	Sources        []string `json:"sources" yaml:"sources"`
	AlternateNames []string `json:"alternate_names" yaml:"alternate_names"`
}

// PropertyOwner pairs a property identifier with its raw owner name, the
// input unit for portfolio grouping.
type PropertyOwner struct {
	ID        string `json:"id" yaml:"id"`
	OwnerName string `json:"owner_name" yaml:"owner_name"`
}
