package owner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propwire/resolve-cli/internal/model"
)

func TestResolve_TwoAgreeingSources(t *testing.T) {
	src := model.OwnerSources{
		RegistrationIndividuals: []string{"Jane Doe"},
		AssessmentOwner:         "JANE DOE",
	}

	r := Resolve(src)
	assert.Equal(t, "Jane Doe", r.EntityName)
	assert.Equal(t, 80, r.Confidence)
	assert.ElementsMatch(t, []string{
		model.SourceRegistrationIndividual,
		model.SourceAssessment,
	}, r.Sources)
	assert.Equal(t, "Jane Doe", r.LikelyPerson)
	assert.Empty(t, r.LLCName)
	assert.Empty(t, r.AlternateNames)
}

func TestResolve_Empty(t *testing.T) {
	r := Resolve(model.OwnerSources{})
	assert.Equal(t, model.ResolvedOwner{}, r)
}

func TestResolve_LargestClusterWins(t *testing.T) {
	src := model.OwnerSources{
		RegistrationCorporates: []string{"Acme Holdings LLC"},
		DeedGrantees:           []string{"ACME HOLDINGS L.L.C."},
		AssessmentOwner:        "Parkside Realty Corp",
		TaxRollOwner:           "Acme Holdings",
	}

	r := Resolve(src)
	assert.Equal(t, "Acme Holdings LLC", r.EntityName)
	assert.Len(t, r.Sources, 3)
	assert.Equal(t, 100, r.Confidence)
	require.Len(t, r.AlternateNames, 1)
	assert.Equal(t, "Parkside Realty Corp", r.AlternateNames[0])
}

func TestResolve_TieBreakByPriority(t *testing.T) {
	// Two size-1 clusters: the one from the more authoritative source wins.
	src := model.OwnerSources{
		DeedGrantees: []string{"Alpha Properties LLC"},
		TaxRollOwner: "Beta Realty Corp",
	}

	r := Resolve(src)
	assert.Equal(t, "Alpha Properties LLC", r.EntityName)
	assert.Equal(t, 60, r.Confidence)
}

func TestResolve_DisplayNameFromLowestPriority(t *testing.T) {
	// Tax-roll name appears first in flattening only within its priority;
	// the deed name outranks it for display.
	src := model.OwnerSources{
		DeedGrantees: []string{"Brookdale Partners LLC"},
		TaxRollOwner: "BROOKDALE PARTNERS",
	}

	r := Resolve(src)
	assert.Equal(t, "Brookdale Partners LLC", r.EntityName)
}

func TestResolve_EntityClassificationWithPersonCandidate(t *testing.T) {
	src := model.OwnerSources{
		RegistrationIndividuals: []string{"Robert Klein"},
		RegistrationCorporates:  []string{"Klein Properties LLC", "KLEIN PROPERTIES LLC"},
		AssessmentOwner:         "Klein Properties",
	}

	r := Resolve(src)
	assert.Equal(t, "Klein Properties LLC", r.LLCName)
	assert.Equal(t, "Robert Klein", r.LikelyPerson)
}

func TestResolve_AgentContactFallback(t *testing.T) {
	src := model.OwnerSources{
		RegistrationCorporates: []string{"88 Grand Ave Holdings LLC"},
		Agent: &model.AgentContact{
			Name:           "Sarah Chen",
			Phone:          "212-555-0142",
			Email:          "schen@example.com",
			MailingAddress: "88 Grand Ave, Brooklyn NY 11205",
		},
	}

	r := Resolve(src)
	assert.Equal(t, "88 Grand Ave Holdings LLC", r.LLCName)
	assert.Equal(t, "Sarah Chen", r.LikelyPerson)
	assert.Equal(t, "212-555-0142", r.Phone)
	assert.Equal(t, "schen@example.com", r.Email)
	assert.Equal(t, "88 Grand Ave, Brooklyn NY 11205", r.MailingAddress)
}

func TestResolve_AlternatesKeepDistinctSpellings(t *testing.T) {
	// Two raw spellings of the losing cluster share a normalized form;
	// both are recorded, only exact raw duplicates collapse.
	src := model.OwnerSources{
		RegistrationIndividuals: []string{"Jane Doe"},
		DeedGrantees:            []string{"Doe Holdings LLC"},
		AssessmentOwner:         "JANE DOE",
		TaxRollOwner:            "DOE HOLDINGS, L.L.C.",
	}

	r := Resolve(src)
	assert.Equal(t, "Jane Doe", r.EntityName)
	assert.Equal(t, []string{"Doe Holdings LLC", "DOE HOLDINGS, L.L.C."}, r.AlternateNames)
}

func TestResolve_ConfidenceCappedAt100(t *testing.T) {
	src := model.OwnerSources{
		RegistrationIndividuals: []string{"Jane Doe"},
		DeedGrantees:            []string{"JANE DOE"},
		AssessmentOwner:         "Jane Doe",
		TaxRollOwner:            "DOE, JANE",
	}

	r := Resolve(src)
	assert.LessOrEqual(t, r.Confidence, 100)
	assert.GreaterOrEqual(t, r.Confidence, 80)
}
