package owner

import (
	"go.uber.org/zap"

	"github.com/propwire/resolve-cli/internal/match"
	"github.com/propwire/resolve-cli/internal/model"
	"github.com/propwire/resolve-cli/internal/normalize"
)

// portfolioThreshold is the minimum match confidence for two properties
// to land in the same portfolio.
const portfolioThreshold = 80

// PortfolioGroup is a set of properties held by the same owner. Owner
// carries the normalized name of the property that seeded the group.
type PortfolioGroup struct {
	Owner      string                `json:"owner" yaml:"owner"`
	Properties []model.PropertyOwner `json:"properties" yaml:"properties"`
}

// GroupByOwner partitions properties into portfolios by comparing owner
// names pairwise. Grouping is seeded forward: each ungrouped property
// starts a group and claims every later ungrouped property whose owner
// matches the seed at or above the threshold. Membership is decided
// against the seed only, so two names that both match the seed need not
// match each other. Runs in O(n²) comparisons.
func GroupByOwner(properties []model.PropertyOwner) []PortfolioGroup {
	var groups []PortfolioGroup
	grouped := make([]bool, len(properties))

	for i, seed := range properties {
		if grouped[i] {
			continue
		}
		grouped[i] = true

		label := normalize.Name(seed.OwnerName)
		if label == "" {
			label = seed.OwnerName
		}
		g := PortfolioGroup{
			Owner:      label,
			Properties: []model.PropertyOwner{seed},
		}

		for j := i + 1; j < len(properties); j++ {
			if grouped[j] {
				continue
			}
			m := match.SameEntity(seed.OwnerName, properties[j].OwnerName)
			if m.Match && m.Confidence >= portfolioThreshold {
				grouped[j] = true
				g.Properties = append(g.Properties, properties[j])
			}
		}
		groups = append(groups, g)
	}

	zap.L().Debug("portfolios grouped",
		zap.Int("properties", len(properties)),
		zap.Int("groups", len(groups)))
	return groups
}
