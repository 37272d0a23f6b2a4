// Package owner reconciles the owner names a property carries across
// public-record sources into a single resolved identity, and groups
// properties into portfolios held by the same owner.
package owner

import (
	"sort"

	"go.uber.org/zap"

	"github.com/propwire/resolve-cli/internal/match"
	"github.com/propwire/resolve-cli/internal/model"
	"github.com/propwire/resolve-cli/internal/normalize"
)

// cluster collects source names that all matched the cluster seed.
type cluster struct {
	seed    string // raw name of the first member
	members []model.SourceName
}

func (c *cluster) minPriority() int {
	p := c.members[0].Priority
	for _, m := range c.members[1:] {
		if m.Priority < p {
			p = m.Priority
		}
	}
	return p
}

// displayName returns the member from the most authoritative source,
// preferring earlier members on ties.
func (c *cluster) displayName() string {
	best := c.members[0]
	for _, m := range c.members[1:] {
		if m.Priority < best.Priority {
			best = m
		}
	}
	return best.Name
}

func (c *cluster) distinctSources() []string {
	seen := make(map[string]bool, len(c.members))
	var out []string
	for _, m := range c.members {
		if !seen[m.Source] {
			seen[m.Source] = true
			out = append(out, m.Source)
		}
	}
	return out
}

// Resolve reconciles every owner name attached to a property into one
// identity. Names are clustered greedily in source-priority order: each
// name joins the first existing cluster whose seed it matches, else it
// seeds a new cluster. The largest cluster wins; confidence grows with
// the number of independent sources that agree.
func Resolve(src model.OwnerSources) model.ResolvedOwner {
	return ResolveNames(src.Flatten(), src.Agent)
}

// ResolveNames is the flat-list form of Resolve, for callers that carry
// already-prioritized (name, source, priority) rows.
func ResolveNames(names []model.SourceName, agent *model.AgentContact) model.ResolvedOwner {
	if len(names) == 0 {
		return model.ResolvedOwner{}
	}

	sorted := make([]model.SourceName, len(names))
	copy(sorted, names)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	names = sorted

	var clusters []*cluster
	for _, sn := range names {
		placed := false
		for _, c := range clusters {
			if m := match.SameEntity(c.seed, sn.Name); m.Match {
				c.members = append(c.members, sn)
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, &cluster{seed: sn.Name, members: []model.SourceName{sn}})
		}
	}

	winner := clusters[0]
	for _, c := range clusters[1:] {
		switch {
		case len(c.members) > len(winner.members):
			winner = c
		case len(c.members) == len(winner.members) && c.minPriority() < winner.minPriority():
			winner = c
		}
	}

	display := winner.displayName()
	sources := winner.distinctSources()
	confidence := 40 + 20*len(sources)
	if confidence > 100 {
		confidence = 100
	}

	resolved := model.ResolvedOwner{
		EntityName: display,
		Confidence: confidence,
		Sources:    sources,
	}

	// Every collected spelling whose normalized form differs from the
	// display name is kept, deduplicated on the raw string only.
	displayNorm := normalize.Name(display)
	seenAlt := map[string]bool{display: true}
	for _, sn := range names {
		if seenAlt[sn.Name] || normalize.Name(sn.Name) == displayNorm {
			continue
		}
		seenAlt[sn.Name] = true
		resolved.AlternateNames = append(resolved.AlternateNames, sn.Name)
	}

	classify(&resolved, names, agent)

	zap.L().Debug("owner resolved",
		zap.String("entity", resolved.EntityName),
		zap.Int("confidence", resolved.Confidence),
		zap.Int("clusters", len(clusters)),
		zap.Strings("sources", sources))
	return resolved
}

// classify decides whether the resolved name denotes a company or a
// person, searches the remaining collected names for the complementary
// identity, and fills contact details from the registration agent when
// the record carries one.
func classify(r *model.ResolvedOwner, names []model.SourceName, agent *model.AgentContact) {
	switch {
	case normalize.IsEntityName(r.EntityName):
		r.LLCName = r.EntityName
		for _, sn := range names {
			if normalize.IsPersonName(sn.Name) {
				r.LikelyPerson = sn.Name
				break
			}
		}
	case normalize.IsPersonName(r.EntityName):
		r.LikelyPerson = r.EntityName
		for _, sn := range names {
			if normalize.IsEntityName(sn.Name) {
				r.LLCName = sn.Name
				break
			}
		}
	}

	if agent == nil {
		return
	}
	r.Phone = agent.Phone
	r.Email = agent.Email
	r.MailingAddress = agent.MailingAddress
	if r.LikelyPerson == "" && normalize.IsPersonName(agent.Name) {
		r.LikelyPerson = agent.Name
	}
}
