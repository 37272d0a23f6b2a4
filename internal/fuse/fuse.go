// Package fuse reconciles a single field's value across multiple
// public-record sources, scoring the winner by how many sources agree.
package fuse

import (
	"reflect"
	"sort"
)

// SourceValue is one source's reading of a field.
type SourceValue[T any] struct {
	Value    T      `json:"value" yaml:"value"`
	Source   string `json:"source" yaml:"source"`
	Priority int    `json:"priority" yaml:"priority"`
}

// Alternate is a dissenting value kept alongside the winner.
type Alternate[T any] struct {
	Value  T      `json:"value" yaml:"value"`
	Source string `json:"source" yaml:"source"`
}

// ConfidentValue is the reconciled reading of a field.
type ConfidentValue[T any] struct {
	Value           T              `json:"value" yaml:"value"`
	Source          string         `json:"source" yaml:"source"`
	Confidence      int            `json:"confidence" yaml:"confidence"`
	AlternateValues []Alternate[T] `json:"alternateValues,omitempty" yaml:"alternateValues,omitempty"`
}

// Resolve picks the most authoritative value: entries are ordered by
// ascending priority and the first becomes primary. Confidence starts
// at 60, gains 15 per additional agreeing source and loses 5 per
// disagreeing one, clamped to [30, 100]. Returns nil only for empty
// input. eq may be nil, in which case values compare by deep equality.
func Resolve[T any](entries []SourceValue[T], eq func(a, b T) bool) *ConfidentValue[T] {
	if len(entries) == 0 {
		return nil
	}
	if eq == nil {
		eq = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}

	sorted := make([]SourceValue[T], len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	primary := sorted[0]
	agreeing := 0
	var alternates []Alternate[T]
	for _, e := range sorted {
		if eq(e.Value, primary.Value) {
			agreeing++
		} else {
			alternates = append(alternates, Alternate[T]{Value: e.Value, Source: e.Source})
		}
	}

	confidence := 60 + 15*(agreeing-1) - 5*len(alternates)
	if confidence < 30 {
		confidence = 30
	}
	if confidence > 100 {
		confidence = 100
	}

	return &ConfidentValue[T]{
		Value:           primary.Value,
		Source:          primary.Source,
		Confidence:      confidence,
		AlternateValues: alternates,
	}
}
