package model

import "strings"

// Address holds the structured components of a normalized street address.
// Empty string means the component was absent from the raw input.
type Address struct {
	Number  string `json:"number"`
	Street  string `json:"street"`
	Unit    string `json:"unit"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Borough string `json:"borough"`
	Raw     string `json:"raw"`
}

// OneLine reassembles the parsed components into a single display line.
func (a Address) OneLine() string {
	parts := []string{a.Number + " " + a.Street, a.Unit, a.City, a.State, a.Zip}
	var nonEmpty []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
