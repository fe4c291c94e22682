package report

import (
	"fmt"
	"strings"

	"github.com/bjaus/fhirtext"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// Summary is a record flattened to one line per field. Multiple names,
// addresses or contact points are separated by "; ".
type Summary struct {
	Reference string `json:"reference" yaml:"reference"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Address   string `json:"address,omitempty" yaml:"address,omitempty"`
	Telecom   string `json:"telecom,omitempty" yaml:"telecom,omitempty"`
}

var summaryHeader = []string{"Reference", "Name", "Address", "Telecom"}

// Row returns the cells of the summary in header order.
func (s Summary) Row() []string {
	return []string{s.Reference, s.Name, s.Address, s.Telecom}
}

// Summarize flattens a record. Fields absent from the record give empty cells.
func Summarize(rec fhirtext.Record, order fhirtext.Order) (Summary, error) {
	s := Summary{Reference: rec.Type}
	if rec.ID != "" {
		s.Reference = rec.Resource.String()
	}
	var err error
	if s.Name, err = each(rec.Name, func(names []fhir.HumanName) (string, error) {
		return fhirtext.HumanNames(names, fhirtext.Plain, order)
	}); err != nil {
		return Summary{}, fmt.Errorf("%s: %w", s.Reference, err)
	}
	if s.Address, err = each(rec.Address, func(addresses []fhir.Address) (string, error) {
		return fhirtext.Addresses(addresses, fhirtext.Plain)
	}); err != nil {
		return Summary{}, fmt.Errorf("%s: %w", s.Reference, err)
	}
	if s.Telecom, err = each(rec.Telecom, func(contacts []fhir.ContactPoint) (string, error) {
		return fhirtext.Telecoms(contacts, fhirtext.Plain)
	}); err != nil {
		return Summary{}, fmt.Errorf("%s: %w", s.Reference, err)
	}
	return s, nil
}

// SummarizeAll flattens every record.
func SummarizeAll(records []fhirtext.Record, order fhirtext.Order) ([]Summary, error) {
	out := make([]Summary, 0, len(records))
	for _, rec := range records {
		s, err := Summarize(rec, order)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// each renders every item on its own and joins the flattened blocks.
func each[T any](items []T, render func([]T) (string, error)) (string, error) {
	var parts []string
	for i := range items {
		block, err := render(items[i : i+1])
		if err != nil {
			return "", err
		}
		if s := flatten(block); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "; "), nil
}

// flatten joins the trimmed, non-empty lines of a plain block with a space.
func flatten(block string) string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " ")
}
