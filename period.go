package fhirtext

import "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"

// periodBounds renders "start - end" when both bounds are set, otherwise
// whichever bound exists. A nil or empty period renders as "".
func periodBounds(p *fhir.Period) string {
	if p == nil {
		return ""
	}
	start, end := str(p.Start), str(p.End)
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start
	default:
		return end
	}
}

// validity renders the "Valid: ..." annotation of a period, or "".
func validity(p *fhir.Period) string {
	bounds := periodBounds(p)
	if bounds == "" {
		return ""
	}
	return "Valid: " + bounds
}
