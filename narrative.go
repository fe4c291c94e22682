package fhirtext

import (
	"strings"

	"github.com/k3a/html2text"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// NarrativeText converts the XHTML of a resource narrative to plain text.
func NarrativeText(n *fhir.Narrative) string {
	if n == nil || n.Div == "" {
		return ""
	}
	return strings.TrimSpace(html2text.HTML2TextWithOptions(n.Div, html2text.WithUnixLineBreaks()))
}
