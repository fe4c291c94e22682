package fhirtext

import (
	"fmt"
	"io"
	"strings"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// Telecoms renders a contact point list (e.g. Practitioner.telecom):
//
//	phone:
//		work phone : (505) 555 1212
//	url:
//		home url : http://www.juliahart.com/about/
//
// In [HTML] style url contact points become anchors with a quoted, escaped
// href: <a href="value">value</a>. A contact point with a period start gets
// " Valid: start - end" on its value line, the bounds separated by " - ".
// A nil slice returns [ErrNilInput].
func Telecoms(contacts []fhir.ContactPoint, style Style) (string, error) {
	if contacts == nil {
		return "", fmt.Errorf("%w: contacts", ErrNilInput)
	}
	l, err := layoutFor(style)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, contact := range contacts {
		if err := writeContact(&b, l, contact); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func writeContact(w io.Writer, l layout, contact fhir.ContactPoint) error {
	system := code(contact.System)
	value := str(contact.Value)
	if _, err := io.WriteString(w, l.indent+l.text(system)+":"+l.newline); err != nil {
		return err
	}

	var line string
	if l.html && contact.System != nil && *contact.System == fhir.ContactPointSystemUrl {
		href := l.text(value)
		line = fmt.Sprintf(`url: <a href="%s">%s</a>`, href, href)
	} else {
		line = l.text(labels(code(contact.Use), system)) + " : " + l.text(value)
	}
	if contact.Period != nil && contact.Period.Start != nil {
		if v := validity(contact.Period); v != "" {
			line += " " + l.text(v)
		}
	}
	_, err := io.WriteString(w, l.indent+line+l.newline)
	return err
}
