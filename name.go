package fhirtext

import (
	"fmt"
	"io"
	"strings"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// HumanNames renders a list of names (e.g. Patient.name), one per line, taking
// prefixes, suffixes and the validity period into account.
//
// With [LastFirst] a name reads "Family  Suffix, Prefix Given"; with [Natural]
// it reads "Prefix Given  Family  Suffix". A nil slice returns [ErrNilInput].
func HumanNames(names []fhir.HumanName, style Style, order Order) (string, error) {
	if names == nil {
		return "", fmt.Errorf("%w: names", ErrNilInput)
	}
	l, err := layoutFor(style)
	if err != nil {
		return "", err
	}
	if order != LastFirst && order != Natural {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedOrder, order)
	}
	var b strings.Builder
	for _, name := range names {
		if err := writeName(&b, l, order, name); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func writeName(w io.Writer, l layout, order Order, name fhir.HumanName) error {
	last := lastPart(l, name)
	first := firstPart(l, name)

	line := l.indent
	if use := code(name.Use); use != "" {
		line += l.text(use) + ": "
	}
	if order == Natural {
		line += first + " " + last
	} else {
		line += last + ", " + first
	}
	_, err := io.WriteString(w, line+l.newline)
	return err
}

// lastPart is the family name, the suffixes and the validity annotation.
func lastPart(l layout, name fhir.HumanName) string {
	var b strings.Builder
	if name.Family != nil {
		b.WriteString(l.text(*name.Family) + " ")
	}
	if len(name.Suffix) > 0 {
		b.WriteString(" " + l.text(strings.Join(name.Suffix, " ")))
	}
	if v := validity(name.Period); v != "" {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), " ") {
			b.WriteString(" ")
		}
		b.WriteString(l.text(v))
	}
	return b.String()
}

// firstPart is every prefix and given name, each followed by a space.
func firstPart(l layout, name fhir.HumanName) string {
	var b strings.Builder
	for _, prefix := range name.Prefix {
		b.WriteString(l.text(prefix) + " ")
	}
	for _, given := range name.Given {
		b.WriteString(l.text(given) + " ")
	}
	return b.String()
}
