package fhirtext

import (
	"fmt"
	"io"
	"strings"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// Addresses renders an address list (e.g. Patient.address). Each address
// starts with a "<type> <use>:" header; every street line is followed by the
// "<city>, <state> <postalCode>" line.
//
//	postal home:
//		202 Clinton St.
//		Woburn, MA 01807
//
// A nil slice returns [ErrNilInput].
func Addresses(addresses []fhir.Address, style Style) (string, error) {
	if addresses == nil {
		return "", fmt.Errorf("%w: addresses", ErrNilInput)
	}
	l, err := layoutFor(style)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, addr := range addresses {
		if err := writeAddress(&b, l, addr); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func writeAddress(w io.Writer, l layout, addr fhir.Address) error {
	header := labels(code(addr.Type), code(addr.Use))
	if _, err := io.WriteString(w, l.text(header)+":"+l.newline); err != nil {
		return err
	}
	locality := l.text(cityLine(addr))
	for _, line := range addr.Line {
		if _, err := io.WriteString(w, l.indent+l.text(line)+l.newline); err != nil {
			return err
		}
		// The locality line follows every street line.
		if _, err := io.WriteString(w, l.indent+locality+l.newline); err != nil {
			return err
		}
	}
	return nil
}

// cityLine renders "<city>, <state> <postalCode>", leaving out absent parts.
func cityLine(addr fhir.Address) string {
	city := str(addr.City)
	region := labels(str(addr.State), str(addr.PostalCode))
	if city != "" && region != "" {
		return city + ", " + region
	}
	return city + region
}
