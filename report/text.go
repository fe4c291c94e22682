package report

import (
	"html"
	"io"

	"github.com/bjaus/fhirtext"
)

type section struct {
	label  string
	render func() (string, error)
}

func writeBlocks(w io.Writer, style fhirtext.Style, opts Options, records []fhirtext.Record) error {
	newline, escape := "\n", func(s string) string { return s }
	if style == fhirtext.HTML {
		newline, escape = "<br>\n", html.EscapeString
	}
	if opts.Title != "" {
		if _, err := io.WriteString(w, escape(opts.Title)+newline+newline); err != nil {
			return err
		}
	}
	for i, rec := range records {
		if i > 0 {
			if _, err := io.WriteString(w, newline); err != nil {
				return err
			}
		}
		ref := rec.Type
		if rec.ID != "" {
			ref = rec.Resource.String()
		}
		if _, err := io.WriteString(w, escape(ref)+newline); err != nil {
			return err
		}
		for _, s := range recordSections(rec, style, opts.Order) {
			block, err := s.render()
			if err != nil {
				return err
			}
			if _, err := io.WriteString(w, s.label+":"+newline+block); err != nil {
				return err
			}
		}
	}
	return nil
}

// recordSections lists the blocks present in rec. Absent fields have no section.
func recordSections(rec fhirtext.Record, style fhirtext.Style, order fhirtext.Order) []section {
	var sections []section
	if rec.Name != nil {
		sections = append(sections, section{"Name", func() (string, error) {
			return fhirtext.HumanNames(rec.Name, style, order)
		}})
	}
	if rec.Address != nil {
		sections = append(sections, section{"Address", func() (string, error) {
			return fhirtext.Addresses(rec.Address, style)
		}})
	}
	if rec.Telecom != nil {
		sections = append(sections, section{"Telecom", func() (string, error) {
			return fhirtext.Telecoms(rec.Telecom, style)
		}})
	}
	return sections
}
