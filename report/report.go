// Package report renders FHIR records in several output formats.
//
// The text and html formats print the full name, address and telecom blocks
// of each record. The other formats work on a one-line [Summary] per record:
// json, yaml and jsonl encode it, csv, tsv and markdown write it as a table
// row, and table draws a bordered box sized to the display width of the cells.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/bjaus/fhirtext"
)

// ErrUnsupportedFormat is returned for an unknown format name.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format represents an output format.
type Format string

const (
	Text     Format = "text"
	HTML     Format = "html"
	JSON     Format = "json"
	YAML     Format = "yaml"
	JSONL    Format = "jsonl"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	Table    Format = "table"
)

var formats = []Format{Text, HTML, JSON, YAML, JSONL, CSV, TSV, Markdown, Table}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Options tune the rendering of a report.
type Options struct {
	// Order arranges person names. Default: LastFirst.
	Order fhirtext.Order
	// Title is printed above text, html and table reports.
	Title string
	// MaxWidth truncates table cells wider than MaxWidth with "...".
	// Zero means no limit.
	MaxWidth int
}

// Write renders records in format f and writes them to w.
func Write(w io.Writer, f Format, opts Options, records ...fhirtext.Record) error {
	switch f {
	case Text:
		return writeBlocks(w, fhirtext.Plain, opts, records)
	case HTML:
		return writeBlocks(w, fhirtext.HTML, opts, records)
	}

	summaries, err := SummarizeAll(records, opts.Order)
	if err != nil {
		return err
	}
	switch f {
	case JSON:
		return writeJSON(w, summaries)
	case YAML:
		return writeYAML(w, summaries)
	case JSONL:
		return writeJSONL(w, summaries)
	case CSV:
		return writeCSV(w, summaries)
	case TSV:
		return writeTSV(w, summaries)
	case Markdown:
		return writeMarkdown(w, summaries)
	case Table:
		return writeTable(w, opts, summaries)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders records and returns the bytes.
func Marshal(f Format, opts Options, records ...fhirtext.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, opts, records...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
