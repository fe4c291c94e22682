package report

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, summaries []Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(summaries) == 1 {
		return enc.Encode(summaries[0])
	}
	return enc.Encode(summaries)
}

func writeJSONL(w io.Writer, summaries []Summary) error {
	enc := json.NewEncoder(w)
	for _, s := range summaries {
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return nil
}
