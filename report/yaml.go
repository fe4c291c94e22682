package report

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, summaries []Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	var v any = summaries
	if len(summaries) == 1 {
		v = summaries[0]
	}
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
