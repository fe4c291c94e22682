package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

func writeCSV(w io.Writer, summaries []Summary) error {
	if len(summaries) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return err
	}
	for _, s := range summaries {
		if err := cw.Write(s.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTSV(w io.Writer, summaries []Summary) error {
	if len(summaries) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, strings.Join(summaryHeader, "\t")); err != nil {
		return err
	}
	for _, s := range summaries {
		if _, err := fmt.Fprintln(w, strings.Join(s.Row(), "\t")); err != nil {
			return err
		}
	}
	return nil
}
