package diversity

import (
	"fmt"
	"io"
	"strings"
)

const (
	tableNameWidth  = 72
	tableValueWidth = 10
)

// WriteTable renders the report as a "description | value" table.
func WriteTable(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintf(w, "%-*s|%*s\n", tableNameWidth, "Метрика", tableValueWidth, "Значение"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", tableNameWidth+tableValueWidth+1)); err != nil {
		return err
	}
	for _, res := range r.Results {
		title, ok := Describe(res.Name)
		if !ok {
			title = res.Name
		}
		if _, err := fmt.Fprintf(w, "%-*s|%*.2f\n", tableNameWidth, title, tableValueWidth, res.Value); err != nil {
			return err
		}
	}
	return nil
}
