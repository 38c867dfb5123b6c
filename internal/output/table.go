package output

import (
	"fmt"
	"io"
	"strings"
)

// ColumnWidths computes the display width of each column: the maximum
// printed width over the header label and every row value in that
// column. A row missing one of the columns is an error.
func ColumnWidths(columns []string, rows []map[string]any) (map[string]int, error) {
	widths := make(map[string]int, len(columns))
	for _, col := range columns {
		widths[col] = len(col)
	}
	for _, row := range rows {
		for _, col := range columns {
			v, ok := row[col]
			if !ok {
				return nil, fmt.Errorf("row missing column %q", col)
			}
			if w := len(cell(v)); w > widths[col] {
				widths[col] = w
			}
		}
	}
	return widths, nil
}

// RenderTable prints a header line, a dash separator sized to each
// column, and one line per row, all left-justified with a single space
// between columns.
func RenderTable(w io.Writer, columns []string, rows []map[string]any) error {
	widths, err := ColumnWidths(columns, rows)
	if err != nil {
		return err
	}

	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = pad(col, widths[col])
	}
	fmt.Fprintln(w, strings.Join(cells, " "))

	for i, col := range columns {
		cells[i] = strings.Repeat("-", widths[col])
	}
	fmt.Fprintln(w, strings.Join(cells, " "))

	for _, row := range rows {
		for i, col := range columns {
			cells[i] = pad(cell(row[col]), widths[col])
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
	return nil
}

// cell converts a value to its printed form. %v renders integral
// float64 values (the shape JSON numbers decode to) without a fraction.
func cell(v any) string {
	return fmt.Sprintf("%v", v)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
