// Package render formats command results for the terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

const noData = "No data to display."

// Table prints rows under a header using aligned columns. An empty row
// set prints a placeholder line instead of a lonely header.
func Table(out io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(out, noData)

		return
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, strings.Join(headers, "\t"))

	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}

	writer.Flush()
}

// Money renders an amount with two decimals, matching printed invoices.
func Money(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// Int renders an integer cell.
func Int(value int) string {
	return strconv.Itoa(value)
}
