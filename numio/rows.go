// Package numio reads numeric input from CSV files and rasters and writes
// aggregate results as CSV, Parquet or a text table.
package numio

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"mathplus/numutil"

	"github.com/olekukonko/tablewriter"
)

// Row is one named result. Kind is the numutil.Kind name; Value is 0 unless
// Kind is "value".
type Row struct {
	Name  string  `parquet:"name"`
	Value float64 `parquet:"value"`
	Kind  string  `parquet:"kind"`
}

func RowOf(name string, r numutil.Result) Row {
	v, _ := r.Float()
	return Row{Name: name, Value: v, Kind: r.Kind().String()}
}

// WriteRows picks the output format from the file extension.
func WriteRows(rows []Row, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return WriteToCSV(rows, path)
	case ".parquet", ".pq":
		return WriteToParquet(rows, path)
	}
	return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
}

// WriteTable renders rows as a text table.
func WriteTable(w io.Writer, rows []Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Value"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, row := range rows {
		value := row.Kind
		if row.Kind == numutil.KindValue.String() {
			value = strconv.FormatFloat(row.Value, 'g', -1, 64)
		}
		table.Append([]string{row.Name, value})
	}
	table.Render()
}
