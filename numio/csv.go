package numio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"mathplus/numutil"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// ReadCSVColumn reads one column of numbers. Cells that are not numbers, such
// as a header or blanks, are skipped, as are rows too short for the column.
func ReadCSVColumn(r io.Reader, column int) (numutil.Values, error) {
	if column < 0 {
		return nil, fmt.Errorf("column index %d out of range", column)
	}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var vals numutil.Values
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv line %d: %w", line, err)
		}
		if column >= len(record) {
			logrus.Debugf("Line %d has no column %d", line, column)
			continue
		}
		cell := strings.TrimSpace(record[column])
		if !numutil.IsNumber(cell) {
			logrus.Debugf("Skipping non-numeric cell %q on line %d", cell, line)
			continue
		}
		vals = append(vals, cast.ToFloat64(cell))
	}
	return vals, nil
}

func ReadCSVFile(path string, column int) (numutil.Values, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.Error(err)
		}
	}()
	return ReadCSVColumn(f, column)
}

func WriteToCSV(rows []Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.Error(err)
		}
	}()

	if err := writeCSV(f, rows); err != nil {
		return err
	}
	return f.Sync()
}

func writeCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"name", "value", "kind"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.Name, strconv.FormatFloat(row.Value, 'g', -1, 64), row.Kind}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
