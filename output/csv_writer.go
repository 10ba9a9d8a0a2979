package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"tabload/tabular"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, dataset *tabular.Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(dataset.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range dataset.Rows {
		record := make([]string, len(dataset.Columns))
		for i, column := range dataset.Columns {
			record[i] = tabular.FormatValue(row[column])
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
