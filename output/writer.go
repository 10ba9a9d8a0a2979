// Package output writes an in-memory dataset back to disk as CSV, Excel,
// or JSON. It is the counterpart of the loader and preserves column order
// and cell values as loaded.
package output

import (
	"fmt"

	"tabload/tabular"
)

type Writer interface {
	Write(path string, dataset *tabular.Dataset) error
}

func WriterForFormat(format tabular.Format) (Writer, error) {
	switch format {
	case tabular.FormatCSV:
		return &CSVWriter{}, nil
	case tabular.FormatExcel:
		return &ExcelWriter{}, nil
	case tabular.FormatJSON:
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
