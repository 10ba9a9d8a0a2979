package loader

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"tabload/tabular"
)

type csvReader struct{}

func (r *csvReader) Read(path string) (*tabular.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Format: tabular.FormatCSV, Err: err}
	}
	defer file.Close()

	// Decode with BOM detection so UTF-8 files exported with a BOM (and
	// UTF-16 exports from spreadsheet tools) read transparently.
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	parser := csv.NewReader(transform.NewReader(file, decoder))
	parser.FieldsPerRecord = -1

	headers, err := parser.Read()
	if err == io.EOF {
		return nil, &ParseError{Path: path, Format: tabular.FormatCSV, Err: errors.New("file is empty")}
	}
	if err != nil {
		return nil, &ParseError{Path: path, Format: tabular.FormatCSV, Err: err}
	}

	columns := make([]string, len(headers))
	copy(columns, headers)

	rows := make([]tabular.Row, 0, 128)
	for {
		record, err := parser.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: path, Format: tabular.FormatCSV, Err: err}
		}

		row := make(tabular.Row, len(columns))
		for i, column := range columns {
			if i < len(record) {
				row[column] = record[i]
			} else {
				row[column] = ""
			}
		}

		rows = append(rows, row)
	}

	return &tabular.Dataset{Columns: columns, Rows: rows}, nil
}
