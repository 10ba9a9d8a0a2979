package loader

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"tabload/tabular"
)

type jsonReader struct{}

// Read parses a top-level JSON array of objects. Columns keep the order
// in which keys first appear; the stock decoder loses that order for
// maps, so records are walked token by token instead.
func (r *jsonReader) Read(path string) (*tabular.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Format: tabular.FormatJSON, Err: err}
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	token, err := decoder.Token()
	if err == io.EOF {
		return nil, &ParseError{Path: path, Format: tabular.FormatJSON, Err: errors.New("file is empty")}
	}
	if err != nil {
		return nil, &ParseError{Path: path, Format: tabular.FormatJSON, Err: err}
	}
	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		return nil, &ParseError{Path: path, Format: tabular.FormatJSON, Err: errors.New("expected a top-level array of records")}
	}

	columns := make([]string, 0, 16)
	seen := make(map[string]struct{}, 16)
	rows := make([]tabular.Row, 0, 128)

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, &ParseError{Path: path, Format: tabular.FormatJSON, Err: err}
		}
		if delim, ok := token.(json.Delim); !ok || delim != '{' {
			return nil, &ParseError{Path: path, Format: tabular.FormatJSON, Err: errors.New("array elements must be objects")}
		}

		row := make(tabular.Row, len(columns))
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return nil, &ParseError{Path: path, Format: tabular.FormatJSON, Err: err}
			}
			key, ok := keyToken.(string)
			if !ok {
				return nil, &ParseError{Path: path, Format: tabular.FormatJSON, Err: errors.New("object key is not a string")}
			}

			var value any
			if err := decoder.Decode(&value); err != nil {
				return nil, &ParseError{Path: path, Format: tabular.FormatJSON, Err: err}
			}

			if _, known := seen[key]; !known {
				seen[key] = struct{}{}
				columns = append(columns, key)
			}
			row[key] = value
		}

		// Consume the closing brace.
		if _, err := decoder.Token(); err != nil {
			return nil, &ParseError{Path: path, Format: tabular.FormatJSON, Err: err}
		}

		rows = append(rows, row)
	}

	// Consume the closing bracket and reject trailing garbage.
	if _, err := decoder.Token(); err != nil {
		return nil, &ParseError{Path: path, Format: tabular.FormatJSON, Err: err}
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, &ParseError{Path: path, Format: tabular.FormatJSON, Err: errors.New("trailing data after record array")}
	}

	return &tabular.Dataset{Columns: columns, Rows: rows}, nil
}
