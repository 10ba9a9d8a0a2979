package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"tabload/tabular"
)

type JSONWriter struct{}

// Write emits an array of records. json.Marshal sorts map keys, which
// would scramble the column order, so objects are assembled by hand from
// the dataset's column list.
func (w *JSONWriter) Write(path string, dataset *tabular.Dataset) error {
	var buf bytes.Buffer
	buf.WriteString("[")

	for i, row := range dataset.Rows {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  {")
		for col, column := range dataset.Columns {
			if col > 0 {
				buf.WriteString(",")
			}
			name, err := json.Marshal(column)
			if err != nil {
				return fmt.Errorf("encode json column name %q: %w", column, err)
			}
			value, err := json.Marshal(row[column])
			if err != nil {
				return fmt.Errorf("encode json value for %q: %w", column, err)
			}
			buf.Write(name)
			buf.WriteString(": ")
			buf.Write(value)
		}
		buf.WriteString("}")
	}

	if len(dataset.Rows) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write json output %s: %w", path, err)
	}

	return nil
}
