package tabular

import (
	"fmt"
	"strconv"
)

// Row maps a column name to the cell value stored in the source file.
// CSV and Excel cells are strings; JSON cells keep the decoded type
// (string, float64, bool, or nil for an explicit null / missing key).
type Row map[string]any

// Get returns the value for a column, or nil if the row has no such cell.
func (r Row) Get(column string) any {
	return r[column]
}

// Dataset is an in-memory tabular structure: an ordered column list from
// the source file's header row plus the data rows beneath it. The loader
// fills it exactly as stored in the file and never mutates it afterwards.
type Dataset struct {
	Columns []string
	Rows    []Row
}

func (d *Dataset) NumRows() int {
	return len(d.Rows)
}

func (d *Dataset) NumCols() int {
	return len(d.Columns)
}

// FormatValue renders a cell value for text output. Strings pass through
// unchanged, nil becomes the empty string, numbers and booleans use their
// canonical Go formatting.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
