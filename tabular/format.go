package tabular

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies one of the supported tabular file formats.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
	FormatJSON  Format = "json"
)

// ParseFormat normalizes a user-supplied format tag. Matching is
// case-insensitive; an empty value defaults to CSV.
func ParseFormat(value string) (Format, error) {
	normalized := strings.TrimSpace(strings.ToLower(value))
	switch normalized {
	case "":
		return FormatCSV, nil
	case "csv":
		return FormatCSV, nil
	case "excel":
		return FormatExcel, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid file type specified: %s", value)
	}
}

// DetectFormat infers a format from the path's extension. Returns false
// when the extension is not recognized.
func DetectFormat(path string) (Format, bool) {
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv":
		return FormatCSV, true
	case "xlsx", "xlsm", "xls":
		return FormatExcel, true
	case "json":
		return FormatJSON, true
	default:
		return "", false
	}
}
