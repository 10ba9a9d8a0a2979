package loader

import (
	"tabload/tabular"
)

// reader parses one file format into a dataset. Implementations report
// failures via *NotFoundError or *ParseError so Load can propagate them
// unchanged.
type reader interface {
	Read(path string) (*tabular.Dataset, error)
}

func readerForFormat(format tabular.Format) reader {
	switch format {
	case tabular.FormatExcel:
		return &excelReader{}
	case tabular.FormatJSON:
		return &jsonReader{}
	default:
		return &csvReader{}
	}
}
