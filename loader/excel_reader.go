package loader

import (
	"errors"
	"io/fs"

	"github.com/xuri/excelize/v2"

	"tabload/tabular"
)

type excelReader struct{}

func (r *excelReader) Read(path string) (*tabular.Dataset, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, &NotFoundError{Path: path, Format: tabular.FormatExcel, Err: err}
		}
		return nil, &ParseError{Path: path, Format: tabular.FormatExcel, Err: err}
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return nil, &ParseError{Path: path, Format: tabular.FormatExcel, Err: errors.New("file has no sheets")}
	}

	cells, err := file.GetRows(sheet)
	if err != nil {
		return nil, &ParseError{Path: path, Format: tabular.FormatExcel, Err: err}
	}
	if len(cells) == 0 {
		return nil, &ParseError{Path: path, Format: tabular.FormatExcel, Err: errors.New("file is empty")}
	}

	columns := make([]string, len(cells[0]))
	copy(columns, cells[0])

	rows := make([]tabular.Row, 0, len(cells)-1)
	for _, record := range cells[1:] {
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
