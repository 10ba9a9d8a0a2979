package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"tabload/tabular"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, dataset *tabular.Dataset) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)

	for col, column := range dataset.Columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, column); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, row := range dataset.Rows {
		for col, column := range dataset.Columns {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := file.SetCellValue(sheet, cell, tabular.FormatValue(row[column])); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
