package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is a titled table written as one worksheet.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// Workbook writes the sheets to an xlsx file in memory.
func Workbook(sheets ...Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DCE6F1"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", sheet.Name, err)
		}

		header := make([]interface{}, len(sheet.Headers))
		for j, h := range sheet.Headers {
			header[j] = h
		}
		if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
		if len(sheet.Headers) > 0 {
			last, _ := excelize.CoordinatesToCellName(len(sheet.Headers), 1)
			if err := f.SetCellStyle(sheet.Name, "A1", last, headerStyle); err != nil {
				return nil, fmt.Errorf("style header: %w", err)
			}
			lastCol, _ := excelize.ColumnNumberToName(len(sheet.Headers))
			if err := f.SetColWidth(sheet.Name, "A", lastCol, 18); err != nil {
				return nil, fmt.Errorf("set column width: %w", err)
			}
		}

		for r, row := range sheet.Rows {
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			values := row
			if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
				return nil, fmt.Errorf("write row %d: %w", r+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
