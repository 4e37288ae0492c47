package productions

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// MetadataRow is one document's worth of production metadata.
type MetadataRow struct {
	Bates     string
	Title     string
	Custodian string
	FileType  string
	SizeBytes int64
	Redacted  bool
}

// RenderMetadataXLSX builds the optional metadata report workbook: one row
// per produced document.
func RenderMetadataXLSX(setName string, rows []MetadataRow) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Production"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"Bates", "Title", "Custodian", "File Type", "Size (bytes)", "Redacted"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, row.Bates)
		write(2, row.Title)
		write(3, row.Custodian)
		write(4, row.FileType)
		write(5, row.SizeBytes)
		redacted := "No"
		if row.Redacted {
			redacted = "Yes"
		}
		write(6, redacted)
	}

	_ = f.SetColWidth(sheet, "A", "A", 16)
	_ = f.SetColWidth(sheet, "B", "B", 40)
	_ = f.SetColWidth(sheet, "C", "C", 24)
	_ = f.SetColWidth(sheet, "D", "F", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write for %q: %w", setName, err)
	}
	return buf.Bytes(), nil
}
