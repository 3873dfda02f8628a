package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"bananadb/internal/domain"
)

const sheetName = "Listings"

// WriteXLSX renders the listings as a single-sheet workbook and writes
// it to w. Column set and ordering match the CSV export.
func WriteXLSX(w io.Writer, listings []domain.CarListing) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("export.WriteXLSX: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("export.WriteXLSX: %w", err)
		}
	}

	for i := range listings {
		row := listingToRow(&listings[i])
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("export.WriteXLSX: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("export.WriteXLSX: %w", err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}
	return nil
}
