package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"formapi/internal/model"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SheetName is the single worksheet holding the exported records.
const SheetName = "Form Submissions"

// Headers are the fixed column titles, in column order.
var Headers = []string{
	"S.No", "Mobile No.", "Shop Name", "Owner Name", "Industry Name",
	"Pin Code", "Address", "City", "District", "State", "Country", "Submitted At",
}

// columnWidths are cosmetic fixed widths per column, in column order.
var columnWidths = []float64{8, 15, 25, 20, 20, 12, 40, 15, 15, 15, 15, 22}

const headerFillColor = "4F46E5"

// Filename builds the download filename for a workbook generated at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("form_submissions_%s.xlsx", t.Format("20060102_150405"))
}

// Render produces a styled workbook with one header row followed by one
// data row per submission in input order, sequence numbers 1..N. The
// output is deterministic for identical input; zero records yield a
// header-only document.
func Render(subs []model.Submission) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("data style: %w", err)
	}

	for col, title := range Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, title); err != nil {
			return nil, err
		}
	}
	lastCol, err := excelize.ColumnNumberToName(len(Headers))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}

	for i, sub := range subs {
		row := i + 2
		values := []any{
			i + 1,
			sub.MobileNo,
			sub.ShopName,
			sub.OwnerName,
			sub.IndName,
			sub.AreaPinCode,
			sub.Address,
			sub.City,
			sub.Dist,
			sub.State,
			sub.Country,
			sub.CreatedAt.UTC().Format(time.RFC3339),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, err
			}
		}
		first, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		last, err := excelize.CoordinatesToCellName(len(Headers), row)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(SheetName, first, last, dataStyle); err != nil {
			return nil, err
		}
	}

	for col, width := range columnWidths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(SheetName, name, name, width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
}
