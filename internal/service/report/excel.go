package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/punchdesk/attendance-backend-go/internal/domain/report"
)

var sheetHeaders = []string{"Date", "Day", "Punch In", "Punch Out", "Late (min)", "Overtime (min)", "Status"}

var columnWidths = map[string]float64{
	"A": 12,
	"B": 6,
	"C": 10,
	"D": 10,
	"E": 10,
	"F": 13,
	"G": 22,
}

type rowStyles struct {
	header   int
	overtime int
	halfDay  int
	absent   int
	holiday  int
}

// buildWorkbook renders one worksheet per employee sheet with row
// fills matching each day's highlight category.
func buildWorkbook(rep report.MonthlyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newRowStyles(f)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]int)
	for i, sheet := range rep.Sheets {
		name := sheetName(sheet.Name, seen)

		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, err
			}
		}

		if err := writeSheet(f, name, sheet, styles); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newRowStyles(f *excelize.File) (rowStyles, error) {
	var s rowStyles
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
	})
	if err != nil {
		return s, err
	}

	s.overtime, err = fillStyle(f, "C6EFCE", "006100")
	if err != nil {
		return s, err
	}
	s.halfDay, err = fillStyle(f, "FFEB9C", "9C5700")
	if err != nil {
		return s, err
	}
	s.absent, err = fillStyle(f, "FFC7CE", "9C0006")
	if err != nil {
		return s, err
	}
	s.holiday, err = fillStyle(f, "FFFF00", "000000")
	return s, err
}

func fillStyle(f *excelize.File, bg, fontColor string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: fontColor},
		Fill: excelize.Fill{Type: "pattern", Color: []string{bg}, Pattern: 1},
	})
}

func writeSheet(f *excelize.File, name string, sheet report.EmployeeSheet, styles rowStyles) error {
	for col, width := range columnWidths {
		if err := f.SetColWidth(name, col, col, width); err != nil {
			return err
		}
	}

	for i, header := range sheetHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, header); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(name, "A1", "G1", styles.header); err != nil {
		return err
	}

	for i, row := range sheet.Rows {
		rowNum := i + 2
		values := []interface{}{row.Date, row.Day, row.PunchIn, row.PunchOut, row.LateMinutes, row.OvertimeMinutes, row.Status}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, v); err != nil {
				return err
			}
		}

		styleID, ok := highlightStyle(styles, row.Highlight)
		if !ok {
			continue
		}
		if err := f.SetCellStyle(name, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("G%d", rowNum), styleID); err != nil {
			return err
		}
	}

	return nil
}

func highlightStyle(styles rowStyles, h report.Highlight) (int, bool) {
	switch h {
	case report.HighlightOvertime:
		return styles.overtime, true
	case report.HighlightHalfDay:
		return styles.halfDay, true
	case report.HighlightAbsent:
		return styles.absent, true
	case report.HighlightHoliday:
		return styles.holiday, true
	default:
		return 0, false
	}
}

// sheetName sanitizes an employee name into a worksheet title. Excel
// forbids *?:/\[] and caps titles at 31 characters.
func sheetName(name string, seen map[string]int) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '*', '?', ':', '/', '\\', '[', ']':
			return '_'
		}
		return r
	}, name)

	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		cleaned = "Employee"
	}
	if len(cleaned) > 31 {
		cleaned = cleaned[:31]
	}

	seen[cleaned]++
	if n := seen[cleaned]; n > 1 {
		suffix := fmt.Sprintf(" (%d)", n)
		if len(cleaned)+len(suffix) > 31 {
			cleaned = cleaned[:31-len(suffix)]
		}
		cleaned += suffix
	}
	return cleaned
}
