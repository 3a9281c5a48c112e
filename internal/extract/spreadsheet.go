package extract

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ranger-pm/ranger-core/constants"
)

// extractSpreadsheet flattens a workbook to text: sheets in declaration
// order, rows top to bottom, non-empty cells joined by a single space.
// Rows that join to "" are skipped; retained rows are joined by newlines.
func (e *Extractor) extractSpreadsheet(data []byte) (string, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", &DecodeError{Kind: constants.SPREADSHEET, Err: err}
	}
	defer func() {
		if cerr := wb.Close(); cerr != nil {
			e.logger.Warn("close workbook", "error", cerr)
		}
	}()

	var lines []string
	for _, sheet := range wb.GetSheetList() {
		rows, rerr := wb.GetRows(sheet)
		if rerr != nil {
			return "", &DecodeError{Kind: constants.SPREADSHEET, Err: rerr}
		}
		for _, row := range rows {
			cells := make([]string, 0, len(row))
			for _, cell := range row {
				if cell != "" {
					cells = append(cells, cell)
				}
			}
			if joined := strings.Join(cells, " "); joined != "" {
				lines = append(lines, joined)
			}
		}
	}
	return strings.Join(lines, "\n"), nil
}
