// Package export renders admin listings as xlsx workbooks.
package export

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// Table is one worksheet: a header row followed by data rows.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]any
}

// XLSX writes the table into a single-sheet workbook.
func XLSX(table Table) ([]byte, error) {
	file := excelize.NewFile()
	defer func() {
		if err := file.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close workbook")
		}
	}()

	sheet := table.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}

	if err := file.SetSheetName(file.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err = writeRow(file, sheet, 1, toAny(table.Headers)); err != nil {
		return nil, err
	}

	if len(table.Headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(table.Headers), 1)
		if err = file.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
	}

	for idx, row := range table.Rows {
		if err = writeRow(file, sheet, idx+2, row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err = file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeRow(file *excelize.File, sheet string, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to resolve cell: %w", err)
	}

	if err = file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}

	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}
