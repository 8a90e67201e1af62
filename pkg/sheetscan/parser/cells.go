// Package parser loads sheet grids from spreadsheet files.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetscan/pkg/sheetscan/grid"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
	"github.com/xuri/excelize/v2"
)

// LoadSheet reads every cell of a sheet into an in-memory grid. Cached
// formula results are used, and cell types come from the workbook so text
// that looks numeric stays text.
func LoadSheet(f *excelize.File, sheetName string) (*grid.Matrix, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheetName, err)
	}

	cells := make([][]models.Cell, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cells[rowIdx] = make([]models.Cell, len(row))

		for colIdx, value := range row {
			if value == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, fmt.Errorf("get type of %s!%s: %w", sheetName, cellName, err)
			}
			cells[rowIdx][colIdx] = classifyCell(value, typ)
		}
	}

	return grid.NewMatrix(sheetName, cells), nil
}

// classifyCell maps a raw cell value and its stored type to a Cell.
func classifyCell(value string, typ excelize.CellType) models.Cell {
	if value == "" {
		return models.Absent()
	}
	switch typ {
	// CellTypeFormula marks a cached string formula result (t="str").
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.TextCell(value)
	case excelize.CellTypeBool:
		if value == "1" || strings.EqualFold(value, "true") {
			return models.TextCell("TRUE")
		}
		return models.TextCell("FALSE")
	default:
		return parseValue(value)
	}
}

// parseValue classifies an untyped value: "" is absent, anything that parses
// as a float is a number, and everything else is text.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.Absent()
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return models.NumberCell(f)
	}
	return models.TextCell(s)
}
