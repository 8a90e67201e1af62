// Package output serializes extraction results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
)

// ToJSON serializes a workbook result.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes one sheet result.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// TableToJSON serializes one table.
func TableToJSON(t *models.Table, pretty bool) ([]byte, error) {
	return marshal(t, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
