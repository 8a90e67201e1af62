package models

// SheetData represents the tables extracted from a single sheet.
type SheetData struct {
	// Mode is the detector that produced the regions ("key_value" or "generic").
	Mode TableKind `json:"mode"`
	// Regions lists the detected regions in top-to-bottom order.
	Regions []Region `json:"regions"`
	// Tables holds one materialized table per region, in region order.
	Tables []*Table `json:"tables,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}
