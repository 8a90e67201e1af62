package sheetscan

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ukaji3/sheetscan/pkg/sheetscan/grid"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a workbook with a key-value sheet and a tabular sheet.
func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	inputs := "Inputs"
	if err := f.SetSheetName("Sheet1", inputs); err != nil {
		t.Fatalf("SetSheetName: %v", err)
	}
	for cell, v := range map[string]any{
		"A1": "Rates",
		"A2": "Spot", "B2": 50, "C2": "EUR",
		"A3": "Vol", "B3": 0.4,
		"A5": "Greeks",
		"A6": "Delta", "B6": 0.68,
	} {
		f.SetCellValue(inputs, cell, v)
	}

	prices := "Prices"
	if _, err := f.NewSheet(prices); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	for cell, v := range map[string]any{
		"B2": "Strike", "C2": "Spot", "D2": "Vol",
		"B3": 50, "C3": 48, "D3": 0.4,
		"B4": 52, "C4": 48, "D4": 0.42,
		"B7": 1,
	} {
		f.SetCellValue(prices, cell, v)
	}

	path := filepath.Join(t.TempDir(), "model.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestExtractKeyValue(t *testing.T) {
	path := writeWorkbook(t)

	opts := DefaultOptions()
	opts.Mode = ModeKeyValue
	opts.Sheets = []string{"Inputs"}

	wb, err := Extract(path, opts)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if wb.BookName != "model.xlsx" {
		t.Errorf("BookName = %q", wb.BookName)
	}
	if !reflect.DeepEqual(wb.SheetOrder, []string{"Inputs"}) {
		t.Fatalf("SheetOrder = %v", wb.SheetOrder)
	}

	sheet := wb.Sheets["Inputs"]
	if len(sheet.Regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(sheet.Regions))
	}
	if r := sheet.Regions[0]; r.Name != "Rates" || r.StartRow != 2 || r.EndRow != 3 {
		t.Errorf("first region = %v", r)
	}
	if r := sheet.Regions[1]; r.Name != "Greeks" || r.StartRow != 6 || r.EndRow != 6 {
		t.Errorf("second region = %v", r)
	}

	rates := sheet.Tables[0]
	if rates.Kind != models.TableKeyValue || rates.Style != models.StyleAssumptions {
		t.Errorf("rates kind/style = %s/%s", rates.Kind, rates.Style)
	}
	if got := rates.Lookup("Spot"); len(got) != 1 || got[0].Cells[0] != models.NumberCell(50) {
		t.Errorf("Spot = %+v", got)
	}
}

func TestExtractGeneric(t *testing.T) {
	path := writeWorkbook(t)

	opts := DefaultOptions()
	opts.Mode = ModeGeneric
	opts.Sheets = []string{"Prices"}

	wb, err := Extract(path, opts)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	sheet := wb.Sheets["Prices"]
	if len(sheet.Regions) != 1 {
		t.Fatalf("expected 1 region (single-row band dropped), got %v", sheet.Regions)
	}
	region := sheet.Regions[0]
	if region.Name != "Strike" || region.StartCol != 2 || region.EndCol != 4 {
		t.Errorf("region = %v", region)
	}

	tbl := sheet.Tables[0]
	if !reflect.DeepEqual(tbl.Columns, []string{"Strike", "Spot", "Vol"}) {
		t.Errorf("Columns = %v", tbl.Columns)
	}
	if tbl.Len() != 2 {
		t.Errorf("expected 2 data rows, got %d", tbl.Len())
	}
}

func TestExtractAutoFallsBack(t *testing.T) {
	path := writeWorkbook(t)

	wb, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got := wb.Sheets["Inputs"].Mode; got != models.TableKeyValue {
		t.Errorf("Inputs mode = %s, expected key_value", got)
	}
	// Column A is empty on Prices, so the key-value detector finds nothing.
	if got := wb.Sheets["Prices"].Mode; got != models.TableGeneric {
		t.Errorf("Prices mode = %s, expected generic", got)
	}
	if !reflect.DeepEqual(wb.SheetOrder, []string{"Inputs", "Prices"}) {
		t.Errorf("SheetOrder = %v", wb.SheetOrder)
	}
}

func TestExtractRegionsOnly(t *testing.T) {
	path := writeWorkbook(t)

	opts := DefaultOptions()
	opts.RegionsOnly = true
	wb, err := Extract(path, opts)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	for name, sheet := range wb.Sheets {
		if len(sheet.Tables) != 0 {
			t.Errorf("sheet %s: expected no tables, got %d", name, len(sheet.Tables))
		}
		if len(sheet.Regions) == 0 {
			t.Errorf("sheet %s: expected regions", name)
		}
	}
}

func TestExtractCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.csv")
	content := "Rates,\nSpot,50\nVol,0.4\n\nGreeks\nDelta,0.68\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	wb, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	sheet, ok := wb.Sheets["inputs"]
	if !ok {
		t.Fatalf("expected sheet named after file, got %v", wb.SheetOrder)
	}
	if len(sheet.Regions) != 2 || sheet.Regions[1].Name != "Greeks" {
		t.Errorf("regions = %v", sheet.Regions)
	}

	sheets, err := ListSheets(path)
	if err != nil || !reflect.DeepEqual(sheets, []string{"inputs"}) {
		t.Errorf("ListSheets = %v, %v", sheets, err)
	}
}

func TestExtractErrors(t *testing.T) {
	path := writeWorkbook(t)

	if _, err := Extract(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions()); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("missing file: got %v", err)
	}

	opts := DefaultOptions()
	opts.Sheets = []string{"Nope"}
	if _, err := Extract(path, opts); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("missing sheet: got %v", err)
	}

	opts = DefaultOptions()
	opts.Mode = "pivot"
	_, err := Extract(path, opts)
	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) || !errors.Is(err, ErrUnknownMode) {
		t.Errorf("unknown mode: got %v", err)
	}

	bogus := filepath.Join(t.TempDir(), "bogus.xlsx")
	if err := os.WriteFile(bogus, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Extract(bogus, DefaultOptions()); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("invalid format: got %v", err)
	}
}

func TestListSheets(t *testing.T) {
	sheets, err := ListSheets(writeWorkbook(t))
	if err != nil {
		t.Fatalf("ListSheets failed: %v", err)
	}
	if !reflect.DeepEqual(sheets, []string{"Inputs", "Prices"}) {
		t.Errorf("ListSheets = %v", sheets)
	}
}

func TestExtractGridPrintArea(t *testing.T) {
	g := grid.FromValues("Sheet1", [][]any{
		{"Outside", nil, nil, nil},
		{"x", 1, nil, nil},
		{nil},
		{nil, nil, "K", "P"},
		{nil, nil, 1, 2},
	})
	masked := grid.NewMasked(g, models.PrintArea{R1: 4, C1: 3, R2: 5, C2: 4})

	opts := DefaultOptions()
	sheet, err := ExtractGrid(masked, opts)
	if err != nil {
		t.Fatalf("ExtractGrid failed: %v", err)
	}
	if sheet.Mode != models.TableGeneric || len(sheet.Regions) != 1 {
		t.Fatalf("unexpected sheet: %+v", sheet)
	}
	if r := sheet.Regions[0]; r.StartRow != 4 || r.StartCol != 3 || r.Name != "K" {
		t.Errorf("region = %v", r)
	}
}

func TestExtractGridMinDensity(t *testing.T) {
	g := grid.FromValues("Sheet1", [][]any{
		{"a", nil, nil, nil},
		{nil, nil, nil, "b"},
		{nil},
		{"c", "d"},
		{1, 2},
	})

	opts := DefaultOptions()
	opts.Mode = ModeGeneric
	opts.MinDensity = 0.5
	sheet, err := ExtractGrid(g, opts)
	if err != nil {
		t.Fatalf("ExtractGrid failed: %v", err)
	}
	if len(sheet.Regions) != 1 || sheet.Regions[0].Name != "c" {
		t.Errorf("regions = %v", sheet.Regions)
	}
}

func TestExtractGridHeaderOptions(t *testing.T) {
	g := grid.FromValues("Sheet1", [][]any{
		{1, 2},
		{3, 4},
	})
	off := false

	opts := DefaultOptions()
	opts.Mode = ModeGeneric
	opts.AutoDetectHeader = &off
	sheet, err := ExtractGrid(g, opts)
	if err != nil {
		t.Fatalf("ExtractGrid failed: %v", err)
	}
	if tbl := sheet.Tables[0]; !tbl.HasHeader() || tbl.Len() != 1 {
		t.Errorf("forced header: header=%v rows=%d", tbl.HasHeader(), tbl.Len())
	}

	opts.HasHeader = &off
	sheet, err = ExtractGrid(g, opts)
	if err != nil {
		t.Fatalf("ExtractGrid failed: %v", err)
	}
	if tbl := sheet.Tables[0]; tbl.HasHeader() || tbl.Len() != 2 {
		t.Errorf("no header: header=%v rows=%d", tbl.HasHeader(), tbl.Len())
	}
}
