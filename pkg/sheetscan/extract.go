package sheetscan

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetscan/pkg/sheetscan/detect"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/grid"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/logging"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/materialize"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/parser"
	"github.com/xuri/excelize/v2"
)

// Extract detects and reads the tables of every selected sheet in a workbook.
// Files ending in .csv or .tsv are read as a single sheet named after the file.
func Extract(path string, opts Options) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return extractCSV(path, opts)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	for _, want := range opts.Sheets {
		if !contains(sheetList, want) {
			return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, want)
		}
	}

	var printAreas map[string][]models.PrintArea
	if opts.UsePrintArea {
		printAreas = parser.ExtractPrintAreas(f)
	}

	wb := &models.WorkbookData{
		BookName: filepath.Base(path),
		Sheets:   make(map[string]models.SheetData),
	}

	for _, sheetName := range sheetList {
		if !opts.wantsSheet(sheetName) {
			continue
		}

		m, err := parser.LoadSheet(f, sheetName)
		if err != nil {
			return nil, NewExtractionError(sheetName, "load", err)
		}

		var g grid.Grid = m
		areas := printAreas[sheetName]
		if len(areas) > 0 {
			g = grid.NewMasked(m, areas[0])
		}

		sheet, err := ExtractGrid(g, opts)
		if err != nil {
			return nil, NewExtractionError(sheetName, "materialize", err)
		}
		sheet.PrintAreas = areas

		wb.SheetOrder = append(wb.SheetOrder, sheetName)
		wb.Sheets[sheetName] = sheet
	}

	return wb, nil
}

func extractCSV(path string, opts Options) (*models.WorkbookData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	base := filepath.Base(path)
	sheetName := strings.TrimSuffix(base, filepath.Ext(base))
	if len(opts.Sheets) > 0 && !opts.wantsSheet(sheetName) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, opts.Sheets[0])
	}

	csvOpts := opts.CSV
	if csvOpts.Comma == 0 && strings.EqualFold(filepath.Ext(base), ".tsv") {
		csvOpts.Comma = '\t'
	}

	m, err := parser.LoadCSV(file, sheetName, csvOpts)
	if err != nil {
		return nil, NewExtractionError(sheetName, "load", err)
	}

	sheet, err := ExtractGrid(m, opts)
	if err != nil {
		return nil, NewExtractionError(sheetName, "materialize", err)
	}

	return &models.WorkbookData{
		BookName:   base,
		SheetOrder: []string{sheetName},
		Sheets:     map[string]models.SheetData{sheetName: sheet},
	}, nil
}

// ExtractGrid detects the regions of one sheet and, unless RegionsOnly is
// set, reads each of them into a table tagged with opts.Style.
func ExtractGrid(g grid.Grid, opts Options) (models.SheetData, error) {
	regions, kind, err := DetectRegions(g, opts)
	if err != nil {
		return models.SheetData{}, err
	}

	sheet := models.SheetData{
		Mode:    kind,
		Regions: regions,
	}
	if opts.RegionsOnly {
		return sheet, nil
	}

	for _, region := range regions {
		t, err := ReadRegion(g, region, kind, opts)
		if err != nil {
			return models.SheetData{}, err
		}
		sheet.Tables = append(sheet.Tables, t)
	}
	return sheet, nil
}

// DetectRegions runs the detector selected by opts.Mode and returns the
// regions together with the layout they should be read with.
func DetectRegions(g grid.Grid, opts Options) ([]models.Region, models.TableKind, error) {
	log := logging.Logger()

	switch opts.Mode {
	case ModeKeyValue:
		return detect.KeyValue(g), models.TableKeyValue, nil
	case ModeGeneric:
		return genericRegions(g, opts), models.TableGeneric, nil
	case ModeAuto, "":
		if regions := detect.KeyValue(g); len(regions) > 0 {
			return regions, models.TableKeyValue, nil
		}
		log.Debug("no key-value regions, falling back to generic detection")
		return genericRegions(g, opts), models.TableGeneric, nil
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownMode, opts.Mode)
	}
}

func genericRegions(g grid.Grid, opts Options) []models.Region {
	regions := detect.Generic(g, opts.EffectiveMinRows())
	if opts.MinDensity <= 0 {
		return regions
	}

	kept := regions[:0:0]
	for _, r := range regions {
		if d := detect.Density(g, r); d < opts.MinDensity {
			logging.Logger().Debug("dropping sparse region",
				slog.String("name", r.Name),
				slog.Float64("density", d))
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// ReadRegion materializes one region with the given layout.
func ReadRegion(g grid.Grid, region models.Region, kind models.TableKind, opts Options) (*models.Table, error) {
	var (
		t   *models.Table
		err error
	)
	switch kind {
	case models.TableKeyValue:
		t, err = materialize.KeyValue(g, region)
	case models.TableGeneric:
		t, err = materialize.Generic(g, region, opts.MaterializeOptions())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, kind)
	}
	if err != nil {
		return nil, err
	}
	t.Style = opts.Style
	return t, nil
}

// ListSheets returns the sheet names of a workbook in workbook order.
func ListSheets(path string) ([]string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	switch ext := filepath.Ext(path); strings.ToLower(ext) {
	case ".csv", ".tsv":
		base := filepath.Base(path)
		return []string{strings.TrimSuffix(base, ext)}, nil
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
