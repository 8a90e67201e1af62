package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
)

const ruleWidth = 70

// ListingOptions controls WriteListing.
type ListingOptions struct {
	// Glimpse adds a preview of the first rows of each table.
	Glimpse bool
	// MaxRows is the number of preview rows. Zero means 3.
	MaxRows int
}

// WriteListing prints every detected table of wb: name, location and size,
// and optionally a preview.
func WriteListing(w io.Writer, wb *models.WorkbookData, opts ListingOptions) error {
	maxRows := opts.MaxRows
	if maxRows <= 0 {
		maxRows = 3
	}

	p := &printer{w: w}
	p.printf("\nTables in %s\n", wb.BookName)
	p.printf("%s\n", strings.Repeat("=", ruleWidth))

	for _, name := range wb.SheetOrder {
		sheet := wb.Sheets[name]
		p.printf("\nSheet: '%s'\n", name)
		p.printf("%s\n", strings.Repeat("-", ruleWidth))

		if len(sheet.Regions) == 0 {
			p.printf("  (no tables detected)\n")
			continue
		}

		for i, region := range sheet.Regions {
			p.printf("\n  %d. '%s'\n", i+1, region.Name)
			p.printf("     Location: Rows %d-%d, Cols %d-%d (%s)\n",
				region.StartRow, region.EndRow, region.StartCol, region.EndCol, region.Range())
			p.printf("     Size: %d rows x %d cols\n", region.Rows(), region.Cols())

			if opts.Glimpse && i < len(sheet.Tables) {
				p.printf("\n     Preview:\n")
				if p.err == nil {
					p.err = writePreview(w, sheet.Tables[i].Head(maxRows), "       ")
				}
			}
		}
	}

	p.printf("\n%s\n", strings.Repeat("=", ruleWidth))
	return p.err
}

// WriteTable prints a table as aligned columns.
func WriteTable(w io.Writer, t *models.Table) error {
	return writePreview(w, t, "")
}

func writePreview(w io.Writer, t *models.Table, indent string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := append([]string(nil), t.Columns...)
	if t.KeyColumn != "" {
		header = append([]string{t.KeyColumn}, header...)
	}
	fmt.Fprintf(tw, "%s%s\n", indent, strings.Join(header, "\t"))

	for _, row := range t.Rows {
		fields := make([]string, 0, len(row.Cells)+1)
		if t.KeyColumn != "" {
			fields = append(fields, row.Key)
		}
		for _, c := range row.Cells {
			fields = append(fields, c.String())
		}
		fmt.Fprintf(tw, "%s%s\n", indent, strings.Join(fields, "\t"))
	}
	if t.IsEmpty() {
		fmt.Fprintf(tw, "%s(empty)\n", indent)
	}
	return tw.Flush()
}

// printer remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
