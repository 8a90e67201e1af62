package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/sheetscan/pkg/sheetscan/grid"
	"github.com/ukaji3/sheetscan/pkg/sheetscan/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding indicates an unsupported CSV text encoding name.
var ErrUnknownEncoding = errors.New("unknown encoding")

var csvEncodings = map[string]encoding.Encoding{
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"windows-1250": charmap.Windows1250,
	"cp1250":       charmap.Windows1250,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"latin9":       charmap.ISO8859_15,
	"cp437":        charmap.CodePage437,
	"cp850":        charmap.CodePage850,
	"macintosh":    charmap.Macintosh,
}

// CSVOptions configures LoadCSV.
type CSVOptions struct {
	// Encoding names the source code page. Empty or "utf-8" reads UTF-8.
	Encoding string
	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// LoadCSV reads delimited text into a grid named name. Empty fields are
// absent cells and numeric fields are numbers.
func LoadCSV(r io.Reader, name string, opts CSVOptions) (*grid.Matrix, error) {
	src, err := decodeReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	// encoding/csv skips empty lines; their count is recovered from line
	// positions so blank separator rows survive.
	var (
		cells   [][]models.Cell
		prevEnd int
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv %q: %w", name, err)
		}

		line, _ := cr.FieldPos(0)
		for gap := line - prevEnd - 1; gap > 0; gap-- {
			cells = append(cells, nil)
		}
		lastLine, _ := cr.FieldPos(len(rec) - 1)
		prevEnd = lastLine + strings.Count(rec[len(rec)-1], "\n")

		row := make([]models.Cell, len(rec))
		for j, field := range rec {
			if len(cells) == 0 && j == 0 {
				field = strings.TrimPrefix(field, "\ufeff")
			}
			row[j] = parseValue(field)
		}
		cells = append(cells, row)
	}
	return grid.NewMatrix(name, cells), nil
}

func decodeReader(r io.Reader, name string) (io.Reader, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || key == "utf-8" || key == "utf8" {
		return r, nil
	}
	enc, ok := csvEncodings[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
