// Package tabular reads the delimited reference files (municipality times,
// contacts) that this service treats as read-only external collaborators.
// Delimiter, encoding and column layout vary between exports, so all three
// are declarative schema configuration rather than code branches.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"commute-notice/internal/config"
	"commute-notice/internal/models"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Table is a fully parsed delimited file: a header row plus data rows,
// every cell trimmed.
type Table struct {
	Header []string
	Rows   [][]string
}

// Read opens and parses the file described by the schema.
func Read(schema config.TableSchema) (*Table, error) {
	f, err := os.Open(schema.Path)
	if err != nil {
		return nil, fmt.Errorf("tabular: open %s: %w", schema.Path, err)
	}
	defer f.Close()
	return Parse(f, schema)
}

// Parse reads delimited data from r using the schema's delimiter and
// encoding. The first record is the header; rows with a blank first cell
// are kept (the caller decides which column identifies a row).
func Parse(r io.Reader, schema config.TableSchema) (*Table, error) {
	cr := csv.NewReader(decode(r, schema.Encoding))
	cr.Comma = delimiter(schema.Delimiter)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("tabular: parse %s: %w", schema.Path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("tabular: %s: %w", schema.Path, models.ErrMalformedSchema)
	}

	t := &Table{Header: trimAll(records[0])}
	for _, rec := range records[1:] {
		t.Rows = append(t.Rows, trimAll(rec))
	}
	return t, nil
}

// Columns resolves logical field names to column indices. With a name map
// configured, every mapped header must exist; otherwise the legacy fixed
// positions are used as-is. A missing required field is a schema error.
func (t *Table) Columns(schema config.TableSchema, required ...string) (map[string]int, error) {
	idx := make(map[string]int)
	if schema.ByName() {
		byHeader := make(map[string]int, len(t.Header))
		for i, h := range t.Header {
			byHeader[foldKey(h)] = i
		}
		for field, header := range schema.Columns {
			if i, ok := byHeader[foldKey(header)]; ok {
				idx[field] = i
			}
		}
	} else {
		for field, pos := range schema.Positions {
			idx[field] = pos
		}
	}

	for _, field := range required {
		if _, ok := idx[field]; !ok {
			return nil, fmt.Errorf("tabular: missing column for %q: %w", field, models.ErrMalformedSchema)
		}
	}
	return idx, nil
}

// Field returns the trimmed cell for a logical field, or "" when the
// column is absent or the row is too short.
func Field(row []string, idx map[string]int, field string) string {
	i, ok := idx[field]
	if !ok || i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// Decimal coerces a numeric cell accepting either comma or dot as the
// decimal separator. Unparsable or negative cells become 0: the table
// stays usable even when individual cells are mangled.
func Decimal(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Minutes coerces an integer-minutes cell with the same zero-default
// policy as Decimal.
func Minutes(s string) int {
	return int(Decimal(s))
}

func decode(r io.Reader, name string) io.Reader {
	var enc encoding.Encoding
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "latin-1", "iso-8859-1", "latin1":
		enc = charmap.ISO8859_1
	default:
		enc = unicode.UTF8
	}
	// BOMOverride strips a UTF-8 BOM when present regardless of the
	// configured encoding, which older exports of the table carry.
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder()))
}

func delimiter(s string) rune {
	for _, r := range s {
		return r
	}
	return ';'
}

func foldKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func trimAll(rec []string) []string {
	out := make([]string, len(rec))
	for i, c := range rec {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
