package tabular

import (
	"errors"
	"strings"
	"testing"

	"commute-notice/internal/config"
	"commute-notice/internal/models"
)

func namedSchema() config.TableSchema {
	return config.TableSchema{
		Delimiter: ";",
		Encoding:  "utf-8",
		Columns: map[string]string{
			"name":          "Población",
			"distance_km":   "Distancia (km)",
			"minutes_total": "Minutos totales",
		},
	}
}

func TestParseSemicolonWithBOM(t *testing.T) {
	data := "\uFEFFPoblación;Distancia (km);Minutos totales\nAlcalá;45,5;95\n"

	table, err := Parse(strings.NewReader(data), namedSchema())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Header[0] != "Población" {
		t.Errorf("header[0] = %q, want BOM stripped Población", table.Header[0])
	}
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
}

func TestParseLatin1(t *testing.T) {
	schema := namedSchema()
	schema.Encoding = "latin-1"
	// "Población;...;Alcalá" encoded as ISO 8859-1.
	data := "Poblaci\xf3n;Distancia (km);Minutos totales\nAlcal\xe1;45;95\n"

	table, err := Parse(strings.NewReader(data), schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Rows[0][0] != "Alcalá" {
		t.Errorf("cell = %q, want decoded Alcalá", table.Rows[0][0])
	}
}

func TestParsePipeDelimiter(t *testing.T) {
	schema := namedSchema()
	schema.Delimiter = "|"
	data := "Población|Distancia (km)|Minutos totales\nAlcalá|45|95\n"

	table, err := Parse(strings.NewReader(data), schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0][2] != "95" {
		t.Fatalf("unexpected rows: %+v", table.Rows)
	}
}

func TestColumnsByName(t *testing.T) {
	data := "Población;Distancia (km);Minutos totales\nAlcalá;45;95\n"
	table, err := Parse(strings.NewReader(data), namedSchema())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	idx, err := table.Columns(namedSchema(), "name", "minutes_total")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Field(table.Rows[0], idx, "minutes_total") != "95" {
		t.Errorf("minutes_total = %q, want 95", Field(table.Rows[0], idx, "minutes_total"))
	}
}

func TestColumnsMissingRequired(t *testing.T) {
	data := "Población;Distancia (km)\nAlcalá;45\n"
	table, err := Parse(strings.NewReader(data), namedSchema())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = table.Columns(namedSchema(), "name", "minutes_total")
	if !errors.Is(err, models.ErrMalformedSchema) {
		t.Fatalf("error = %v, want ErrMalformedSchema", err)
	}
}

func TestColumnsLegacyPositions(t *testing.T) {
	schema := config.TableSchema{
		Delimiter: ";",
		Positions: map[string]int{"name": 0, "minutes_total": 2},
	}
	data := "col0;col1;col2\nAlcalá;x;95\n"
	table, err := Parse(strings.NewReader(data), schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	idx, err := table.Columns(schema, "name", "minutes_total")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Field(table.Rows[0], idx, "name") != "Alcalá" {
		t.Errorf("name = %q, want Alcalá", Field(table.Rows[0], idx, "name"))
	}
}

func TestDecimalCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"45.5", 45.5},
		{"45,5", 45.5},
		{" 12 ", 12},
		{"", 0},
		{"abc", 0},
		{"-3", 0},
	}
	for _, tc := range cases {
		if got := Decimal(tc.in); got != tc.want {
			t.Errorf("Decimal(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMinutesCoercion(t *testing.T) {
	if got := Minutes("95"); got != 95 {
		t.Errorf("Minutes(95) = %d, want 95", got)
	}
	if got := Minutes("garbage"); got != 0 {
		t.Errorf("Minutes(garbage) = %d, want 0", got)
	}
}
