package places

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"commute-notice/internal/config"
	"commute-notice/internal/models"
)

func writeTable(t *testing.T, content string) config.TableSchema {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiempos.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}
	return config.TableSchema{
		Path:      path,
		Delimiter: ";",
		Encoding:  "utf-8",
		Columns: map[string]string{
			"name":               "Población",
			"work_center":        "Centro de trabajo",
			"province":           "Provincia",
			"distance_km":        "Distancia (km)",
			"minutes_total":      "Minutos totales",
			"minutes_chargeable": "Minutos a cargo",
		},
	}
}

const header = "Población;Centro de trabajo;Provincia;Distancia (km);Minutos totales;Minutos a cargo\n"

func TestRepositoryGetNormalizesRow(t *testing.T) {
	repo := NewRepository(writeTable(t, header+
		"  Alcalá  ;Centro Sur;Madrid;45,5;95;65\n"))

	rec, err := repo.Get("alcalá")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Name != "Alcalá" {
		t.Errorf("name = %q, want trimmed Alcalá", rec.Name)
	}
	if rec.TravelMinutes != 95 || rec.ChargeableMinutes != 65 {
		t.Errorf("minutes = %d/%d, want 95/65", rec.TravelMinutes, rec.ChargeableMinutes)
	}
	if rec.DistanceKm != 45.5 {
		t.Errorf("distance = %v, want 45.5 (comma decimal)", rec.DistanceKm)
	}
}

func TestRepositoryDeduplicatesByMaxMinutes(t *testing.T) {
	// Conflicting rows for the same municipality: the longest known
	// time wins, never the first, last or mean.
	repo := NewRepository(writeTable(t, header+
		"Alcalá;Centro Sur;Madrid;45;60;30\n"+
		"alcalá;Centro Sur;Madrid;45;95;65\n"+
		"ALCALÁ;Centro Sur;Madrid;45;80;50\n"))

	rec, err := repo.Get("Alcalá")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.TravelMinutes != 95 {
		t.Errorf("minutes = %d, want the max 95", rec.TravelMinutes)
	}

	names, err := repo.Names()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 {
		t.Errorf("names = %v, want a single deduplicated entry", names)
	}
}

func TestRepositoryNamesSortedCaseFold(t *testing.T) {
	repo := NewRepository(writeTable(t, header+
		"zamora;C;Zamora;10;20;0\n"+
		"Ávila;C;Ávila;10;20;0\n"+
		"madrid;C;Madrid;10;20;0\n"))

	names, err := repo.Names()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Ávila", "madrid", "zamora"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}

func TestRepositorySkipsEmptyNames(t *testing.T) {
	repo := NewRepository(writeTable(t, header+
		";C;Madrid;10;20;0\n"+
		"Alcalá;C;Madrid;45;95;65\n"))

	names, err := repo.Names()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "Alcalá" {
		t.Errorf("names = %v, want only Alcalá", names)
	}
}

func TestRepositoryEmptyTableIsMalformed(t *testing.T) {
	repo := NewRepository(writeTable(t, header))

	_, err := repo.Names()
	if !errors.Is(err, models.ErrMalformedSchema) {
		t.Fatalf("error = %v, want ErrMalformedSchema", err)
	}
}

func TestRepositoryMissingColumnIsMalformed(t *testing.T) {
	schema := writeTable(t, "Población;Provincia\nAlcalá;Madrid\n")

	repo := NewRepository(schema)
	_, err := repo.Names()
	if !errors.Is(err, models.ErrMalformedSchema) {
		t.Fatalf("error = %v, want ErrMalformedSchema", err)
	}
}

func TestRepositoryMalformedCellsCoerceToZero(t *testing.T) {
	repo := NewRepository(writeTable(t, header+
		"Alcalá;C;Madrid;not-a-number;garbage;\n"))

	rec, err := repo.Get("Alcalá")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.TravelMinutes != 0 || rec.DistanceKm != 0 || rec.ChargeableMinutes != 0 {
		t.Errorf("coerced record = %+v, want zeros", rec)
	}
}

func TestRepositoryReloadPicksUpChanges(t *testing.T) {
	schema := writeTable(t, header+"Alcalá;C;Madrid;45;95;65\n")
	repo := NewRepository(schema)

	if _, err := repo.Get("Alcalá"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := header + "Alcalá;C;Madrid;45;120;90\n"
	if err := os.WriteFile(schema.Path, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewrite table: %v", err)
	}

	// Cached until an explicit reload.
	rec, _ := repo.Get("Alcalá")
	if rec.TravelMinutes != 95 {
		t.Fatalf("minutes before reload = %d, want cached 95", rec.TravelMinutes)
	}

	if err := repo.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	rec, _ = repo.Get("Alcalá")
	if rec.TravelMinutes != 120 {
		t.Fatalf("minutes after reload = %d, want 120", rec.TravelMinutes)
	}
}
