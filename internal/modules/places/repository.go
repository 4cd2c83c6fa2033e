package places

import (
	"fmt"
	"strings"
	"sync"

	"commute-notice/internal/config"
	"commute-notice/internal/models"
	"commute-notice/internal/tabular"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// RepositoryInterface declares access to the municipality reference table.
type RepositoryInterface interface {
	// Names returns the sorted, case-fold collated municipality listing.
	Names() ([]string, error)
	// Get looks one municipality up by name, case-insensitively.
	Get(name string) (models.PlaceRecord, error)
	// Reload drops the cached table and parses the file again.
	Reload() error
}

// Repository parses the reference file once and serves it from memory for
// the process lifetime. The cache is rebuilt wholesale by Reload; there is
// no partial invalidation.
type Repository struct {
	schema config.TableSchema

	mu     sync.RWMutex
	byName map[string]models.PlaceRecord
	names  []string
}

func NewRepository(schema config.TableSchema) *Repository {
	return &Repository{schema: schema}
}

func (r *Repository) Names() ([]string, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out, nil
}

func (r *Repository) Get(name string) (models.PlaceRecord, error) {
	if err := r.ensure(); err != nil {
		return models.PlaceRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byName[foldName(name)]
	if !ok {
		return models.PlaceRecord{}, fmt.Errorf("repo.Get %q: %w", name, models.ErrNotFound)
	}
	return rec, nil
}

func (r *Repository) Reload() error {
	byName, names, err := r.load()
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.byName, r.names = byName, names
	r.mu.Unlock()
	return nil
}

func (r *Repository) ensure() error {
	r.mu.RLock()
	loaded := r.byName != nil
	r.mu.RUnlock()
	if loaded {
		return nil
	}
	return r.Reload()
}

// load parses the file into a deduplicated name index. Duplicate names
// keep the row with the largest total travel minutes: when the table
// disagrees with itself, the longest known time wins.
func (r *Repository) load() (map[string]models.PlaceRecord, []string, error) {
	t, err := tabular.Read(r.schema)
	if err != nil {
		return nil, nil, fmt.Errorf("repo.load: %w", err)
	}
	idx, err := t.Columns(r.schema, "name", "distance_km", "minutes_total")
	if err != nil {
		return nil, nil, fmt.Errorf("repo.load: %w", err)
	}

	byName := make(map[string]models.PlaceRecord)
	for _, row := range t.Rows {
		name := tabular.Field(row, idx, "name")
		if name == "" {
			continue
		}
		rec := models.PlaceRecord{
			Name:              name,
			TravelMinutes:     tabular.Minutes(tabular.Field(row, idx, "minutes_total")),
			ChargeableMinutes: tabular.Minutes(tabular.Field(row, idx, "minutes_chargeable")),
			DistanceKm:        tabular.Decimal(tabular.Field(row, idx, "distance_km")),
			WorkCenter:        tabular.Field(row, idx, "work_center"),
			Province:          tabular.Field(row, idx, "province"),
		}
		key := foldName(name)
		if prev, ok := byName[key]; !ok || rec.TravelMinutes > prev.TravelMinutes {
			byName[key] = rec
		}
	}
	if len(byName) == 0 {
		return nil, nil, fmt.Errorf("repo.load: no usable rows: %w", models.ErrMalformedSchema)
	}

	names := make([]string, 0, len(byName))
	for _, rec := range byName {
		names = append(names, rec.Name)
	}
	collate.New(language.Spanish, collate.IgnoreCase).SortStrings(names)
	return byName, names, nil
}

func foldName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
