package contacts

import (
	"fmt"
	"strings"
	"sync"

	"commute-notice/internal/config"
	"commute-notice/internal/models"
	"commute-notice/internal/tabular"
)

// RepositoryInterface declares access to the contacts table used to
// pre-fill notification recipients.
type RepositoryInterface interface {
	List(province string) ([]models.Contact, error)
	Reload() error
}

// Repository caches the parsed contacts table for the process lifetime,
// same policy as the municipality table.
type Repository struct {
	schema config.TableSchema

	mu       sync.RWMutex
	contacts []models.Contact
}

func NewRepository(schema config.TableSchema) *Repository {
	return &Repository{schema: schema}
}

// List returns contacts, optionally filtered by province
// (case-insensitive). An empty filter returns everyone.
func (r *Repository) List(province string) ([]models.Contact, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if strings.TrimSpace(province) == "" {
		out := make([]models.Contact, len(r.contacts))
		copy(out, r.contacts)
		return out, nil
	}

	want := strings.ToLower(strings.TrimSpace(province))
	var out []models.Contact
	for _, ct := range r.contacts {
		if strings.ToLower(ct.Province) == want {
			out = append(out, ct)
		}
	}
	return out, nil
}

func (r *Repository) Reload() error {
	contacts, err := r.load()
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.contacts = contacts
	r.mu.Unlock()
	return nil
}

func (r *Repository) ensure() error {
	r.mu.RLock()
	loaded := r.contacts != nil
	r.mu.RUnlock()
	if loaded {
		return nil
	}
	return r.Reload()
}

func (r *Repository) load() ([]models.Contact, error) {
	t, err := tabular.Read(r.schema)
	if err != nil {
		return nil, fmt.Errorf("repo.load: %w", err)
	}
	idx, err := t.Columns(r.schema, "province", "team", "full_name", "email")
	if err != nil {
		return nil, fmt.Errorf("repo.load: %w", err)
	}

	var contacts []models.Contact
	for _, row := range t.Rows {
		email := tabular.Field(row, idx, "email")
		if email == "" {
			continue
		}
		contacts = append(contacts, models.Contact{
			Province: tabular.Field(row, idx, "province"),
			Team:     tabular.Field(row, idx, "team"),
			FullName: tabular.Field(row, idx, "full_name"),
			Email:    email,
		})
	}
	if len(contacts) == 0 {
		return nil, fmt.Errorf("repo.load: no usable rows: %w", models.ErrMalformedSchema)
	}
	return contacts, nil
}
