package places

import (
	"fmt"

	"commute-notice/internal/models"
)

// ServiceInterface is consumed by the HTTP handler and by the trips
// module, which resolves municipality selections through it.
type ServiceInterface interface {
	ListNames() ([]string, error)
	Lookup(name string) (models.PlaceRecord, error)
	Reload() error
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListNames() ([]string, error) {
	names, err := s.repo.Names()
	if err != nil {
		return nil, fmt.Errorf("service.ListNames: %w", err)
	}
	return names, nil
}

func (s *Service) Lookup(name string) (models.PlaceRecord, error) {
	rec, err := s.repo.Get(name)
	if err != nil {
		return models.PlaceRecord{}, fmt.Errorf("service.Lookup: %w", err)
	}
	return rec, nil
}

func (s *Service) Reload() error {
	if err := s.repo.Reload(); err != nil {
		return fmt.Errorf("service.Reload: %w", err)
	}
	return nil
}
