package person

import "time"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Person, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int64) (Person, error) {
	return s.repo.GetByID(id)
}

// Create stamps both timestamps from a single clock reading so that a fresh
// record always satisfies created_at == updated_at.
func (s *Service) Create(p Person) (Person, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.repo.Create(p)
}

// Update refreshes updated_at and stores the given field values. created_at
// is left untouched by the repositories.
func (s *Service) Update(id int64, p Person) (Person, error) {
	p.UpdatedAt = time.Now().UTC()
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int64) error {
	return s.repo.Delete(id)
}
