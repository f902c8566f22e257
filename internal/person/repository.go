package person

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("person not found")

type Repository interface {
	List() ([]Person, error)
	GetByID(id int64) (Person, error)
	Create(p Person) (Person, error)
	Update(id int64, p Person) (Person, error)
	Delete(id int64) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	persons []Person
	nextID  int64
}

func NewInMemoryRepository(seed []Person) *InMemoryRepository {
	repo := &InMemoryRepository{
		persons: make([]Person, 0, len(seed)),
	}

	var maxID int64
	for _, p := range seed {
		repo.persons = append(repo.persons, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List() ([]Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	persons := make([]Person, len(r.persons))
	copy(persons, r.persons)
	return persons, nil
}

func (r *InMemoryRepository) GetByID(id int64) (Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.persons {
		if p.ID == id {
			return p, nil
		}
	}

	return Person{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Person) (Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}

	r.persons = append(r.persons, p)
	return p, nil
}

// Update replaces the writable fields of the stored record. Timestamps are
// only overwritten when the update carries non-zero values.
func (r *InMemoryRepository) Update(id int64, personUpdate Person) (Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.persons {
		if p.ID == id {
			p.Name = personUpdate.Name
			p.Age = personUpdate.Age
			p.Gender = personUpdate.Gender
			if !personUpdate.CreatedAt.IsZero() {
				p.CreatedAt = personUpdate.CreatedAt
			}
			if !personUpdate.UpdatedAt.IsZero() {
				p.UpdatedAt = personUpdate.UpdatedAt
			}
			r.persons[i] = p
			return p, nil
		}
	}

	return Person{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.persons {
		if p.ID == id {
			r.persons = append(r.persons[:i], r.persons[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}
