package person

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestInMemoryCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewInMemoryRepository(nil)

	first, err := repo.Create(Person{Gender: "female"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := repo.Create(Person{Gender: "male"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestInMemoryIDsNeverReused(t *testing.T) {
	repo := NewInMemoryRepository(nil)

	first, _ := repo.Create(Person{Gender: "female"})
	if err := repo.Delete(first.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	second, _ := repo.Create(Person{Gender: "male"})
	if second.ID <= first.ID {
		t.Fatalf("expected a fresh id after delete, got %d (deleted %d)", second.ID, first.ID)
	}
}

func TestInMemorySeedAdvancesNextID(t *testing.T) {
	repo := NewInMemoryRepository([]Person{
		{ID: 7, Gender: "female"},
		{ID: 3, Gender: "male"},
	})

	created, _ := repo.Create(Person{Gender: "other"})
	if created.ID != 8 {
		t.Fatalf("expected id 8 after seeding max id 7, got %d", created.ID)
	}
}

func TestInMemoryGetByID(t *testing.T) {
	repo := NewInMemoryRepository([]Person{{ID: 1, Name: strPtr("Alice"), Gender: "female"}})

	p, err := repo.GetByID(1)
	if err != nil {
		t.Fatalf("expected record, got %v", err)
	}
	if p.Name == nil || *p.Name != "Alice" {
		t.Fatalf("unexpected record: %+v", p)
	}

	if _, err := repo.GetByID(42); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInMemoryUpdate(t *testing.T) {
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	repo := NewInMemoryRepository([]Person{{
		ID:        1,
		Name:      strPtr("Alice"),
		Age:       intPtr(30),
		Gender:    "female",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}})

	updatedAt := createdAt.Add(time.Hour)
	updated, err := repo.Update(1, Person{
		Name:      strPtr("Bob"),
		Age:       intPtr(40),
		Gender:    "male",
		UpdatedAt: updatedAt,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if *updated.Name != "Bob" || *updated.Age != 40 || updated.Gender != "male" {
		t.Fatalf("unexpected updated record: %+v", updated)
	}
	if !updated.CreatedAt.Equal(createdAt) {
		t.Fatalf("update must not touch created_at, got %v", updated.CreatedAt)
	}
	if !updated.UpdatedAt.Equal(updatedAt) {
		t.Fatalf("expected updated_at %v, got %v", updatedAt, updated.UpdatedAt)
	}

	if _, err := repo.Update(42, Person{Gender: "x"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInMemoryDelete(t *testing.T) {
	repo := NewInMemoryRepository([]Person{{ID: 1, Gender: "female"}})

	if err := repo.Delete(1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	persons, _ := repo.List()
	if len(persons) != 0 {
		t.Fatalf("expected empty store, got %d records", len(persons))
	}

	if err := repo.Delete(1); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInMemoryListCopies(t *testing.T) {
	repo := NewInMemoryRepository([]Person{{ID: 1, Gender: "female"}})

	persons, _ := repo.List()
	persons[0].Gender = "changed"

	stored, _ := repo.GetByID(1)
	if stored.Gender != "female" {
		t.Fatalf("List must return a copy, store was mutated: %+v", stored)
	}
}
