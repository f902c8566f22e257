package person

import (
	"testing"
	"time"
)

func TestServiceCreateStampsTimestamps(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))

	created, err := service.Create(Person{Name: strPtr("Alice"), Gender: "female"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("timestamps must be set on create: %+v", created)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("created_at and updated_at must match on create: %+v", created)
	}
}

func TestServiceUpdateRefreshesUpdatedAt(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))

	created, err := service.Create(Person{Gender: "male"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	time.Sleep(time.Millisecond)

	updated, err := service.Update(created.ID, Person{Name: strPtr("Bob"), Gender: "male"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updated_at must advance on update: created %v, updated %v", created.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at must survive updates: created %v, updated %v", created.CreatedAt, updated.CreatedAt)
	}
}

func TestServiceUpdateUnknownID(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))

	if _, err := service.Update(42, Person{Gender: "female"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceDeleteRemovesRecord(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))

	created, err := service.Create(Person{Gender: "female"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := service.Delete(created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := service.GetByID(created.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
