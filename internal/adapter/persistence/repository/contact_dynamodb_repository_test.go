package repository

import (
	"context"
	"testing"
	"time"

	"kalakruti_api/internal/domain/entities"
)

func TestContactDynamoRepository_Create(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewContactDynamoRepository(fake, "contacts")

	c := entities.Contact{ID: "c-1", Name: "Kiran", Email: "k@example.com", Phone: "0123456789", Message: "Need a quote", CreatedAt: time.Now()}
	if _, err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.items) != 1 || str(fake.items[0]["message"]) != "Need a quote" {
		t.Fatalf("unexpected stored items: %+v", fake.items)
	}
	if _, err := repo.Create(context.Background(), c); err == nil {
		t.Fatalf("expected duplicate error")
	}
}
