//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"product-catalog/internal/catalog"

	"cloud.google.com/go/firestore"
)

// Runs against the Firestore emulator:
//
//	gcloud emulators firestore start --host-port=localhost:8790
//	FIRESTORE_EMULATOR_HOST=localhost:8790 go test -tags=integration ./...
func setupRepo(t *testing.T) *FirestoreRepository {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "catalog-test")
	if err != nil {
		t.Fatalf("create firestore client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	collection := fmt.Sprintf("products_test_%d", time.Now().UnixNano())
	return NewFirestore(client, collection)
}

func TestFirestoreRepository_RoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	p := catalog.Product{
		ID:       1,
		Number:   100,
		Name:     "Chair",
		Price:    50000,
		Rating:   4.5,
		Images:   []string{"a.jpg"},
		Features: []string{"sturdy"},
	}

	if err := repo.Put(ctx, p); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != 1 || got.Number != 100 || got.Name != "Chair" || got.Price != 50000 {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	exists, err := repo.Exists(ctx, 1)
	if err != nil || !exists {
		t.Fatalf("want exists, got %v %v", exists, err)
	}

	inUse, err := repo.NumberInUse(ctx, 100)
	if err != nil || !inUse {
		t.Fatalf("want number 100 in use, got %v %v", inUse, err)
	}
	inUse, err = repo.NumberInUse(ctx, 999)
	if err != nil || inUse {
		t.Fatalf("want number 999 free, got %v %v", inUse, err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("want 1 product, got %d", len(list))
	}

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, 1); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
	exists, err = repo.Exists(ctx, 1)
	if err != nil || exists {
		t.Fatalf("want gone after delete, got %v %v", exists, err)
	}
}

func TestFirestoreRepository_GetMissing(t *testing.T) {
	repo := setupRepo(t)

	if _, err := repo.Get(context.Background(), 404); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestFirestoreRepository_PutOverwrites(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, catalog.Product{ID: 1, Number: 100, Name: "Chair"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put(ctx, catalog.Product{ID: 1, Number: 200, Name: "Table"}); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Table" || got.Number != 200 {
		t.Fatalf("want last write to win, got %+v", got)
	}
}
