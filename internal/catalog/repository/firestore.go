package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"product-catalog/internal/catalog"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const healthCheckTimeout = 2 * time.Second

// FirestoreRepository stores one document per product in a single collection,
// keyed by the product id rendered as text. Every write is an unconditional
// Set, so a racing check-then-write overwrites silently.
type FirestoreRepository struct {
	client     *firestore.Client
	collection string
}

func NewFirestore(client *firestore.Client, collection string) *FirestoreRepository {
	return &FirestoreRepository{client: client, collection: collection}
}

func (r *FirestoreRepository) doc(id int) *firestore.DocumentRef {
	return r.client.Collection(r.collection).Doc(strconv.Itoa(id))
}

// List returns every stored product in the store's natural iteration order.
func (r *FirestoreRepository) List(ctx context.Context) ([]catalog.Product, error) {
	iter := r.client.Collection(r.collection).Documents(ctx)
	defer iter.Stop()

	list := make([]catalog.Product, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate products: %w", err)
		}

		var p catalog.Product
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decode product %s: %w", doc.Ref.ID, err)
		}
		list = append(list, p)
	}

	return list, nil
}

func (r *FirestoreRepository) Get(ctx context.Context, id int) (catalog.Product, error) {
	doc, err := r.doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return catalog.Product{}, catalog.ErrNotFound
		}
		return catalog.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}

	var p catalog.Product
	if err := doc.DataTo(&p); err != nil {
		return catalog.Product{}, fmt.Errorf("decode product %d: %w", id, err)
	}
	return p, nil
}

func (r *FirestoreRepository) Exists(ctx context.Context, id int) (bool, error) {
	_, err := r.doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("lookup product %d: %w", id, err)
	}
	return true, nil
}

// NumberInUse scans the collection for any document with a matching number
// field. The number has no index guarantee, so cost grows with collection
// size.
func (r *FirestoreRepository) NumberInUse(ctx context.Context, number int) (bool, error) {
	iter := r.client.Collection(r.collection).
		Where("number", "==", number).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("scan number %d: %w", number, err)
	}
	return true, nil
}

func (r *FirestoreRepository) Put(ctx context.Context, p catalog.Product) error {
	if _, err := r.doc(p.ID).Set(ctx, p); err != nil {
		return fmt.Errorf("set product %d: %w", p.ID, err)
	}
	return nil
}

func (r *FirestoreRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

// Health issues a single-document read to confirm the store answers.
func (r *FirestoreRepository) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()

	iter := r.client.Collection(r.collection).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}
