package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"product-catalog/internal/catalog"

	"github.com/prometheus/client_golang/prometheus"
)

type Repository interface {
	List(ctx context.Context) ([]catalog.Product, error)
	Get(ctx context.Context, id int) (catalog.Product, error)
	Exists(ctx context.Context, id int) (bool, error)
	NumberInUse(ctx context.Context, number int) (bool, error)
	Put(ctx context.Context, p catalog.Product) error
	Delete(ctx context.Context, id int) error
}

type Publisher interface {
	Publish(ctx context.Context, event catalog.ProductEvent) error
}

type Service struct {
	repo      Repository
	publisher Publisher
	logger    *slog.Logger
	created   prometheus.Counter
	updated   prometheus.Counter
	deleted   prometheus.Counter
}

func New(repo Repository, publisher Publisher, logger *slog.Logger, created, updated, deleted prometheus.Counter) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		created:   created,
		updated:   updated,
		deleted:   deleted,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo list: %w", err)
	}
	return items, nil
}

func (s *Service) GetProduct(ctx context.Context, id int) (catalog.Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return catalog.Product{}, err
		}
		return catalog.Product{}, fmt.Errorf("repo get %d: %w", id, err)
	}
	return p, nil
}

// AddProduct runs the add gates in order; the first failure aborts before any
// write. The duplicate checks and the final write are separate calls with no
// coordination, so two concurrent adds can race (last write wins on the key).
func (s *Service) AddProduct(ctx context.Context, form catalog.ProductForm) (catalog.Product, error) {
	id, err := form.ID.Int("id")
	if err != nil {
		return catalog.Product{}, err
	}
	number, err := form.Number.Int("number")
	if err != nil {
		return catalog.Product{}, err
	}

	if !catalog.ValidateID(id) {
		return catalog.Product{}, catalog.ErrInvalidID
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("repo exists %d: %w", id, err)
	}
	if exists {
		return catalog.Product{}, &catalog.DuplicateIDError{ID: id}
	}

	inUse, err := s.repo.NumberInUse(ctx, number)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("repo number in use %d: %w", number, err)
	}
	if inUse {
		return catalog.Product{}, &catalog.DuplicateNumberError{Number: number}
	}

	p, err := form.Product(id, number)
	if err != nil {
		return catalog.Product{}, err
	}

	if err := s.repo.Put(ctx, p); err != nil {
		return catalog.Product{}, fmt.Errorf("repo put %d: %w", id, err)
	}

	s.publish(ctx, catalog.EventCreated, p.ID, p.Name)
	s.created.Inc()
	return p, nil
}

// UpdateProduct merges the submitted fields over the stored document and
// persists the whole record back under the same key. A changed number is
// re-checked against the collection before the merge.
func (s *Service) UpdateProduct(ctx context.Context, form catalog.ProductForm) (catalog.Product, error) {
	id, err := form.ID.Int("id")
	if err != nil {
		return catalog.Product{}, err
	}
	if !catalog.ValidateID(id) {
		return catalog.Product{}, catalog.ErrInvalidID
	}

	stored, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return catalog.Product{}, err
		}
		return catalog.Product{}, fmt.Errorf("repo get %d: %w", id, err)
	}

	if form.Number.Set {
		number, err := form.Number.Int("number")
		if err != nil {
			return catalog.Product{}, err
		}
		if number != stored.Number {
			inUse, err := s.repo.NumberInUse(ctx, number)
			if err != nil {
				return catalog.Product{}, fmt.Errorf("repo number in use %d: %w", number, err)
			}
			if inUse {
				return catalog.Product{}, &catalog.DuplicateNumberError{Number: number}
			}
		}
	}

	p, err := form.Merge(stored)
	if err != nil {
		return catalog.Product{}, err
	}

	if err := s.repo.Put(ctx, p); err != nil {
		return catalog.Product{}, fmt.Errorf("repo put %d: %w", id, err)
	}

	s.publish(ctx, catalog.EventUpdated, p.ID, p.Name)
	s.updated.Inc()
	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("repo exists %d: %w", id, err)
	}
	if !exists {
		return catalog.ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("repo delete %d: %w", id, err)
	}

	s.publish(ctx, catalog.EventDeleted, id, "")
	s.deleted.Inc()
	return nil
}

// publish is best-effort: a broker failure is logged and never changes the
// outcome of the request that triggered it.
func (s *Service) publish(ctx context.Context, eventType string, id int, name string) {
	err := s.publisher.Publish(ctx, catalog.ProductEvent{
		EventType: eventType,
		ProductID: id,
		Name:      name,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("publish event failed",
			"event_type", eventType,
			"product_id", id,
			"error", err,
		)
	}
}
