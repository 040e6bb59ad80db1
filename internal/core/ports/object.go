package ports

import (
	"context"

	"github.com/registrydesk/object-service/internal/core/domain"
)

// CreateObjectInput carries the full field set for create and replace.
type CreateObjectInput struct {
	Name  string
	Email string
	Age   *int
}

// UpdateObjectInput carries a partial update; nil fields are left untouched.
type UpdateObjectInput struct {
	Name  *string
	Email *string
	Age   *int
}

// ListObjectsInput filters and pages the object listing.
type ListObjectsInput struct {
	Name   string
	Limit  int
	Offset int
}

// ListObjectsResult is a stable, id-ascending page of objects.
type ListObjectsResult struct {
	Items  []domain.Object
	Total  int64
	Limit  int
	Offset int
}

// ObjectProfile is the enriched single-object projection.
type ObjectProfile struct {
	Object     domain.Object
	ProfileURL string
}

// ObjectService defines the use-case operations over objects.
type ObjectService interface {
	Create(ctx context.Context, in CreateObjectInput) (*domain.Object, error)
	Get(ctx context.Context, id int64) (*domain.Object, error)
	List(ctx context.Context, in ListObjectsInput) (*ListObjectsResult, error)
	Replace(ctx context.Context, id int64, in CreateObjectInput) (*domain.Object, error)
	Patch(ctx context.Context, id int64, in UpdateObjectInput) (*domain.Object, error)
	Delete(ctx context.Context, id int64) error
	Profile(ctx context.Context, id int64) (*ObjectProfile, error)
}

// ObjectRepository persists objects. The repository owns the timestamp
// invariants: created_at is written once, updated_at moves forward on every
// successful replace or patch.
type ObjectRepository interface {
	Create(ctx context.Context, in CreateObjectInput) (*domain.Object, error)
	FindByID(ctx context.Context, id int64) (*domain.Object, error)
	FindAll(ctx context.Context, in ListObjectsInput) ([]domain.Object, int64, error)
	Replace(ctx context.Context, id int64, in CreateObjectInput) (*domain.Object, error)
	Patch(ctx context.Context, id int64, in UpdateObjectInput) (*domain.Object, error)
	Delete(ctx context.Context, id int64) error
}
