package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/core/ports"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// ObjectService implements the object use cases on top of the repository.
// All consistency guarantees are delegated to the store; concurrent patches
// to the same row interleave last-write-wins.
type ObjectService struct {
	repo   ports.ObjectRepository
	logger zerolog.Logger
}

func NewObjectService(repo ports.ObjectRepository, logger zerolog.Logger) *ObjectService {
	return &ObjectService{repo: repo, logger: logger}
}

func (s *ObjectService) Create(ctx context.Context, in ports.CreateObjectInput) (*domain.Object, error) {
	obj, err := s.repo.Create(ctx, in)
	if err != nil {
		s.logger.Error().Err(err).Msg("object create failed")
		return nil, err
	}
	s.logger.Info().Int64("object_id", obj.ID).Msg("object created")
	return obj, nil
}

func (s *ObjectService) Get(ctx context.Context, id int64) (*domain.Object, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ObjectService) List(ctx context.Context, in ports.ListObjectsInput) (*ports.ListObjectsResult, error) {
	in.Limit, in.Offset = clampPage(in.Limit, in.Offset)

	items, total, err := s.repo.FindAll(ctx, in)
	if err != nil {
		return nil, err
	}
	return &ports.ListObjectsResult{
		Items:  items,
		Total:  total,
		Limit:  in.Limit,
		Offset: in.Offset,
	}, nil
}

func (s *ObjectService) Replace(ctx context.Context, id int64, in ports.CreateObjectInput) (*domain.Object, error) {
	return s.repo.Replace(ctx, id, in)
}

func (s *ObjectService) Patch(ctx context.Context, id int64, in ports.UpdateObjectInput) (*domain.Object, error) {
	return s.repo.Patch(ctx, id, in)
}

func (s *ObjectService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("object_id", id).Msg("object deleted")
	return nil
}

func (s *ObjectService) Profile(ctx context.Context, id int64) (*ports.ObjectProfile, error) {
	obj, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.ObjectProfile{
		Object:     *obj,
		ProfileURL: fmt.Sprintf("/objects/%d/profile", obj.ID),
	}, nil
}

// clampPage applies the listing defaults: limit 50, capped at 500.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
