package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/core/ports"
)

// EmployeeService implements the read-heavy employee directory use cases.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context, in ports.ListEmployeesInput) (*ports.ListEmployeesResult, error) {
	in.Limit, in.Offset = clampPage(in.Limit, in.Offset)

	items, total, err := s.repo.FindAll(ctx, in)
	if err != nil {
		return nil, err
	}
	return &ports.ListEmployeesResult{
		Items:  items,
		Total:  total,
		Limit:  in.Limit,
		Offset: in.Offset,
	}, nil
}

// ListByStore is List with the store filter pinned from the path parameter.
func (s *EmployeeService) ListByStore(ctx context.Context, storeID int64, in ports.ListEmployeesInput) (*ports.ListEmployeesResult, error) {
	in.StoreID = &storeID
	return s.List(ctx, in)
}

func (s *EmployeeService) CreateBatch(ctx context.Context, in []ports.CreateEmployeeInput) ([]domain.Employee, error) {
	created, err := s.repo.CreateBatch(ctx, in)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(in)).Msg("employee batch create failed")
		return nil, err
	}
	s.logger.Info().Int("count", len(created)).Msg("employees created")
	return created, nil
}
