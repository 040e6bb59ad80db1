package ports

import (
	"context"

	"github.com/registrydesk/object-service/internal/core/domain"
)

// ListEmployeesInput filters and pages the employee directory.
type ListEmployeesInput struct {
	StoreID   *int64
	FirstName string
	LastName  string
	Limit     int
	Offset    int
}

// ListEmployeesResult is a page of employees.
type ListEmployeesResult struct {
	Items  []domain.Employee
	Total  int64
	Limit  int
	Offset int
}

// CreateEmployeeInput carries the fields for one employee in a batch create.
type CreateEmployeeInput struct {
	ExternalID *string
	FirstName  string
	LastName   string
	StoreID    int64
}

// EmployeeService defines the read-heavy employee directory operations.
type EmployeeService interface {
	Get(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error)
	ListByStore(ctx context.Context, storeID int64, in ListEmployeesInput) (*ListEmployeesResult, error)
	CreateBatch(ctx context.Context, in []CreateEmployeeInput) ([]domain.Employee, error)
}

// EmployeeRepository persists employees.
type EmployeeRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	FindAll(ctx context.Context, in ListEmployeesInput) ([]domain.Employee, int64, error)
	CreateBatch(ctx context.Context, in []CreateEmployeeInput) ([]domain.Employee, error)
}
