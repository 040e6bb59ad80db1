package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/core/ports"
)

const employeeColumns = "id, external_id, first_name, last_name, store_id"

type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func scanEmployee(row interface{ Scan(...any) error }) (*domain.Employee, error) {
	var e domain.Employee
	var externalID sql.NullString
	if err := row.Scan(&e.ID, &externalID, &e.FirstName, &e.LastName, &e.StoreID); err != nil {
		return nil, err
	}
	if externalID.Valid {
		e.ExternalID = &externalID.String
	}
	return &e, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return emp, nil
}

func (r *EmployeeRepository) FindAll(ctx context.Context, in ports.ListEmployeesInput) ([]domain.Employee, int64, error) {
	where := ""
	args := []any{}
	add := func(clause string, v any) {
		args = append(args, v)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(clause, len(args))
	}
	if in.StoreID != nil {
		add("store_id = $%d", *in.StoreID)
	}
	if in.FirstName != "" {
		add("first_name ILIKE $%d", "%"+in.FirstName+"%")
	}
	if in.LastName != "" {
		add("last_name ILIKE $%d", "%"+in.LastName+"%")
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM employees%s ORDER BY id ASC LIMIT $%d OFFSET $%d",
		employeeColumns, where, len(args)+1, len(args)+2)
	args = append(args, in.Limit, in.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, *emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	return employees, total, nil
}

// CreateBatch inserts all employees in one transaction; any failure rolls
// the whole batch back.
func (r *EmployeeRepository) CreateBatch(ctx context.Context, in []ports.CreateEmployeeInput) ([]domain.Employee, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin batch: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO employees (external_id, first_name, last_name, store_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + employeeColumns

	created := make([]domain.Employee, 0, len(in))
	for _, e := range in {
		emp, err := scanEmployee(tx.QueryRowContext(ctx, query, e.ExternalID, e.FirstName, e.LastName, e.StoreID))
		if err != nil {
			return nil, fmt.Errorf("insert employee: %w", err)
		}
		created = append(created, *emp)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}
	return created, nil
}
