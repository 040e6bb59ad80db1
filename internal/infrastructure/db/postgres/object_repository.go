package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/core/ports"
)

const objectColumns = "id, name, email, age, created_at, updated_at"

// ObjectRepository persists objects in the objects table. It owns the
// timestamp invariants: created_at is written once and never touched again;
// updated_at is rewritten with the current wall clock on every successful
// replace or patch.
type ObjectRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewObjectRepository(db *sql.DB) *ObjectRepository {
	return &ObjectRepository{db: db, now: time.Now}
}

func scanObject(row interface{ Scan(...any) error }) (*domain.Object, error) {
	var o domain.Object
	var age sql.NullInt64
	if err := row.Scan(&o.ID, &o.Name, &o.Email, &age, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	if age.Valid {
		v := int(age.Int64)
		o.Age = &v
	}
	return &o, nil
}

func (r *ObjectRepository) Create(ctx context.Context, in ports.CreateObjectInput) (*domain.Object, error) {
	const query = `
		INSERT INTO objects (name, email, age, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING ` + objectColumns

	now := r.now().UTC()
	obj, err := scanObject(r.db.QueryRowContext(ctx, query, in.Name, in.Email, in.Age, now))
	if err != nil {
		return nil, fmt.Errorf("insert object: %w", err)
	}
	return obj, nil
}

func (r *ObjectRepository) FindByID(ctx context.Context, id int64) (*domain.Object, error) {
	const query = `SELECT ` + objectColumns + ` FROM objects WHERE id = $1`

	obj, err := scanObject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrObjectNotFound
		}
		return nil, fmt.Errorf("find object: %w", err)
	}
	return obj, nil
}

// FindAll returns a stable id-ascending page plus the unpaged total.
func (r *ObjectRepository) FindAll(ctx context.Context, in ports.ListObjectsInput) ([]domain.Object, int64, error) {
	where := ""
	args := []any{}
	if in.Name != "" {
		where = " WHERE name ILIKE $1"
		args = append(args, "%"+in.Name+"%")
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM objects"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count objects: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM objects%s ORDER BY id ASC LIMIT $%d OFFSET $%d",
		objectColumns, where, len(args)+1, len(args)+2)
	args = append(args, in.Limit, in.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list objects: %w", err)
	}
	defer rows.Close()

	objects := make([]domain.Object, 0)
	for rows.Next() {
		obj, err := scanObject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan object: %w", err)
		}
		objects = append(objects, *obj)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list objects: %w", err)
	}
	return objects, total, nil
}

// Replace overwrites every mutable field. A nil age clears the column.
func (r *ObjectRepository) Replace(ctx context.Context, id int64, in ports.CreateObjectInput) (*domain.Object, error) {
	const query = `
		UPDATE objects
		SET name = $1, email = $2, age = $3, updated_at = $4
		WHERE id = $5
		RETURNING ` + objectColumns

	now := r.now().UTC()
	obj, err := scanObject(r.db.QueryRowContext(ctx, query, in.Name, in.Email, in.Age, now, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrObjectNotFound
		}
		return nil, fmt.Errorf("replace object: %w", err)
	}
	return obj, nil
}

// Patch mutates only the provided fields; omitted fields keep their prior
// value. Concurrent patches to the same row interleave last-write-wins.
func (r *ObjectRepository) Patch(ctx context.Context, id int64, in ports.UpdateObjectInput) (*domain.Object, error) {
	set := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if in.Name != nil {
		set = append(set, "name = "+arg(*in.Name))
	}
	if in.Email != nil {
		set = append(set, "email = "+arg(*in.Email))
	}
	if in.Age != nil {
		set = append(set, "age = "+arg(*in.Age))
	}
	set = append(set, "updated_at = "+arg(r.now().UTC()))

	query := fmt.Sprintf("UPDATE objects SET %s WHERE id = %s RETURNING %s",
		strings.Join(set, ", "), arg(id), objectColumns)

	obj, err := scanObject(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrObjectNotFound
		}
		return nil, fmt.Errorf("patch object: %w", err)
	}
	return obj, nil
}

func (r *ObjectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM objects WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	if affected == 0 {
		return domain.ErrObjectNotFound
	}
	return nil
}
