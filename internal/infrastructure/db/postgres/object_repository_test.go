package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/core/ports"
)

func newMockObjectRepo(t *testing.T) (*ObjectRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	repo := NewObjectRepository(db)
	repo.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return repo, mock
}

func objectRows(age any) *sqlmock.Rows {
	created := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{"id", "name", "email", "age", "created_at", "updated_at"}).
		AddRow(int64(7), "Alice", "alice@example.com", age, created, updated)
}

func TestObjectRepositoryCreate(t *testing.T) {
	repo, mock := newMockObjectRepo(t)

	age := 30
	mock.ExpectQuery("INSERT INTO objects").
		WithArgs("Alice", "alice@example.com", &age, sqlmock.AnyArg()).
		WillReturnRows(objectRows(int64(30)))

	obj, err := repo.Create(context.Background(), ports.CreateObjectInput{
		Name: "Alice", Email: "alice@example.com", Age: &age,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if obj.ID != 7 {
		t.Errorf("id = %d, want 7", obj.ID)
	}
	if obj.Age == nil || *obj.Age != 30 {
		t.Errorf("age = %v, want 30", obj.Age)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestObjectRepositoryFindByIDNotFound(t *testing.T) {
	repo, mock := newMockObjectRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM objects WHERE id").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "age", "created_at", "updated_at"}))

	_, err := repo.FindByID(context.Background(), 99)
	if !errors.Is(err, domain.ErrObjectNotFound) {
		t.Fatalf("err = %v, want ErrObjectNotFound", err)
	}
}

func TestObjectRepositoryFindByIDNullAge(t *testing.T) {
	repo, mock := newMockObjectRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM objects WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(objectRows(nil))

	obj, err := repo.FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if obj.Age != nil {
		t.Errorf("age = %v, want nil", obj.Age)
	}
}

func TestObjectRepositoryFindAllWithFilter(t *testing.T) {
	repo, mock := newMockObjectRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM objects WHERE name ILIKE").
		WithArgs("%ali%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT (.+) FROM objects WHERE name ILIKE (.+) ORDER BY id ASC").
		WithArgs("%ali%", 50, 0).
		WillReturnRows(objectRows(int64(30)))

	objects, total, err := repo.FindAll(context.Background(), ports.ListObjectsInput{
		Name: "ali", Limit: 50, Offset: 0,
	})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if total != 1 || len(objects) != 1 {
		t.Fatalf("got %d objects, total %d; want 1/1", len(objects), total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestObjectRepositoryPatchOnlyProvidedFields(t *testing.T) {
	repo, mock := newMockObjectRepo(t)

	name := "Alice B"
	mock.ExpectQuery("UPDATE objects SET name = (.+), updated_at = (.+) WHERE id").
		WithArgs("Alice B", sqlmock.AnyArg(), int64(7)).
		WillReturnRows(objectRows(int64(30)))

	_, err := repo.Patch(context.Background(), 7, ports.UpdateObjectInput{Name: &name})
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestObjectRepositoryDeleteNotFound(t *testing.T) {
	repo, mock := newMockObjectRepo(t)

	mock.ExpectExec("DELETE FROM objects WHERE id").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, domain.ErrObjectNotFound) {
		t.Fatalf("err = %v, want ErrObjectNotFound", err)
	}
}
