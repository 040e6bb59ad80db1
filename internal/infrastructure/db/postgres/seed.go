package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/registrydesk/object-service/pkg/logger"
)

type seedUser struct {
	username string
	password string
	role     string
}

type seedEmployee struct {
	externalID string
	firstName  string
	lastName   string
	storeID    int64
}

var demoUsers = []seedUser{
	{username: "admin", password: "password123", role: "admin"},
	{username: "user", password: "userpass", role: "user"},
}

var demoEmployees = []seedEmployee{
	{"EMP001", "John", "Smith", 1},
	{"EMP002", "Sarah", "Johnson", 1},
	{"EMP003", "Michael", "Brown", 1},
	{"EMP004", "Emily", "Davis", 2},
	{"EMP005", "David", "Wilson", 2},
	{"EMP006", "Lisa", "Anderson", 2},
	{"EMP007", "James", "Taylor", 3},
	{"EMP008", "Jennifer", "Martinez", 3},
	{"EMP009", "Robert", "Garcia", 3},
	{"EMP010", "Amanda", "Rodriguez", 1},
	{"EMP011", "Christopher", "Lee", 2},
	{"EMP012", "Jessica", "White", 3},
}

// Seed populates the demo users and employee directory the first time the
// service starts against an empty database. A non-empty table is left alone.
func Seed(ctx context.Context, db *sql.DB) error {
	if err := seedUsers(ctx, db); err != nil {
		return err
	}
	return seedEmployees(ctx, db)
}

func seedUsers(ctx context.Context, db *sql.DB) error {
	var count int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	const query = `
		INSERT INTO users (id, username, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)`

	now := time.Now().UTC()
	for _, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		if _, err := db.ExecContext(ctx, query, uuid.NewString(), u.username, string(hash), u.role, now); err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
	}

	log := logger.Get()
	log.Info().Int("users", len(demoUsers)).Msg("seeded demo users")
	return nil
}

func seedEmployees(ctx context.Context, db *sql.DB) error {
	var count int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees").Scan(&count); err != nil {
		return fmt.Errorf("count employees: %w", err)
	}
	if count > 0 {
		return nil
	}

	const query = `
		INSERT INTO employees (external_id, first_name, last_name, store_id)
		VALUES ($1, $2, $3, $4)`

	for _, e := range demoEmployees {
		if _, err := db.ExecContext(ctx, query, e.externalID, e.firstName, e.lastName, e.storeID); err != nil {
			return fmt.Errorf("seed employee %s: %w", e.externalID, err)
		}
	}

	log := logger.Get()
	log.Info().Int("employees", len(demoEmployees)).Msg("seeded employee directory")
	return nil
}
