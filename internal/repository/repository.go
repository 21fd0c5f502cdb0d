package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dan9191/gig-score/internal/models"
	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a user or snapshot does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a user with the same email exists
	ErrDuplicate = errors.New("already exists")
)

const uniqueViolation = "23505"

const schema = `
	CREATE SCHEMA IF NOT EXISTS gigscore;
	CREATE TABLE IF NOT EXISTS gigscore.users (
		email         TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		phone         TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS gigscore.snapshots (
		email        TEXT PRIMARY KEY REFERENCES gigscore.users (email) ON DELETE CASCADE,
		payload      TEXT NOT NULL,
		hmac         TEXT NOT NULL,
		generated_at TIMESTAMPTZ NOT NULL
	);`

// Repository provides database operations
type Repository struct {
	db     *sql.DB
	sealer *Sealer
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB, sealer *Sealer) *Repository {
	return &Repository{db: db, sealer: sealer}
}

// Migrate creates the schema if it does not exist yet
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Ping checks database connectivity
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO gigscore.users (email, name, phone, password_hash, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, user.Email, user.Name, user.Phone, user.PasswordHash).
		Scan(&user.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT email, name, phone, password_hash, created_at
		FROM gigscore.users
		WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.Email, &user.Name, &user.Phone, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// SaveSnapshot stores the user's latest snapshot, replacing the previous one
func (r *Repository) SaveSnapshot(ctx context.Context, snap *models.Snapshot) error {
	payload, digest, err := r.sealer.Seal(snap)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO gigscore.snapshots (email, payload, hmac, generated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE
		SET payload = EXCLUDED.payload, hmac = EXCLUDED.hmac, generated_at = EXCLUDED.generated_at`
	if _, err := r.db.ExecContext(ctx, query, snap.Email, payload, digest, snap.GeneratedAt); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot retrieves the stored snapshot of a user
func (r *Repository) LatestSnapshot(ctx context.Context, email string) (*models.Snapshot, error) {
	var payload, digest string
	query := `SELECT payload, hmac FROM gigscore.snapshots WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&payload, &digest)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find snapshot: %w", err)
	}

	snap, err := r.sealer.Open(payload, digest)
	if err != nil {
		return nil, err
	}
	snap.Email = email
	return snap, nil
}

// DeleteSnapshot removes the user's snapshot; deleting a missing one is not an error
func (r *Repository) DeleteSnapshot(ctx context.Context, email string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM gigscore.snapshots WHERE email = $1`, email); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// PurgeSnapshotsBefore deletes snapshots generated before cutoff and returns how many went
func (r *Repository) PurgeSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gigscore.snapshots WHERE generated_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge snapshots: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged snapshots: %w", err)
	}
	return n, nil
}
