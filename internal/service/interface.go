package service

import (
	"context"
	"time"

	"github.com/Dan9191/gig-score/internal/models"
)

// UserStore persists registered users. The service depends on this
// interface, not on a concrete store.
//
//go:generate mockgen -destination=mocks/mock_store.go -source=interface.go
type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

// SnapshotStore caches the latest analysis per user
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, snap *models.Snapshot) error
	LatestSnapshot(ctx context.Context, email string) (*models.Snapshot, error)
	DeleteSnapshot(ctx context.Context, email string) error
	PurgeSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Notifier sends account e-mails
type Notifier interface {
	SendWelcome(to, name string) error
	SendScoreReport(to, name string, snapshot *models.Snapshot) error
}

// RateSource provides the reference lending rate in percent
type RateSource interface {
	ReferenceRate(ctx context.Context) (float64, error)
}
