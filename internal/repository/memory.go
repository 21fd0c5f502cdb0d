package repository

import (
	"context"
	"sync"
	"time"

	"github.com/Dan9191/gig-score/internal/models"
)

type sealedSnapshot struct {
	payload     string
	digest      string
	generatedAt time.Time
}

// MemoryStore keeps users and snapshots in process memory.
// It backs the demo mode and tests; contents are lost on restart.
type MemoryStore struct {
	mu        sync.RWMutex
	sealer    *Sealer
	users     map[string]models.User
	snapshots map[string]sealedSnapshot
}

// NewMemoryStore returns an empty store
func NewMemoryStore(sealer *Sealer) *MemoryStore {
	return &MemoryStore{
		sealer:    sealer,
		users:     make(map[string]models.User),
		snapshots: make(map[string]sealedSnapshot),
	}
}

// Ping always succeeds
func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Email]; exists {
		return ErrDuplicate
	}
	user.CreatedAt = time.Now().UTC()
	m.users[user.Email] = *user
	return nil
}

func (m *MemoryStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *MemoryStore) SaveSnapshot(_ context.Context, snap *models.Snapshot) error {
	payload, digest, err := m.sealer.Seal(snap)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[snap.Email] = sealedSnapshot{payload: payload, digest: digest, generatedAt: snap.GeneratedAt}
	return nil
}

func (m *MemoryStore) LatestSnapshot(_ context.Context, email string) (*models.Snapshot, error) {
	m.mu.RLock()
	sealed, ok := m.snapshots[email]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	snap, err := m.sealer.Open(sealed.payload, sealed.digest)
	if err != nil {
		return nil, err
	}
	snap.Email = email
	return snap, nil
}

func (m *MemoryStore) DeleteSnapshot(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, email)
	return nil
}

func (m *MemoryStore) PurgeSnapshotsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for email, s := range m.snapshots {
		if s.generatedAt.Before(cutoff) {
			delete(m.snapshots, email)
			n++
		}
	}
	return n, nil
}
