package repository

import (
	"errors"
	"fmt"

	"github.com/Dan9191/gig-score/internal/models"
	"github.com/Dan9191/gig-score/internal/utils"
	"github.com/goccy/go-json"
)

// ErrTampered is returned when a stored snapshot fails its integrity check
var ErrTampered = errors.New("snapshot integrity check failed")

// Sealer encrypts snapshots at rest and signs the ciphertext.
// Snapshots carry the platform phone numbers and vehicle plates a user typed in.
type Sealer struct {
	key    []byte
	secret string
}

// NewSealer builds a Sealer from an AES key and an HMAC secret
func NewSealer(key []byte, secret string) *Sealer {
	return &Sealer{key: key, secret: secret}
}

// Seal returns the encrypted payload and its HMAC
func (s *Sealer) Seal(snap *models.Snapshot) (string, string, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	payload, err := utils.Encrypt(raw, s.key)
	if err != nil {
		return "", "", fmt.Errorf("failed to encrypt snapshot: %w", err)
	}
	return payload, utils.GenerateHMAC([]byte(payload), s.secret), nil
}

// Open verifies and decrypts a sealed payload
func (s *Sealer) Open(payload, digest string) (*models.Snapshot, error) {
	if !utils.VerifyHMAC([]byte(payload), digest, s.secret) {
		return nil, ErrTampered
	}
	raw, err := utils.Decrypt(payload, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt snapshot: %w", err)
	}
	snap := &models.Snapshot{}
	if err := json.Unmarshal(raw, snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}
