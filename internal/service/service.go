package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	"github.com/Dan9191/gig-score/internal/chatbot"
	"github.com/Dan9191/gig-score/internal/config"
	"github.com/Dan9191/gig-score/internal/integrations/ratefeed"
	"github.com/Dan9191/gig-score/internal/models"
	"github.com/Dan9191/gig-score/internal/repository"
	"github.com/Dan9191/gig-score/internal/scoring"
	"github.com/Dan9191/gig-score/internal/simulator"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrSnapshotNotFound   = errors.New("no score computed yet")
	ErrRateUnavailable    = errors.New("reference rate unavailable")
	ErrRateNotConfigured  = errors.New("reference rate feed not configured")
)

// Demo account available on every fresh store
const (
	DemoEmail    = "demo@gigscore.com"
	DemoPassword = "gigscore123"
	DemoName     = "Rahul Kumar"
	DemoPhone    = "+91 98765 43210"
)

const noScoreMessage = "I don't have a Gig-Score for you yet. Link your UPI ID and gig platforms first, then ask me again."

// AnalyzeRequest is what the linking wizard submits
type AnalyzeRequest struct {
	UPIID      string                                            `json:"upiId"`
	PaymentApp string                                            `json:"paymentApp"`
	Platforms  map[models.PlatformKey]models.PlatformCredentials `json:"platforms"`
}

// Service handles business logic
type Service struct {
	users     UserStore
	snapshots SnapshotStore
	notifier  Notifier
	rates     RateSource
	log       *logrus.Logger
	config    *config.Config
	now       func() time.Time
}

// NewService initializes a new service
func NewService(users UserStore, snapshots SnapshotStore, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		users:     users,
		snapshots: snapshots,
		log:       log,
		config:    cfg,
		now:       time.Now,
	}
}

// WithNotifier enables account e-mails
func (s *Service) WithNotifier(n Notifier) *Service {
	s.notifier = n
	return s
}

// WithRateSource enables the reference rate lookup
func (s *Service) WithRateSource(r RateSource) *Service {
	s.rates = r
	return s
}

// WithClock overrides the time source, for tests
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.now = clock
	return s
}

// SeedDemoUser makes sure the demo account exists
func (s *Service) SeedDemoUser(ctx context.Context) error {
	_, err := s.users.FindUserByEmail(ctx, DemoEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	err = s.users.CreateUser(ctx, &models.User{
		Email:        DemoEmail,
		Name:         DemoName,
		Phone:        DemoPhone,
		PasswordHash: string(hash),
	})
	if err != nil && !errors.Is(err, repository.ErrDuplicate) {
		return err
	}
	s.log.Infof("Demo user available: %s", DemoEmail)
	return nil
}

// Register creates a new user with hashed password and logs them in
func (s *Service) Register(ctx context.Context, name, email, phone, password string) (*models.Session, string, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		Phone:        strings.TrimSpace(phone),
		PasswordHash: string(hashedPassword),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.issueToken(user.Email)
	if err != nil {
		return nil, "", err
	}

	s.log.Infof("User registered: %s", user.Email)
	if s.notifier != nil {
		if err := s.notifier.SendWelcome(user.Email, user.Name); err != nil {
			s.log.Warnf("Welcome email to %s failed: %v", user.Email, err)
		}
	}

	session := models.SessionFor(user)
	return &session, token, nil
}

// Login authenticates a user and returns the session and a JWT token
func (s *Service) Login(ctx context.Context, email, password string) (*models.Session, string, error) {
	user, err := s.users.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Errorf("User lookup failed: %v", err)
		}
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user.Email)
	if err != nil {
		return nil, "", err
	}

	s.log.Infof("User logged in: %s", user.Email)
	session := models.SessionFor(user)
	return &session, token, nil
}

func (s *Service) issueToken(email string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// Analyze simulates the user's UPI history and platform ratings, scores them
// and stores the result as the user's latest snapshot
func (s *Service) Analyze(ctx context.Context, email string, req AnalyzeRequest) (*models.Snapshot, error) {
	rnd := rand.New(rand.NewSource(s.seedFor(req.UPIID)))
	snap := Evaluate(rnd, s.now(), req)
	snap.Email = email

	for key := range req.Platforms {
		if _, ok := snap.PlatformRatings[key]; !ok {
			s.log.WithFields(logrus.Fields{"user": email, "platform": key}).Debug("Platform skipped: unknown or missing identity")
		}
	}

	if err := s.snapshots.SaveSnapshot(ctx, snap); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user":         email,
		"score":        snap.ScoreData.Score,
		"transactions": snap.UPIData.Analysis.TotalTransactions,
		"platforms":    len(snap.PlatformRatings),
	}).Info("Gig-Score computed")

	s.sendScoreReport(ctx, snap)
	return snap, nil
}

// Evaluate runs the simulation and scoring pipeline without storing anything.
// The transaction history is drawn from rnd before the platform ratings.
func Evaluate(rnd *rand.Rand, now time.Time, req AnalyzeRequest) *models.Snapshot {
	clock := func() time.Time { return now }

	upiData := simulator.New(rnd, clock).Simulate(req.UPIID)
	ratings := simulator.NewRatingGenerator(rnd, nil).Generate(req.Platforms)
	score := scoring.NewEngine(clock).Compute(&upiData.Analysis, ratings)

	platforms := req.Platforms
	if platforms == nil {
		platforms = map[models.PlatformKey]models.PlatformCredentials{}
	}
	return &models.Snapshot{
		UPIData:         upiData,
		PlatformRatings: ratings,
		ScoreData:       score,
		UserInputs: models.UserInputs{
			UPIID:      req.UPIID,
			PaymentApp: req.PaymentApp,
			Platforms:  platforms,
		},
		GeneratedAt: now,
	}
}

func (s *Service) sendScoreReport(ctx context.Context, snap *models.Snapshot) {
	if s.notifier == nil {
		return
	}
	user, err := s.users.FindUserByEmail(ctx, snap.Email)
	if err != nil {
		s.log.Warnf("Score report for %s skipped: %v", snap.Email, err)
		return
	}
	if err := s.notifier.SendScoreReport(user.Email, user.Name, snap); err != nil {
		s.log.Warnf("Score report to %s failed: %v", user.Email, err)
	}
}

// seedFor returns the simulation seed. Deterministic mode derives it from the UPI id.
func (s *Service) seedFor(upiID string) int64 {
	if !s.config.DeterministicSimulation {
		return rand.Int63()
	}
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(upiID))))
	return int64(h.Sum64())
}

// LatestSnapshot returns the user's last analysis
func (s *Service) LatestSnapshot(ctx context.Context, email string) (*models.Snapshot, error) {
	snap, err := s.snapshots.LatestSnapshot(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSnapshotNotFound
	}
	return snap, err
}

// Chat answers message using score, or the user's latest score when score is nil
func (s *Service) Chat(ctx context.Context, email, message string, score *int) (chatbot.Response, error) {
	if score != nil {
		return chatbot.Respond(message, *score), nil
	}

	snap, err := s.LatestSnapshot(ctx, email)
	if errors.Is(err, ErrSnapshotNotFound) {
		return chatbot.NewPlain(noScoreMessage), nil
	}
	if err != nil {
		return nil, err
	}
	return chatbot.Respond(message, snap.ScoreData.Score), nil
}

// Logout drops the user's cached snapshot
func (s *Service) Logout(ctx context.Context, email string) error {
	if err := s.snapshots.DeleteSnapshot(ctx, email); err != nil {
		return err
	}
	s.log.Infof("User logged out: %s", email)
	return nil
}

// PurgeExpiredSnapshots removes snapshots older than the configured TTL
func (s *Service) PurgeExpiredSnapshots(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.config.SnapshotTTL)
	n, err := s.snapshots.PurgeSnapshotsBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Infof("Purged %d snapshots generated before %s", n, cutoff.Format(time.RFC3339))
	}
	return n, nil
}

// ReferenceRate returns the current reference lending rate
func (s *Service) ReferenceRate(ctx context.Context) (float64, error) {
	if s.rates == nil {
		return 0, ErrRateNotConfigured
	}
	rate, err := s.rates.ReferenceRate(ctx)
	if errors.Is(err, ratefeed.ErrNotConfigured) {
		return 0, ErrRateNotConfigured
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRateUnavailable, err)
	}
	return rate, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
