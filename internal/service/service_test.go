package service_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Dan9191/gig-score/internal/chatbot"
	"github.com/Dan9191/gig-score/internal/config"
	"github.com/Dan9191/gig-score/internal/integrations/ratefeed"
	"github.com/Dan9191/gig-score/internal/models"
	"github.com/Dan9191/gig-score/internal/repository"
	"github.com/Dan9191/gig-score/internal/service"
	mock_service "github.com/Dan9191/gig-score/internal/service/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:               "test-secret",
		TokenTTL:                time.Hour,
		SnapshotTTL:             24 * time.Hour,
		DeterministicSimulation: true,
	}
}

type fixture struct {
	users     *mock_service.MockUserStore
	snapshots *mock_service.MockSnapshotStore
	notifier  *mock_service.MockNotifier
	svc       *service.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	log := logrus.New()
	log.SetOutput(io.Discard)

	f := &fixture{
		users:     mock_service.NewMockUserStore(ctrl),
		snapshots: mock_service.NewMockSnapshotStore(ctrl),
		notifier:  mock_service.NewMockNotifier(ctrl),
	}
	f.svc = service.NewService(f.users, f.snapshots, log, testConfig()).
		WithNotifier(f.notifier).
		WithClock(func() time.Time { return fixedNow })
	return f
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func subjectOf(t *testing.T, token string) string {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return claims.Subject
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and sends welcome", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, "asha@example.com", u.Email)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw123456")))
			return nil
		})
		f.notifier.EXPECT().SendWelcome("asha@example.com", "Asha").Return(nil)

		session, token, err := f.svc.Register(ctx, " Asha ", " Asha@Example.com ", "+91 90000 00000", "pw123456")
		require.NoError(t, err)
		assert.Equal(t, models.Session{Email: "asha@example.com", Name: "Asha", Phone: "+91 90000 00000", IsAuthenticated: true}, *session)
		assert.Equal(t, "asha@example.com", subjectOf(t, token))
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(repository.ErrDuplicate)

		_, _, err := f.svc.Register(ctx, "Asha", "asha@example.com", "", "pw")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
		assert.EqualError(t, err, "email already registered")
	})

	t.Run("mail failure does not fail registration", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil)
		f.notifier.EXPECT().SendWelcome(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		_, _, err := f.svc.Register(ctx, "Asha", "asha@example.com", "", "pw")
		assert.NoError(t, err)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newFixture(t)
		_, _, err := f.svc.Register(ctx, "", "asha@example.com", "", "pw")
		assert.ErrorIs(t, err, service.ErrInvalidInput)
		_, _, err = f.svc.Register(ctx, "Asha", "asha@example.com", "", "")
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	user := &models.User{Email: "asha@example.com", Name: "Asha", PasswordHash: hashed(t, "right")}

	tests := []struct {
		name     string
		password string
		found    *models.User
		findErr  error
		wantErr  error
	}{
		{name: "valid credentials", password: "right", found: user},
		{name: "wrong password", password: "wrong", found: user, wantErr: service.ErrInvalidCredentials},
		{name: "unknown user", password: "right", findErr: repository.ErrNotFound, wantErr: service.ErrInvalidCredentials},
		{name: "store failure", password: "right", findErr: errors.New("db gone"), wantErr: service.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.users.EXPECT().FindUserByEmail(ctx, "asha@example.com").Return(tt.found, tt.findErr)

			session, token, err := f.svc.Login(ctx, "ASHA@example.com", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
				return
			}
			require.NoError(t, err)
			assert.True(t, session.IsAuthenticated)
			assert.Equal(t, "asha@example.com", subjectOf(t, token))
		})
	}
}

func TestService_SeedDemoUser(t *testing.T) {
	ctx := context.Background()

	t.Run("already present", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().FindUserByEmail(ctx, service.DemoEmail).Return(&models.User{Email: service.DemoEmail}, nil)
		assert.NoError(t, f.svc.SeedDemoUser(ctx))
	})

	t.Run("created when missing", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().FindUserByEmail(ctx, service.DemoEmail).Return(nil, repository.ErrNotFound)
		f.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, service.DemoName, u.Name)
			assert.Equal(t, service.DemoPhone, u.Phone)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(service.DemoPassword)))
			return nil
		})
		assert.NoError(t, f.svc.SeedDemoUser(ctx))
	})
}

func analyzeRequest() service.AnalyzeRequest {
	return service.AnalyzeRequest{
		UPIID:      "rahul@okaxis",
		PaymentApp: "gpay",
		Platforms: map[models.PlatformKey]models.PlatformCredentials{
			models.PlatformUber:   {DriverName: "Rahul Kumar", VehicleNumber: "KA01AB1234"},
			models.PlatformZomato: {PartnerID: "ZMT-7781"},
			models.PlatformOla:    {},
		},
	}
}

func TestService_Analyze(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var saved []*models.Snapshot
	f.snapshots.EXPECT().SaveSnapshot(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *models.Snapshot) error {
		saved = append(saved, s)
		return nil
	}).Times(2)
	f.users.EXPECT().FindUserByEmail(ctx, "asha@example.com").Return(&models.User{Email: "asha@example.com", Name: "Asha"}, nil).Times(2)
	f.notifier.EXPECT().SendScoreReport("asha@example.com", "Asha", gomock.Any()).Return(nil).Times(2)

	snap, err := f.svc.Analyze(ctx, "asha@example.com", analyzeRequest())
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", snap.Email)
	assert.Equal(t, fixedNow, snap.GeneratedAt)
	assert.Equal(t, "rahul@okaxis", snap.UPIData.UPIID)
	assert.GreaterOrEqual(t, len(snap.UPIData.Transactions), 6*40)
	assert.Len(t, snap.PlatformRatings, 2, "ola has no driver name and is skipped")
	assert.Contains(t, snap.PlatformRatings, models.PlatformUber)
	assert.Contains(t, snap.PlatformRatings, models.PlatformZomato)
	assert.GreaterOrEqual(t, snap.ScoreData.Score, models.MinScore)
	assert.LessOrEqual(t, snap.ScoreData.Score, models.MaxScore)
	assert.Equal(t, "gpay", snap.UserInputs.PaymentApp)

	again, err := f.svc.Analyze(ctx, "asha@example.com", analyzeRequest())
	require.NoError(t, err)
	assert.Equal(t, snap.ScoreData, again.ScoreData, "deterministic mode reproduces the score")
	assert.Equal(t, snap.UPIData.Transactions, again.UPIData.Transactions)
	assert.Len(t, saved, 2)
}

func TestService_Analyze_SaveFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.snapshots.EXPECT().SaveSnapshot(ctx, gomock.Any()).Return(errors.New("disk full"))

	_, err := f.svc.Analyze(ctx, "asha@example.com", service.AnalyzeRequest{UPIID: "x@upi"})
	assert.EqualError(t, err, "disk full")
}

func TestService_Chat(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit score skips the store", func(t *testing.T) {
		f := newFixture(t)
		score := 780
		resp, err := f.svc.Chat(ctx, "asha@example.com", "Suggest a mutual fund", &score)
		require.NoError(t, err)
		assert.Equal(t, chatbot.KindInvestment, resp.Kind())
	})

	t.Run("uses latest snapshot score", func(t *testing.T) {
		f := newFixture(t)
		f.snapshots.EXPECT().LatestSnapshot(ctx, "asha@example.com").
			Return(&models.Snapshot{ScoreData: models.ScoreResult{Score: 700}}, nil)
		resp, err := f.svc.Chat(ctx, "asha@example.com", "what is my score", nil)
		require.NoError(t, err)
		assert.Equal(t, chatbot.KindInfo, resp.Kind())
		assert.Contains(t, resp.Text(), "700")
	})

	t.Run("no snapshot yet", func(t *testing.T) {
		f := newFixture(t)
		f.snapshots.EXPECT().LatestSnapshot(ctx, "asha@example.com").Return(nil, repository.ErrNotFound)
		resp, err := f.svc.Chat(ctx, "asha@example.com", "loan?", nil)
		require.NoError(t, err)
		assert.Equal(t, chatbot.KindPlain, resp.Kind())
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)
		f.snapshots.EXPECT().LatestSnapshot(ctx, "asha@example.com").Return(nil, errors.New("db gone"))
		_, err := f.svc.Chat(ctx, "asha@example.com", "loan?", nil)
		assert.Error(t, err)
	})
}

func TestService_LatestSnapshot_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.snapshots.EXPECT().LatestSnapshot(ctx, "asha@example.com").Return(nil, repository.ErrNotFound)

	_, err := f.svc.LatestSnapshot(ctx, "asha@example.com")
	assert.ErrorIs(t, err, service.ErrSnapshotNotFound)
}

func TestService_LogoutAndPurge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.snapshots.EXPECT().DeleteSnapshot(ctx, "asha@example.com").Return(nil)
	f.snapshots.EXPECT().PurgeSnapshotsBefore(ctx, fixedNow.Add(-24*time.Hour)).Return(int64(3), nil)

	require.NoError(t, f.svc.Logout(ctx, "asha@example.com"))
	n, err := f.svc.PurgeExpiredSnapshots(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestService_ReferenceRate(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	_, err := f.svc.ReferenceRate(ctx)
	assert.ErrorIs(t, err, service.ErrRateNotConfigured)

	rates := mock_service.NewMockRateSource(gomock.NewController(t))
	f.svc.WithRateSource(rates)

	rates.EXPECT().ReferenceRate(ctx).Return(10.5, nil)
	rate, err := f.svc.ReferenceRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10.5, rate)

	rates.EXPECT().ReferenceRate(ctx).Return(0.0, ratefeed.ErrNotConfigured)
	_, err = f.svc.ReferenceRate(ctx)
	assert.ErrorIs(t, err, service.ErrRateNotConfigured)

	feedErr := errors.New("unexpected status code: 500")
	rates.EXPECT().ReferenceRate(ctx).Return(0.0, feedErr)
	_, err = f.svc.ReferenceRate(ctx)
	assert.ErrorIs(t, err, service.ErrRateUnavailable)
	assert.ErrorIs(t, err, feedErr)
}

func TestService_StartRetention_BadSchedule(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.StartRetention("not a schedule")
	assert.Error(t, err)
}
