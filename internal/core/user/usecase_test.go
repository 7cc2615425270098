package user

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tripplanner.app/internal/mocks"
	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

var loginTime = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

type fixture struct {
	repo   *mocks.UserRepository
	hasher *mocks.PasswordHasher
	tokens *mocks.TokenService
	logger *mocks.Logger
	uc     *UseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:   mocks.NewUserRepository(t),
		hasher: mocks.NewPasswordHasher(t),
		tokens: mocks.NewTokenService(t),
		logger: mocks.NewLogger(t),
	}
	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetAuthConfig().Return(ports.AuthConfig{MinPasswordLength: 8}).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		UserRepo:       f.repo,
		PasswordHasher: f.hasher,
		TokenService:   f.tokens,
		Config:         config,
		Logger:         f.logger,
		Clock:          func() time.Time { return loginTime },
	})
	require.NoError(t, err)
	f.uc = uc
	return f
}

func storedUser() *ports.UserData {
	return &ports.UserData{ID: 7, Email: "ana@example.com", Username: "ana", PasswordHash: "hashed", IsActive: true, TravelStyle: "budget"}
}

func TestUseCase_Register_Success(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().FindByEmail(mock.Anything, "ana@example.com").Return(nil, errors.NewNotFoundError("user not found"))
	f.hasher.EXPECT().Hash("supersecret").Return("hashed", nil)
	f.repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(u *ports.UserData) bool {
		return u.Email == "ana@example.com" && u.PasswordHash == "hashed" && u.Username == "ana" &&
			u.TravelStyle == DefaultTravelStyle && u.AccommodationPreference == DefaultAccommodation && u.IsActive
	})).Run(func(_ context.Context, u *ports.UserData) {
		u.ID = 7
	}).Return(nil)

	created, err := f.uc.Register(context.Background(), RegisterRequest{Email: " Ana@Example.com", Password: "supersecret"})

	require.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)
	assert.Equal(t, float64(DefaultBudgetMax), *created.BudgetMax)
}

func TestUseCase_Register_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().FindByEmail(mock.Anything, "ana@example.com").Return(storedUser(), nil)

	_, err := f.uc.Register(context.Background(), RegisterRequest{Email: "ana@example.com", Password: "supersecret"})

	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExistsError(err))
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUseCase_Register_MissingFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), RegisterRequest{Email: "ana@example.com"})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_Login_Success(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().FindByEmail(mock.Anything, "ana@example.com").Return(storedUser(), nil)
	f.hasher.EXPECT().Compare("hashed", "supersecret").Return(nil)
	f.repo.EXPECT().UpdateLastLogin(mock.Anything, uint(7), loginTime).Return(nil)
	f.tokens.EXPECT().Issue(uint(7)).Return("jwt-token", nil)

	session, err := f.uc.Login(context.Background(), LoginRequest{Email: "ana@example.com", Password: "supersecret"})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", session.Token)
	require.NotNil(t, session.User.LastLogin)
	assert.Equal(t, loginTime, *session.User.LastLogin)
}

func TestUseCase_Login_BadCredentials(t *testing.T) {
	t.Run("UnknownEmail", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, errors.NewNotFoundError("user not found"))

		_, err := f.uc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever1"})
		assert.True(t, errors.IsAuthError(err))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindByEmail(mock.Anything, "ana@example.com").Return(storedUser(), nil)
		f.hasher.EXPECT().Compare("hashed", "wrong").Return(stderrors.New("mismatch"))

		_, err := f.uc.Login(context.Background(), LoginRequest{Email: "ana@example.com", Password: "wrong"})
		assert.True(t, errors.IsAuthError(err))
		f.repo.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Inactive", func(t *testing.T) {
		f := newFixture(t)
		inactive := storedUser()
		inactive.IsActive = false
		f.repo.EXPECT().FindByEmail(mock.Anything, "ana@example.com").Return(inactive, nil)
		f.hasher.EXPECT().Compare("hashed", "supersecret").Return(nil)

		_, err := f.uc.Login(context.Background(), LoginRequest{Email: "ana@example.com", Password: "supersecret"})
		assert.True(t, errors.IsAuthError(err))
	})
}

func TestUseCase_Authenticate(t *testing.T) {
	t.Run("MissingToken", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Authenticate(context.Background(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Authorization token is required")
	})

	t.Run("VerifyFailurePassesThrough", func(t *testing.T) {
		f := newFixture(t)
		f.tokens.EXPECT().Verify("stale").Return(nil, errors.NewAuthError("Token has expired"))

		_, err := f.uc.Authenticate(context.Background(), "stale")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Token has expired")
	})

	t.Run("DeletedSubject", func(t *testing.T) {
		f := newFixture(t)
		f.tokens.EXPECT().Verify("tok").Return(&ports.TokenClaims{UserID: 9}, nil)
		f.repo.EXPECT().FindByID(mock.Anything, uint(9)).Return(nil, errors.NewNotFoundError("user not found"))

		_, err := f.uc.Authenticate(context.Background(), "tok")
		assert.True(t, errors.IsAuthError(err))
	})

	t.Run("Valid", func(t *testing.T) {
		f := newFixture(t)
		f.tokens.EXPECT().Verify("tok").Return(&ports.TokenClaims{UserID: 7}, nil)
		f.repo.EXPECT().FindByID(mock.Anything, uint(7)).Return(storedUser(), nil)

		u, err := f.uc.Authenticate(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, uint(7), u.ID)
	})
}

func TestUseCase_UpdateProfile(t *testing.T) {
	f := newFixture(t)
	style := "luxury"
	f.repo.EXPECT().FindByID(mock.Anything, uint(7)).Return(storedUser(), nil)
	f.repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *ports.UserData) bool {
		return u.ID == 7 && u.TravelStyle == "luxury" && len(u.PreferredActivities) == 1
	})).Return(nil)

	updated, err := f.uc.UpdateProfile(context.Background(), 7, ProfileUpdate{
		TravelStyle:         &style,
		PreferredActivities: []string{"hiking"},
	})

	require.NoError(t, err)
	assert.Equal(t, "luxury", updated.TravelStyle)
}

func TestUseCase_UpdateProfile_InvalidStyle(t *testing.T) {
	f := newFixture(t)
	style := "teleport"
	f.repo.EXPECT().FindByID(mock.Anything, uint(7)).Return(storedUser(), nil)

	_, err := f.uc.UpdateProfile(context.Background(), 7, ProfileUpdate{TravelStyle: &style})

	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_DeleteAccount(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Delete(mock.Anything, uint(7)).Return(nil)

	require.NoError(t, f.uc.DeleteAccount(context.Background(), 7))
	assert.True(t, f.logger.HasMessage("info", "Account deleted"))
}

func TestUseCase_GetProfile_NotFound(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().FindByID(mock.Anything, uint(3)).Return(nil, errors.NewNotFoundError("user not found"))

	_, err := f.uc.GetProfile(context.Background(), 3)

	assert.True(t, errors.IsNotFoundError(err))
}
