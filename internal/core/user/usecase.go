package user

import (
	"context"
	"fmt"
	"time"

	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

const invalidCredentials = "Invalid credentials"

type UseCase struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	config ports.ConfigProvider
	logger ports.Logger
	now    func() time.Time
}

type UseCaseDependencies struct {
	UserRepo       ports.UserRepository
	PasswordHasher ports.PasswordHasher
	TokenService   ports.TokenService
	Config         ports.ConfigProvider
	Logger         ports.Logger
	Clock          func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.UserRepo == nil {
		return nil, errors.NewValidationError("user repository is required")
	}
	if deps.PasswordHasher == nil {
		return nil, errors.NewValidationError("password hasher is required")
	}
	if deps.TokenService == nil {
		return nil, errors.NewValidationError("token service is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	now := deps.Clock
	if now == nil {
		now = time.Now
	}

	return &UseCase{
		repo:   deps.UserRepo,
		hasher: deps.PasswordHasher,
		tokens: deps.TokenService,
		config: deps.Config,
		logger: deps.Logger,
		now:    now,
	}, nil
}

// Register creates an account with default travel preferences
func (uc *UseCase) Register(ctx context.Context, request RegisterRequest) (*User, error) {
	request.Normalize()
	if err := request.IsValid(uc.config.GetAuthConfig().MinPasswordLength); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.repo.FindByEmail(ctx, request.Email)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, errors.NewAlreadyExistsError("User already exists")
	}

	hash, err := uc.hasher.Hash(request.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	budgetMin, budgetMax := float64(DefaultBudgetMin), float64(DefaultBudgetMax)
	data := &ports.UserData{
		Username:                request.Username,
		Email:                   request.Email,
		PasswordHash:            hash,
		FirstName:               request.FirstName,
		LastName:                request.LastName,
		TravelStyle:             DefaultTravelStyle,
		AccommodationPreference: DefaultAccommodation,
		BudgetMin:               &budgetMin,
		BudgetMax:               &budgetMax,
		IsActive:                true,
	}
	if err := uc.repo.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	uc.logger.Info("User registered", ports.F("user_id", data.ID))
	return fromPortsUser(data), nil
}

// Login verifies credentials, records the login time and issues an access token
func (uc *UseCase) Login(ctx context.Context, request LoginRequest) (*Session, error) {
	if request.Email == "" || request.Password == "" {
		return nil, errors.NewAuthError(invalidCredentials)
	}

	data, err := uc.repo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewAuthError(invalidCredentials)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := uc.hasher.Compare(data.PasswordHash, request.Password); err != nil {
		uc.logger.Debug("Password mismatch", ports.F("user_id", data.ID))
		return nil, errors.NewAuthError(invalidCredentials)
	}
	if !data.IsActive {
		return nil, errors.NewAuthError("Account is disabled")
	}

	loginAt := uc.now().UTC()
	if err := uc.repo.UpdateLastLogin(ctx, data.ID, loginAt); err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}
	data.LastLogin = &loginAt

	token, err := uc.tokens.Issue(data.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &Session{Token: token, User: fromPortsUser(data)}, nil
}

// Authenticate resolves a bearer token to an active user
func (uc *UseCase) Authenticate(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, errors.NewAuthError("Authorization token is required")
	}

	claims, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	data, err := uc.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewAuthError("Invalid token")
		}
		return nil, fmt.Errorf("load token subject: %w", err)
	}
	if !data.IsActive {
		return nil, errors.NewAuthError("Account is disabled")
	}

	return fromPortsUser(data), nil
}

// GetProfile returns the user by id
func (uc *UseCase) GetProfile(ctx context.Context, userID uint) (*User, error) {
	data, err := uc.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return fromPortsUser(data), nil
}

// UpdateProfile applies preference edits
func (uc *UseCase) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*User, error) {
	data, err := uc.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	u := fromPortsUser(data)
	if err := u.Apply(update); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	updated := toPortsUser(u)
	if err := uc.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	uc.logger.Info("Profile updated", ports.F("user_id", userID))
	return fromPortsUser(updated), nil
}

// DeleteAccount removes the user and all of their trips
func (uc *UseCase) DeleteAccount(ctx context.Context, userID uint) error {
	if err := uc.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	uc.logger.Info("Account deleted", ports.F("user_id", userID))
	return nil
}

func fromPortsUser(data *ports.UserData) *User {
	return &User{
		ID:                      data.ID,
		Username:                data.Username,
		Email:                   data.Email,
		PasswordHash:            data.PasswordHash,
		FirstName:               data.FirstName,
		LastName:                data.LastName,
		Interests:               data.Interests,
		PreferredActivities:     data.PreferredActivities,
		TravelStyle:             data.TravelStyle,
		AccommodationPreference: data.AccommodationPreference,
		BudgetMin:               data.BudgetMin,
		BudgetMax:               data.BudgetMax,
		IsActive:                data.IsActive,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
		LastLogin:               data.LastLogin,
	}
}

func toPortsUser(u *User) *ports.UserData {
	return &ports.UserData{
		ID:                      u.ID,
		Username:                u.Username,
		Email:                   u.Email,
		PasswordHash:            u.PasswordHash,
		FirstName:               u.FirstName,
		LastName:                u.LastName,
		Interests:               u.Interests,
		PreferredActivities:     u.PreferredActivities,
		TravelStyle:             u.TravelStyle,
		AccommodationPreference: u.AccommodationPreference,
		BudgetMin:               u.BudgetMin,
		BudgetMax:               u.BudgetMax,
		IsActive:                u.IsActive,
		CreatedAt:               u.CreatedAt,
		UpdatedAt:               u.UpdatedAt,
		LastLogin:               u.LastLogin,
	}
}
