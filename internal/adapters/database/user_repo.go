package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

// UserModel represents the database model for users
type UserModel struct {
	ID                      uint   `gorm:"primaryKey"`
	Username                string `gorm:"size:80;index;not null"`
	Email                   string `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash            string `gorm:"size:255;not null"`
	FirstName               string `gorm:"size:50"`
	LastName                string `gorm:"size:50"`
	Interests               string `gorm:"type:text"`
	PreferredActivities     string `gorm:"type:text"`
	TravelStyle             string `gorm:"size:20"`
	AccommodationPreference string `gorm:"size:20"`
	BudgetMin               *float64
	BudgetMax               *float64
	IsActive                bool      `gorm:"not null"`
	CreatedAt               time.Time `gorm:"index"`
	UpdatedAt               time.Time
	LastLogin               *time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// UserRepositoryAdapter implements the UserRepository port using GORM
type UserRepositoryAdapter struct {
	db *gorm.DB
}

// NewUserRepositoryAdapter creates a new user repository adapter
func NewUserRepositoryAdapter(db *gorm.DB) ports.UserRepository {
	return &UserRepositoryAdapter{db: db}
}

// Save persists a new user
func (r *UserRepositoryAdapter) Save(ctx context.Context, user *ports.UserData) error {
	if user == nil {
		return errors.NewValidationError("user cannot be nil")
	}

	model := r.dataToModel(user)
	var result *gorm.DB
	if user.ID == 0 {
		result = r.db.WithContext(ctx).Create(model)
	} else {
		result = r.db.WithContext(ctx).Save(model)
	}

	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errors.NewAlreadyExistsError("User already exists")
		}
		return errors.NewDatabaseError("failed to save user", result.Error)
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID retrieves a user by ID
func (r *UserRepositoryAdapter) FindByID(ctx context.Context, id uint) (*ports.UserData, error) {
	if id == 0 {
		return nil, errors.NewValidationError("user ID cannot be zero")
	}

	var model UserModel
	result := r.db.WithContext(ctx).First(&model, id)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("User not found")
		}
		return nil, errors.NewDatabaseError("failed to find user by ID", result.Error)
	}

	return r.modelToData(&model), nil
}

// FindByEmail retrieves a user by email
func (r *UserRepositoryAdapter) FindByEmail(ctx context.Context, email string) (*ports.UserData, error) {
	if email == "" {
		return nil, errors.NewValidationError("email cannot be empty")
	}

	var model UserModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("User not found")
		}
		return nil, errors.NewDatabaseError("failed to find user by email", result.Error)
	}

	return r.modelToData(&model), nil
}

// Update modifies an existing user
func (r *UserRepositoryAdapter) Update(ctx context.Context, user *ports.UserData) error {
	if user == nil {
		return errors.NewValidationError("user cannot be nil")
	}
	if user.ID == 0 {
		return errors.NewValidationError("user ID cannot be zero for update")
	}

	model := r.dataToModel(user)
	if result := r.db.WithContext(ctx).Save(model); result.Error != nil {
		return errors.NewDatabaseError("failed to update user", result.Error)
	}

	user.UpdatedAt = model.UpdatedAt
	return nil
}

// UpdateLastLogin stamps the login time
func (r *UserRepositoryAdapter) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Update("last_login", at)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to update last login", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("User not found")
	}
	return nil
}

// Delete removes the user and their trips in one transaction
func (r *UserRepositoryAdapter) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.NewValidationError("user ID cannot be zero for delete")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&TripModel{}).Error; err != nil {
			return errors.NewDatabaseError("failed to delete user trips", err)
		}

		result := tx.Delete(&UserModel{}, id)
		if result.Error != nil {
			return errors.NewDatabaseError("failed to delete user", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("User not found")
		}
		return nil
	})
}

// dataToModel converts port data to database model
func (r *UserRepositoryAdapter) dataToModel(data *ports.UserData) *UserModel {
	return &UserModel{
		ID:                      data.ID,
		Username:                data.Username,
		Email:                   data.Email,
		PasswordHash:            data.PasswordHash,
		FirstName:               data.FirstName,
		LastName:                data.LastName,
		Interests:               encodeStringList(data.Interests),
		PreferredActivities:     encodeStringList(data.PreferredActivities),
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

// modelToData converts database model to port data
func (r *UserRepositoryAdapter) modelToData(model *UserModel) *ports.UserData {
	return &ports.UserData{
		ID:                      model.ID,
		Username:                model.Username,
		Email:                   model.Email,
		PasswordHash:            model.PasswordHash,
		FirstName:               model.FirstName,
		LastName:                model.LastName,
		Interests:               decodeStringList(model.Interests),
		PreferredActivities:     decodeStringList(model.PreferredActivities),
		TravelStyle:             model.TravelStyle,
		AccommodationPreference: model.AccommodationPreference,
		BudgetMin:               model.BudgetMin,
		BudgetMax:               model.BudgetMax,
		IsActive:                model.IsActive,
		CreatedAt:               model.CreatedAt,
		UpdatedAt:               model.UpdatedAt,
		LastLogin:               model.LastLogin,
	}
}
