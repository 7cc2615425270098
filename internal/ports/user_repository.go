package ports

import (
	"context"
	"time"
)

// UserData represents user data for persistence
type UserData struct {
	ID                      uint
	Username                string
	Email                   string
	PasswordHash            string
	FirstName               string
	LastName                string
	Interests               []string
	PreferredActivities     []string
	TravelStyle             string
	AccommodationPreference string
	BudgetMin               *float64
	BudgetMax               *float64
	IsActive                bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
	LastLogin               *time.Time
}

// UserRepository defines the contract for user data persistence
type UserRepository interface {
	Save(ctx context.Context, user *UserData) error
	FindByID(ctx context.Context, id uint) (*UserData, error)
	FindByEmail(ctx context.Context, email string) (*UserData, error)
	Update(ctx context.Context, user *UserData) error
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	// Delete removes the user together with every trip they own
	Delete(ctx context.Context, id uint) error
}
