package user

import (
	"fmt"
	"strings"
	"time"

	"tripplanner.app/pkg/validation"
)

const (
	DefaultTravelStyle   = "mid-range"
	DefaultAccommodation = "any"
	DefaultBudgetMin     = 0
	DefaultBudgetMax     = 5000
)

var travelStyles = map[string]struct{}{
	"budget":     {},
	"mid-range":  {},
	"luxury":     {},
	"backpacker": {},
	"adventure":  {},
	"family":     {},
}

// IsTravelStyle reports whether style is a supported travel style label
func IsTravelStyle(style string) bool {
	_, ok := travelStyles[strings.ToLower(strings.TrimSpace(style))]
	return ok
}

// User is an account that owns trips and carries default travel preferences
type User struct {
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

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Email     string
	Password  string
	Username  string
	FirstName string
	LastName  string
}

// LoginRequest represents a credential check
type LoginRequest struct {
	Email    string
	Password string
}

// Session is the result of a successful login
type Session struct {
	Token string
	User  *User
}

// ProfileUpdate holds the optional preference edits; nil fields are left unchanged
type ProfileUpdate struct {
	FirstName               *string
	LastName                *string
	TravelStyle             *string
	AccommodationPreference *string
	Interests               []string
	PreferredActivities     []string
	BudgetMin               *float64
	BudgetMax               *float64
}

// IsValid validates a registration request; minPassword is the configured minimum length
func (r *RegisterRequest) IsValid(minPassword int) error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return fmt.Errorf("email and password required")
	}
	if !validation.IsValidEmail(r.Email) {
		return fmt.Errorf("invalid email format")
	}
	if len(r.Password) < minPassword {
		return fmt.Errorf("password must be at least %d characters", minPassword)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Normalize trims input and derives a username from the email when none is given
func (r *RegisterRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
	r.Username = strings.TrimSpace(r.Username)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	if r.Username == "" {
		if at := strings.IndexByte(r.Email, '@'); at > 0 {
			r.Username = r.Email[:at]
		} else {
			r.Username = r.Email
		}
	}
}

// EffectiveTravelStyle returns the user's travel style or the default
func (u *User) EffectiveTravelStyle() string {
	if u == nil || u.TravelStyle == "" {
		return DefaultTravelStyle
	}
	return u.TravelStyle
}

// Apply merges a profile update into the user
func (u *User) Apply(update ProfileUpdate) error {
	if update.TravelStyle != nil {
		style := strings.ToLower(strings.TrimSpace(*update.TravelStyle))
		if !IsTravelStyle(style) {
			return fmt.Errorf("unsupported travel style %q", *update.TravelStyle)
		}
		u.TravelStyle = style
	}
	if update.FirstName != nil {
		u.FirstName = strings.TrimSpace(*update.FirstName)
	}
	if update.LastName != nil {
		u.LastName = strings.TrimSpace(*update.LastName)
	}
	if update.AccommodationPreference != nil {
		u.AccommodationPreference = strings.TrimSpace(*update.AccommodationPreference)
	}
	if update.Interests != nil {
		u.Interests = validation.NormalizeTags(update.Interests)
	}
	if update.PreferredActivities != nil {
		u.PreferredActivities = validation.NormalizeTags(update.PreferredActivities)
	}
	if update.BudgetMin != nil {
		u.BudgetMin = update.BudgetMin
	}
	if update.BudgetMax != nil {
		u.BudgetMax = update.BudgetMax
	}

	if u.BudgetMin != nil && *u.BudgetMin < 0 {
		return fmt.Errorf("budget_min cannot be negative")
	}
	if u.BudgetMin != nil && u.BudgetMax != nil && *u.BudgetMax < *u.BudgetMin {
		return fmt.Errorf("budget_max cannot be less than budget_min")
	}
	return nil
}
