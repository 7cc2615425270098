package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Normalize(t *testing.T) {
	r := RegisterRequest{Email: "  Ana.Silva@Example.COM ", Password: "secret123"}
	r.Normalize()

	assert.Equal(t, "ana.silva@example.com", r.Email)
	assert.Equal(t, "ana.silva", r.Username)

	r = RegisterRequest{Email: "a@b.io", Username: " wanderer "}
	r.Normalize()
	assert.Equal(t, "wanderer", r.Username)
}

func TestRegisterRequest_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		request RegisterRequest
		wantErr string
	}{
		{"Valid", RegisterRequest{Email: "a@b.io", Password: "longenough"}, ""},
		{"MissingEmail", RegisterRequest{Password: "longenough"}, "email and password required"},
		{"MissingPassword", RegisterRequest{Email: "a@b.io"}, "email and password required"},
		{"BadEmail", RegisterRequest{Email: "nope", Password: "longenough"}, "invalid email format"},
		{"ShortPassword", RegisterRequest{Email: "a@b.io", Password: "short"}, "at least 8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.IsValid(8)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUser_Apply(t *testing.T) {
	style := " Luxury "
	first := "Ana"
	u := &User{TravelStyle: DefaultTravelStyle}

	err := u.Apply(ProfileUpdate{
		TravelStyle: &style,
		FirstName:   &first,
		Interests:   []string{"food", " food", "art"},
	})

	require.NoError(t, err)
	assert.Equal(t, "luxury", u.TravelStyle)
	assert.Equal(t, "Ana", u.FirstName)
	assert.Equal(t, []string{"food", "art"}, u.Interests)
	assert.Nil(t, u.PreferredActivities)
}

func TestUser_Apply_Rejects(t *testing.T) {
	bogus := "teleportation"
	assert.Error(t, (&User{}).Apply(ProfileUpdate{TravelStyle: &bogus}))

	lo, hi := 500.0, 100.0
	assert.Error(t, (&User{}).Apply(ProfileUpdate{BudgetMin: &lo, BudgetMax: &hi}))

	neg := -1.0
	assert.Error(t, (&User{}).Apply(ProfileUpdate{BudgetMin: &neg}))
}

func TestUser_EffectiveTravelStyle(t *testing.T) {
	var nilUser *User
	assert.Equal(t, DefaultTravelStyle, nilUser.EffectiveTravelStyle())
	assert.Equal(t, DefaultTravelStyle, (&User{}).EffectiveTravelStyle())
	assert.Equal(t, "budget", (&User{TravelStyle: "budget"}).EffectiveTravelStyle())
}
