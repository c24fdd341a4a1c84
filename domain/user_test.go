package domain

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func validUser() User {
	return User{
		ID:        "u1",
		Email:     "tunde@example.com",
		Phone:     "+2348031234567",
		FirstName: "Tunde",
		LastName:  "Bakare",
		UserType:  UserTypeBuyer,
		Preferences: Preferences{
			PreferredLocations: []string{"Lekki", "Ikoyi"},
			PriceRange:         PriceRange{Min: 20000000, Max: 80000000},
			PropertyTypes:      []PropertyType{PropertyTypeHouse, PropertyTypeApartment},
		},
		CreatedAt: "2024-06-01T08:00:00Z",
		UpdatedAt: "2024-06-01T08:00:00Z",
	}
}

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		description string
		modify      func(u *User)
		field       string
	}{
		{"Valid user", func(u *User) {}, ""},
		{"Malformed email", func(u *User) { u.Email = "tunde.example.com" }, "email"},
		{"Local phone format", func(u *User) { u.Phone = "08031234567" }, "phone"},
		{"Unknown user type", func(u *User) { u.UserType = "landlord" }, "userType"},
		{"Inverted preferred price range", func(u *User) { u.Preferences.PriceRange.Max = 1 }, "preferences.priceRange.max"},
		{"Unknown preferred property type", func(u *User) {
			u.Preferences.PropertyTypes = []PropertyType{"villa"}
		}, "preferences.propertyTypes[0]"},
		{"Missing preferred locations", func(u *User) { u.Preferences.PreferredLocations = nil }, "preferences.preferredLocations"},
		{"Profile image not a URI", func(u *User) { img := "me.png"; u.ProfileImage = &img }, "profileImage"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			u := validUser()
			tt.modify(&u)
			if tt.field == "" {
				require.NoError(t, u.Validate())
				return
			}
			requireFieldError(t, u.Validate(), tt.field)
		})
	}
}

func TestUser_Deserialize_RequiresPreferences(t *testing.T) {
	_, err := Deserialize[User]([]byte(`{"id":"u1","email":"tunde@example.com","phone":"+2348031234567",` +
		`"firstName":"Tunde","lastName":"Bakare","userType":"buyer","isVerified":true,` +
		`"preferences":{"preferredLocations":[],"propertyTypes":[]},` +
		`"createdAt":"2024-06-01T08:00:00Z","updatedAt":"2024-06-01T08:00:00Z"}`))
	requireFieldError(t, err, "preferences.priceRange")
}

func TestRegisterData_Validate(t *testing.T) {
	tests := []struct {
		description string
		data        RegisterData
		field       string
	}{
		{"Valid registration", RegisterData{"ada@example.com", "s3cretPass", "+2348031234567", "Ada", "Obi", UserTypeAgent}, ""},
		{"Short password", RegisterData{"ada@example.com", "short", "+2348031234567", "Ada", "Obi", UserTypeAgent}, "password"},
		{"Free text user type", RegisterData{"ada@example.com", "s3cretPass", "+2348031234567", "Ada", "Obi", "Agent"}, "userType"},
		{"Missing last name", RegisterData{"ada@example.com", "s3cretPass", "+2348031234567", "Ada", "", UserTypeAgent}, "lastName"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			err := tt.data.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			requireFieldError(t, err, tt.field)
		})
	}
}

func TestLoginCredentials_Deserialize(t *testing.T) {
	req := require.New(t)
	creds, err := Deserialize[LoginCredentials]([]byte(`{"email":"ada@example.com","password":"anything"}`))
	req.NoError(err)
	req.Equal("ada@example.com", creds.Email)

	_, err = Deserialize[LoginCredentials]([]byte(`{"email":"ada@example.com"}`))
	requireFieldError(t, err, "password")
}

func TestAuthResponse_Validate(t *testing.T) {
	req := require.New(t)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"}).
		SignedString([]byte("test-signing-key"))
	req.NoError(err)

	resp := AuthResponse{User: validUser(), Token: token}
	req.NoError(resp.Validate())

	text, err := Serialize(resp)
	req.NoError(err)
	back, err := Deserialize[AuthResponse](text)
	req.NoError(err)
	req.Equal(resp, back)

	resp.Token = "not-a-token"
	requireFieldError(t, resp.Validate(), "token")

	resp.Token = token
	resp.User.Email = "broken"
	requireFieldError(t, resp.Validate(), "user.email")
}

func TestParseEnums(t *testing.T) {
	req := require.New(t)

	ut, err := ParseUserType("developer")
	req.NoError(err)
	req.Equal(UserTypeDeveloper, ut)

	mt, err := ParseMessageType("location")
	req.NoError(err)
	req.Equal(MessageTypeLocation, mt)

	pm, err := ParsePaymentMethod("mobile_money")
	req.NoError(err)
	req.Equal(PaymentMethodMobileMoney, pm)

	ls, err := ParseLoadingState("succeeded")
	req.NoError(err)
	req.Equal(LoadingSucceeded, ls)

	_, err = ParseNotificationType("debug")
	verr := requireFieldError(t, err, "type")
	req.Equal("must be one of info, success, warning, error", verr.Reason)

	_, err = ParsePaymentStatus("reopened")
	requireFieldError(t, err, "status")

	_, err = ParseVerificationStatus("approved")
	req.NoError(err)

	req.False(Currency("USD").IsValid())
	req.True(CurrencyNGN.IsValid())
}
