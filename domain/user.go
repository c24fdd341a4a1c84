package domain

type Preferences struct {
	PreferredLocations []string       `json:"preferredLocations" validate:"required,unique"`
	PriceRange         PriceRange     `json:"priceRange"`
	PropertyTypes      []PropertyType `json:"propertyTypes" validate:"required,unique,dive,enum"`
}

type User struct {
	ID           string      `json:"id" validate:"required"`
	Email        string      `json:"email" validate:"required,email"`
	Phone        string      `json:"phone" validate:"required,e164"`
	FirstName    string      `json:"firstName" validate:"required"`
	LastName     string      `json:"lastName" validate:"required"`
	UserType     UserType    `json:"userType" validate:"enum"`
	IsVerified   bool        `json:"isVerified"`
	ProfileImage *string     `json:"profileImage,omitempty" validate:"omitnil,uri"`
	Preferences  Preferences `json:"preferences"`
	CreatedAt    string      `json:"createdAt" validate:"utciso8601"`
	UpdatedAt    string      `json:"updatedAt" validate:"utciso8601"`
}

func (u User) Validate() error {
	return checkStruct(u)
}

func (User) wireFields() []field {
	return userFields()
}

func userFields() []field {
	return []field{
		req("id"), req("email"), req("phone"), req("firstName"), req("lastName"),
		req("userType"), req("isVerified"), opt("profileImage"),
		req("preferences",
			each("preferredLocations"),
			req("priceRange", priceRangeFields()...),
			each("propertyTypes"),
		),
		req("createdAt"), req("updatedAt"),
	}
}

// FullName is what other records carry as a denormalized display name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
