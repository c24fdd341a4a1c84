// Package domain contains the canonical records exchanged between clients
// and the marketplace backend. Every type here is a wire shape: field names
// are part of the contract and validation never mutates its input.
package domain

import (
	"estate-hub/errors"
)

type Coordinates struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type Location struct {
	Address     string      `json:"address" validate:"required"`
	City        string      `json:"city" validate:"required"`
	State       string      `json:"state" validate:"required"`
	Coordinates Coordinates `json:"coordinates"`
}

// Property is a listing. Area is in square meters, price in naira.
type Property struct {
	ID           string       `json:"id" validate:"required"`
	Title        string       `json:"title" validate:"required"`
	Description  string       `json:"description"`
	Price        float64      `json:"price" validate:"gte=0"`
	Location     Location     `json:"location"`
	PropertyType PropertyType `json:"propertyType" validate:"enum"`
	Bedrooms     *int         `json:"bedrooms,omitempty" validate:"omitnil,gte=0"`
	Bathrooms    *int         `json:"bathrooms,omitempty" validate:"omitnil,gte=0"`
	Area         float64      `json:"area" validate:"gt=0"`
	Amenities    []string     `json:"amenities" validate:"required,unique,dive,required"`
	Images       []string     `json:"images" validate:"required,dive,uri"`
	IsVerified   bool         `json:"isVerified"`
	AgentID      string       `json:"agentId" validate:"required"`
	AgentName    string       `json:"agentName"`
	CreatedAt    string       `json:"createdAt" validate:"utciso8601"`
	UpdatedAt    string       `json:"updatedAt" validate:"utciso8601"`
}

func (p Property) Validate() error {
	if err := checkStruct(p); err != nil {
		return err
	}
	if !p.PropertyType.HasRooms() {
		if p.Bedrooms != nil {
			return errors.NewValidationError("bedrooms", "must be absent for land")
		}
		if p.Bathrooms != nil {
			return errors.NewValidationError("bathrooms", "must be absent for land")
		}
	}
	return nil
}

func (Property) wireFields() []field {
	return []field{
		req("id"), req("title"), req("description"), req("price"),
		req("location",
			req("address"), req("city"), req("state"),
			req("coordinates", keys("lat", "lng")...),
		),
		req("propertyType"), opt("bedrooms"), opt("bathrooms"), req("area"),
		each("amenities"), each("images"),
		req("isVerified"), req("agentId"), req("agentName"),
		req("createdAt"), req("updatedAt"),
	}
}

// PriceRange bounds a price in naira, both ends inclusive.
type PriceRange struct {
	Min float64 `json:"min" validate:"gte=0"`
	Max float64 `json:"max" validate:"gtefield=Min"`
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

func priceRangeFields() []field {
	return keys("min", "max")
}

// SearchFilters narrows a property listing. Every criterion is optional.
type SearchFilters struct {
	Location     *string        `json:"location,omitempty"`
	PriceRange   *PriceRange    `json:"priceRange,omitempty"`
	PropertyType []PropertyType `json:"propertyType,omitempty" validate:"omitempty,unique,dive,enum"`
	Bedrooms     *int           `json:"bedrooms,omitempty" validate:"omitnil,gte=0"`
	Bathrooms    *int           `json:"bathrooms,omitempty" validate:"omitnil,gte=0"`
	Amenities    []string       `json:"amenities,omitempty" validate:"omitempty,unique,dive,required"`
	VerifiedOnly *bool          `json:"verifiedOnly,omitempty"`
}

func (f SearchFilters) Validate() error {
	return checkStruct(f)
}

func (SearchFilters) wireFields() []field {
	return []field{
		opt("location"), opt("priceRange", priceRangeFields()...),
		opt("propertyType"), opt("bedrooms"), opt("bathrooms"),
		opt("amenities"), opt("verifiedOnly"),
	}
}
