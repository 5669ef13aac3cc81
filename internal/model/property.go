package model

import "time"

// PropertyType classifies a listing.
type PropertyType string

const (
	PropertyApartment  PropertyType = "apartment"
	PropertyHouse      PropertyType = "house"
	PropertyCommercial PropertyType = "commercial"
	PropertyLand       PropertyType = "land"
)

// ListingStatus says whether a property is offered for sale or rent.
type ListingStatus string

const (
	StatusForSale ListingStatus = "for-sale"
	StatusForRent ListingStatus = "for-rent"
)

// Location places a property. Coordinates are [lng, lat].
type Location struct {
	County      string     `json:"county"`
	Area        string     `json:"area"`
	Address     string     `json:"address"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Property is a read-only listing record.
type Property struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Currency    string        `json:"currency"`
	Type        PropertyType  `json:"type"`
	Status      ListingStatus `json:"status"`
	Bedrooms    int           `json:"bedrooms"`
	Bathrooms   int           `json:"bathrooms"`
	Area        float64       `json:"area"` // square meters
	Location    Location      `json:"location"`
	Amenities   []string      `json:"amenities"`
	Images      []string      `json:"images"`
	AgentID     string        `json:"agentId"`
	Agent       *Agent        `json:"agent,omitempty"`
	Featured    bool          `json:"featured"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
