package domain

import (
	"fmt"
	"strconv"
)

// UnknownRestaurantName is used when a provider returns a place without a name.
const UnknownRestaurantName = "Unknown"

// Coordinate - point in canonical (latitude, longitude) order
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MapLink returns a Google Maps link for the point, latitude first.
func (c Coordinate) MapLink() string {
	return fmt.Sprintf("https://www.google.com/maps/?q=%s,%s",
		strconv.FormatFloat(c.Lat, 'f', -1, 64),
		strconv.FormatFloat(c.Lon, 'f', -1, 64),
	)
}

// Restaurant - provider-independent restaurant record.
// Coordinate and MapLink are either both set or both nil.
type Restaurant struct {
	Name       string
	Address    string
	Coordinate *Coordinate
	MapLink    *string
	Rating     *float64
	Website    *string
	Phone      *string
	Source     string
}

// NameOrUnknown returns the provider's name as given, even when empty.
// Only an absent name becomes UnknownRestaurantName.
func NameOrUnknown(name *string) string {
	if name == nil {
		return UnknownRestaurantName
	}
	return *name
}

// NewRestaurant derives the map link from a complete coordinate only.
func NewRestaurant(name, address string, coord *Coordinate, source string) Restaurant {
	r := Restaurant{
		Name:    name,
		Address: address,
		Source:  source,
	}
	if coord != nil {
		c := *coord
		link := c.MapLink()
		r.Coordinate = &c
		r.MapLink = &link
	}
	return r
}

// FieldSelection - optional attributes the caller wants in the output
type FieldSelection struct {
	Map    bool `json:"map"`
	Rating bool `json:"rating"`
}
