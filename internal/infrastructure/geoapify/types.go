package geoapify

import (
	"github.com/goccy/go-json"
	"github.com/restaurant-explorer/internal/domain"
)

// featureCollection is the GeoJSON envelope shared by the geocoding and
// places endpoints.
type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Properties placeProperties `json:"properties"`
	Geometry   *geometry       `json:"geometry"`
}

type geometry struct {
	Type string `json:"type"`
	// Raw because non-point geometries nest their coordinate arrays.
	Coordinates json.RawMessage `json:"coordinates"`
}

type placeProperties struct {
	Name      *string  `json:"name"`
	Formatted string   `json:"formatted"`
	Rating    *float64 `json:"rating"`
	Website   *string  `json:"website"`
	Phone     *string  `json:"phone"`
	Contact   *struct {
		Phone *string `json:"phone"`
	} `json:"contact"`
}

// coordinate converts a GeoJSON position, which is [longitude, latitude],
// into a domain coordinate. It returns nil unless both axes are present.
func (g *geometry) coordinate() *domain.Coordinate {
	if g == nil || len(g.Coordinates) == 0 {
		return nil
	}
	var position []float64
	if err := json.Unmarshal(g.Coordinates, &position); err != nil {
		return nil
	}
	if len(position) < 2 {
		return nil
	}
	return &domain.Coordinate{Lat: position[1], Lon: position[0]}
}

func (p placeProperties) phone() *string {
	if p.Phone != nil {
		return p.Phone
	}
	if p.Contact != nil {
		return p.Contact.Phone
	}
	return nil
}
