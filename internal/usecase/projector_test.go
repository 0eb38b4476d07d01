package usecase_test

import (
	"testing"

	"github.com/restaurant-explorer/internal/domain"
	"github.com/restaurant-explorer/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat64(v float64) *float64 { return &v }

func TestProject(t *testing.T) {
	withCoord := domain.NewRestaurant("Karim's", "Jama Masjid, Delhi", &domain.Coordinate{Lat: 28.6, Lon: 77.1}, "Geoapify")
	withCoord.Rating = ptrFloat64(4.5)
	withoutCoord := domain.NewRestaurant(domain.UnknownRestaurantName, "", nil, "Geoapify")

	t.Run("map only", func(t *testing.T) {
		out := usecase.Project([]domain.Restaurant{withCoord}, domain.FieldSelection{Map: true})

		require.Len(t, out, 1)
		require.NotNil(t, out[0].MapLink)
		assert.Contains(t, *out[0].MapLink, "28.6,77.1")
		assert.False(t, out[0].RatingIncluded)
		assert.Nil(t, out[0].Rating)
	})

	t.Run("rating only", func(t *testing.T) {
		out := usecase.Project([]domain.Restaurant{withCoord}, domain.FieldSelection{Rating: true})

		require.Len(t, out, 1)
		assert.Nil(t, out[0].MapLink)
		assert.True(t, out[0].RatingIncluded)
		require.NotNil(t, out[0].Rating)
		assert.Equal(t, 4.5, *out[0].Rating)
	})

	t.Run("map requested without coordinate", func(t *testing.T) {
		out := usecase.Project([]domain.Restaurant{withoutCoord}, domain.FieldSelection{Map: true, Rating: true})

		require.Len(t, out, 1)
		assert.Nil(t, out[0].MapLink)
		assert.True(t, out[0].RatingIncluded)
		assert.Nil(t, out[0].Rating)
		assert.Equal(t, domain.UnknownRestaurantName, out[0].Name)
		assert.Equal(t, "Geoapify", out[0].Source)
	})

	t.Run("order preserved", func(t *testing.T) {
		out := usecase.Project([]domain.Restaurant{withoutCoord, withCoord, withoutCoord}, domain.FieldSelection{})

		require.Len(t, out, 3)
		assert.Equal(t, "Unknown", out[0].Name)
		assert.Equal(t, "Karim's", out[1].Name)
		assert.Equal(t, "Jama Masjid, Delhi", out[1].Address)
		assert.Equal(t, "Unknown", out[2].Name)
	})

	t.Run("empty input", func(t *testing.T) {
		out := usecase.Project(nil, domain.FieldSelection{Map: true})
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}
