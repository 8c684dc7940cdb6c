package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Product is a Guest's item that needs storage.
type Product struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	PeriodDays int
	Latitude   float64
	Longitude  float64
	CreatedAt  time.Time
}

// Place is a Host's storage space.
type Place struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	PeriodDays int
	Latitude   float64
	Longitude  float64
	CreatedAt  time.Time
}

const earthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance between two coordinates, rounded to meters.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) int {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(math.Round(earthRadiusMeters * c))
}
