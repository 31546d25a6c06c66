package distance

import (
	"context"
	"fmt"
	"math"

	"github.com/stpnv0/mari-gunting/internal/domain"
)

const earthRadiusKm = 6371.0

// Haversine estimates travel distance as great-circle distance times a road
// factor. Used when no routing provider is configured.
type Haversine struct {
	roadFactor float64
}

func NewHaversine(roadFactor float64) *Haversine {
	if roadFactor < 1 {
		roadFactor = 1
	}
	return &Haversine{roadFactor: roadFactor}
}

func (h *Haversine) DistanceKm(_ context.Context, from, to domain.Location) (float64, error) {
	if !valid(from) || !valid(to) {
		return 0, fmt.Errorf("%w: coordinates out of range", domain.ErrValidation)
	}
	km := greatCircleKm(from.Lat, from.Lng, to.Lat, to.Lng) * h.roadFactor
	// округляем до метров
	return math.Round(km*1000) / 1000, nil
}

func greatCircleKm(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	φ1, φ2 := rad(lat1), rad(lat2)
	Δφ := rad(lat2 - lat1)
	Δλ := rad(lng2 - lng1)
	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func valid(l domain.Location) bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}
