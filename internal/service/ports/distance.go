package ports

import (
	"context"

	"github.com/stpnv0/mari-gunting/internal/domain"
)

type DistanceProvider interface {
	DistanceKm(ctx context.Context, from, to domain.Location) (float64, error)
}
