package pricing

import (
	"fmt"
	"math"

	"github.com/stpnv0/mari-gunting/internal/domain"
)

type Config struct {
	PlatformFee    domain.Money
	BaseTravelFee  domain.Money
	BaseTravelKm   float64
	TravelPerKm    domain.Money
	CommissionRate map[domain.ServiceType]float64
}

func DefaultConfig() Config {
	return Config{
		PlatformFee:   200,
		BaseTravelFee: 500,
		BaseTravelKm:  4,
		TravelPerKm:   100,
		CommissionRate: map[domain.ServiceType]float64{
			domain.ServiceTypeHome:   0.15,
			domain.ServiceTypeWalkIn: 0.12,
		},
	}
}

// Breakdown is computed once per booking; downstream code never re-rounds it.
// Commission and the partner's service share are rounded independently.
type Breakdown struct {
	Subtotal        domain.Money
	TravelFee       domain.Money
	PlatformFee     domain.Money
	Total           domain.Money
	CommissionRate  float64
	Commission      domain.Money
	PartnerEarnings domain.Money
	PlatformRevenue domain.Money
}

type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

func (c *Calculator) Quote(services []domain.Service, serviceType domain.ServiceType, distanceKm float64) (Breakdown, error) {
	if len(services) == 0 {
		return Breakdown{}, fmt.Errorf("%w: at least one service is required", domain.ErrValidation)
	}
	rate, ok := c.cfg.CommissionRate[serviceType]
	if !ok {
		return Breakdown{}, fmt.Errorf("%w: no commission rate for service type %q", domain.ErrValidation, serviceType)
	}
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		return Breakdown{}, fmt.Errorf("%w: invalid distance %v", domain.ErrValidation, distanceKm)
	}

	var subtotal domain.Money
	for _, s := range services {
		if s.Price <= 0 {
			return Breakdown{}, fmt.Errorf("%w: service %q has non-positive price", domain.ErrValidation, s.Name)
		}
		subtotal += s.Price
	}

	travel := c.TravelFee(serviceType, distanceKm)
	commission := roundHalfUp(float64(subtotal) * rate)

	return Breakdown{
		Subtotal:        subtotal,
		TravelFee:       travel,
		PlatformFee:     c.cfg.PlatformFee,
		Total:           subtotal + travel + c.cfg.PlatformFee,
		CommissionRate:  rate,
		Commission:      commission,
		PartnerEarnings: roundHalfUp(float64(subtotal)*(1-rate)) + travel,
		PlatformRevenue: commission + c.cfg.PlatformFee,
	}, nil
}

// TravelFee is zero for walk-in bookings.
func (c *Calculator) TravelFee(serviceType domain.ServiceType, distanceKm float64) domain.Money {
	if serviceType != domain.ServiceTypeHome {
		return 0
	}
	if distanceKm <= c.cfg.BaseTravelKm {
		return c.cfg.BaseTravelFee
	}
	extra := roundHalfUp((distanceKm - c.cfg.BaseTravelKm) * float64(c.cfg.TravelPerKm))
	return c.cfg.BaseTravelFee + extra
}

func roundHalfUp(sen float64) domain.Money {
	// 1e-9 гасит ошибку представления вроде 0.15*3333 = 499.94999...
	return domain.Money(math.Floor(sen + 0.5 + 1e-9))
}
