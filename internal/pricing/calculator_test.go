package pricing

import (
	"testing"

	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func services(prices ...domain.Money) []domain.Service {
	res := make([]domain.Service, 0, len(prices))
	for i, p := range prices {
		res = append(res, domain.Service{ID: string(rune('a' + i)), Name: "svc", Price: p})
	}
	return res
}

func TestCalculator_HomeService_SixKm(t *testing.T) {
	c := NewCalculator(DefaultConfig())

	b, err := c.Quote(services(5000, 3000), domain.ServiceTypeHome, 6.0)

	require.NoError(t, err)
	assert.Equal(t, domain.Money(8000), b.Subtotal)
	assert.Equal(t, domain.Money(700), b.TravelFee)
	assert.Equal(t, domain.Money(200), b.PlatformFee)
	assert.Equal(t, domain.Money(8900), b.Total)
	assert.Equal(t, domain.Money(1200), b.Commission)
	assert.Equal(t, domain.Money(7500), b.PartnerEarnings)
	assert.Equal(t, domain.Money(1400), b.PlatformRevenue)
}

func TestCalculator_WalkIn(t *testing.T) {
	c := NewCalculator(DefaultConfig())

	b, err := c.Quote(services(5000), domain.ServiceTypeWalkIn, 12)

	require.NoError(t, err)
	assert.Equal(t, domain.Money(0), b.TravelFee)
	assert.Equal(t, domain.Money(5200), b.Total)
	assert.Equal(t, domain.Money(4400), b.PartnerEarnings)
	assert.InDelta(t, 0.12, b.CommissionRate, 1e-9)
}

func TestCalculator_TravelFeeTable(t *testing.T) {
	c := NewCalculator(DefaultConfig())

	cases := map[float64]domain.Money{
		0:     500,
		3:     500,
		4:     500,
		5:     600,
		6:     700,
		8:     900,
		10:    1100,
		4.005: 501,
		4.004: 500,
	}
	for km, want := range cases {
		assert.Equal(t, want, c.TravelFee(domain.ServiceTypeHome, km), "distance %v", km)
	}
}

func TestCalculator_QuickHaircut(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CommissionRate[domain.ServiceTypeHome] = 0.12
	c := NewCalculator(cfg)

	b, err := c.Quote(services(3000), domain.ServiceTypeHome, 3)

	require.NoError(t, err)
	assert.Equal(t, domain.Money(3700), b.Total)
	assert.Equal(t, domain.Money(360), b.Commission)
	assert.Equal(t, domain.Money(3140), b.PartnerEarnings)
	assert.Equal(t, domain.Money(560), b.PlatformRevenue)
}

func TestCalculator_RoundsHalfUp(t *testing.T) {
	c := NewCalculator(DefaultConfig())

	// 33.33 * 0.15 = 4.9995
	b, err := c.Quote(services(3333), domain.ServiceTypeHome, 1)

	require.NoError(t, err)
	assert.Equal(t, domain.Money(500), b.Commission)
	assert.Equal(t, domain.Money(2833+500), b.PartnerEarnings)
}

func TestCalculator_PartnerShareRoundedIndependently(t *testing.T) {
	c := NewCalculator(DefaultConfig())

	// 10.30 * 0.15 = 1.545, 10.30 * 0.85 = 8.755
	b, err := c.Quote(services(1030), domain.ServiceTypeHome, 3)

	require.NoError(t, err)
	assert.Equal(t, domain.Money(500), b.TravelFee)
	assert.Equal(t, domain.Money(1730), b.Total)
	assert.Equal(t, domain.Money(155), b.Commission)
	assert.Equal(t, domain.Money(1376), b.PartnerEarnings)
	assert.Equal(t, domain.Money(355), b.PlatformRevenue)
}

func TestCalculator_EmptyServices(t *testing.T) {
	c := NewCalculator(DefaultConfig())

	_, err := c.Quote(nil, domain.ServiceTypeHome, 1)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCalculator_UnknownServiceType(t *testing.T) {
	c := NewCalculator(DefaultConfig())

	_, err := c.Quote(services(1000), domain.ServiceType("drone"), 1)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCalculator_NonPositivePrice(t *testing.T) {
	c := NewCalculator(DefaultConfig())

	_, err := c.Quote(services(1000, 0), domain.ServiceTypeWalkIn, 0)

	assert.ErrorIs(t, err, domain.ErrValidation)
}
