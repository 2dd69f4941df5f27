package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPricingParams(t *testing.T) {
	t.Parallel()

	shop := DefaultShopSettings()
	shop.LocationSurcharge = 0.07
	pkg, ok := shop.Package("interior-detail")
	require.True(t, ok)

	vehicle := DeriveVehicleFactors(VehicleSpecs{
		Year:      2005,
		BodyClass: "Sport Utility Vehicle (SUV)",
		DriveType: "4WD",
	}, 2026)

	market := MarketConditions{
		WeatherFactor:   1.08,
		SeasonalDemand:  1.15,
		CompetitorIndex: 0.03,
		LocalDemand:     1.1,
	}

	p := BuildPricingParams(
		vehicle,
		DamageMetrics{Count: 1, AverageSeverity: 0.4, TotalArea: 2},
		pkg,
		shop,
		CustomerProfile{MembershipTier: TierSilver, LoyaltyPoints: 1234},
		market,
		2,
		FilthinessHeavy,
	)

	assert.InDelta(t, 95.0, p.BasePrice, 1e-12)
	assert.InDelta(t, 2.5, p.DefaultDuration, 1e-12)
	assert.Nil(t, p.DurationHrs)
	assert.Equal(t, 2, p.TechCount)
	assert.InDelta(t, 75.0, p.LaborRate, 1e-12)
	assert.InDelta(t, 0.2, p.SkillMarkup, 1e-12)
	assert.InDelta(t, 0.07, p.LocationSurcharge, 1e-12)
	assert.InDelta(t, 0.20, p.AgeFactor, 1e-12)
	assert.InDelta(t, 0.20, p.BodyFactor, 1e-12, "size factor fills the body slot")
	assert.InDelta(t, DamageFactor(DamageMetrics{Count: 1, AverageSeverity: 0.4, TotalArea: 2}, 0.05), p.DamageFactor, 1e-12)
	assert.InDelta(t, 0.04, p.AreaFactor, 1e-12)
	assert.InDelta(t, 1.5, p.FilthinessFactor, 1e-12)
	assert.InDelta(t, 1.1, p.WorkloadFactor, 1e-12, "workload comes from local demand")
	assert.InDelta(t, 1.08, p.WeatherFactor, 1e-12)
	assert.InDelta(t, 1.15, p.SeasonalFactor, 1e-12)
	assert.InDelta(t, 0.03, p.CompetitorFactor, 1e-12)
	assert.InDelta(t, 0.08, p.MembershipDiscount, 1e-12)
	assert.InDelta(t, 12.34, p.LoyaltyCredit, 1e-12)
}

func TestBuildPricingParams_UnknownTier(t *testing.T) {
	t.Parallel()

	shop := DefaultShopSettings()
	pkg, _ := shop.Package("basic-wash")

	for _, tier := range []MembershipTier{TierNone, "", "diamond"} {
		p := BuildPricingParams(VehicleSpecs{}, DamageMetrics{}, pkg, shop,
			CustomerProfile{MembershipTier: tier}, MarketConditions{}, 1, FilthinessLight)
		assert.InDelta(t, 0.0, p.MembershipDiscount, 1e-12, "tier %q", tier)
	}
}

func TestLoyaltyCredit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		points int
		want   float64
	}{
		{points: 0, want: 0},
		{points: 250, want: 2.5},
		{points: 4999, want: 49.99},
		{points: 5000, want: 50},
		{points: 1_000_000, want: 50},
	}

	for _, tt := range tests {
		got := LoyaltyCredit(tt.points)
		assert.InDelta(t, tt.want, got, 1e-9, "points=%d", tt.points)
		assert.LessOrEqual(t, got, MaxLoyaltyCredit)
	}
}

func TestShopSettings_Package(t *testing.T) {
	t.Parallel()

	s := DefaultShopSettings()

	pkg, ok := s.Package("premium-detail")
	require.True(t, ok)
	assert.Equal(t, "Premium Detail", pkg.Name)

	_, ok = s.Package("ceramic-coat")
	assert.False(t, ok)
}
