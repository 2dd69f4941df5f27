package pricing

import "math"

// BuildPricingParams resolves the collaborator inputs for one estimate into
// PricingParams.
//
// The workload factor is taken from market.LocalDemand. Callers pricing surge
// from booking counts compute WorkloadFactor themselves and overwrite the
// field on the returned value.
func BuildPricingParams(
	vehicle VehicleSpecs,
	damages DamageMetrics,
	pkg ServicePackage,
	shop ShopSettings,
	customer CustomerProfile,
	market MarketConditions,
	techCount int,
	filthiness FilthinessLevel,
) PricingParams {
	return PricingParams{
		BasePrice:       pkg.BasePrice,
		DefaultDuration: pkg.DefaultDuration,
		TechCount:       techCount,

		LaborRate:         shop.LaborRate,
		SkillMarkup:       shop.SkillMarkup,
		LocationSurcharge: shop.LocationSurcharge,

		AgeFactor:        vehicle.AgeFactor,
		BodyFactor:       vehicle.SizeFactor,
		DamageFactor:     DamageFactor(damages, shop.DamageSeverityMultiplier),
		AreaFactor:       AreaFactor(damages.TotalArea, shop.AreaUnitPrice),
		FilthinessFactor: FilthinessFactor(filthiness, shop.FilthinessMultipliers),
		WorkloadFactor:   market.LocalDemand,

		WeatherFactor:    market.WeatherFactor,
		SeasonalFactor:   market.SeasonalDemand,
		CompetitorFactor: market.CompetitorIndex,

		MembershipDiscount: shop.MembershipDiscounts[customer.MembershipTier],
		LoyaltyCredit:      LoyaltyCredit(customer.LoyaltyPoints),
	}
}

// LoyaltyCredit converts loyalty points to a dollar credit capped at
// MaxLoyaltyCredit.
func LoyaltyCredit(points int) float64 {
	return math.Min(float64(points)*LoyaltyPointValue, MaxLoyaltyCredit)
}
