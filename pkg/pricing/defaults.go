package pricing

import "time"

// Default calculator inputs.
const (
	DefaultDamageSeverityMultiplier = 0.05
	DefaultAreaUnitPrice            = 2.0
	DefaultWorkloadSurgeThreshold   = 0.8

	// LoyaltyPointValue is the dollar value of one loyalty point.
	LoyaltyPointValue = 0.01
	// MaxLoyaltyCredit caps the credit a single estimate can receive.
	MaxLoyaltyCredit = 50.0
)

// DefaultFilthinessMultipliers returns a fresh copy of the default
// filthiness table.
func DefaultFilthinessMultipliers() map[FilthinessLevel]float64 {
	return map[FilthinessLevel]float64{
		FilthinessLight:    1.0,
		FilthinessModerate: 1.2,
		FilthinessHeavy:    1.5,
		FilthinessExtreme:  1.8,
	}
}

// DefaultWeatherMultipliers returns a fresh copy of the default weather
// table.
func DefaultWeatherMultipliers() map[WeatherCondition]float64 {
	return map[WeatherCondition]float64{
		WeatherClear:   1.0,
		WeatherRain:    1.08,
		WeatherSnow:    1.12,
		WeatherExtreme: 1.15,
	}
}

// DefaultMembershipDiscounts returns a fresh copy of the default tier
// discount table.
func DefaultMembershipDiscounts() map[MembershipTier]float64 {
	return map[MembershipTier]float64{
		TierBronze:   0.05,
		TierSilver:   0.08,
		TierGold:     0.10,
		TierPlatinum: 0.15,
	}
}

// DefaultShopSettings returns the settings a new shop starts with. Each call
// returns an independent value.
func DefaultShopSettings() ShopSettings {
	return ShopSettings{
		LaborRate:                75,
		SkillMarkup:              0.2,
		LocationSurcharge:        0,
		MembershipDiscounts:      DefaultMembershipDiscounts(),
		WorkloadSurgeThreshold:   DefaultWorkloadSurgeThreshold,
		FilthinessMultipliers:    DefaultFilthinessMultipliers(),
		DamageSeverityMultiplier: DefaultDamageSeverityMultiplier,
		AreaUnitPrice:            DefaultAreaUnitPrice,
		Packages:                 DefaultPackages(),
		ServiceTaxRate:           0.08,
		MaterialsTaxRate:         0.06,
	}
}

// DefaultPackages returns the starter service catalog.
func DefaultPackages() []ServicePackage {
	return []ServicePackage{
		{
			SKU:             "basic-wash",
			Name:            "Basic Wash",
			Description:     "Exterior hand wash and dry",
			BasePrice:       45,
			DefaultDuration: 1.5,
		},
		{
			SKU:             "interior-detail",
			Name:            "Interior Detail",
			Description:     "Vacuum, shampoo, and interior surface treatment",
			BasePrice:       95,
			DefaultDuration: 2.5,
		},
		{
			SKU:             "premium-detail",
			Name:            "Premium Detail",
			Description:     "Full interior and exterior detail with paint correction",
			BasePrice:       150,
			DefaultDuration: 4,
			FilthinessMultipliers: map[FilthinessLevel]float64{
				FilthinessHeavy:   1.1,
				FilthinessExtreme: 1.25,
			},
			VehicleTypeMultipliers: map[string]float64{
				"truck": 1.15,
				"suv":   1.1,
			},
		},
	}
}

// NeutralMarketConditions is the market snapshot used when a shop has none
// for the day: neutral weather and local demand, no competitor pressure, and
// the seasonal multiplier for month.
func NeutralMarketConditions(month time.Month) MarketConditions {
	return MarketConditions{
		WeatherFactor:   1.0,
		SeasonalDemand:  SeasonalFactor(month),
		CompetitorIndex: 0,
		LocalDemand:     1.0,
	}
}
