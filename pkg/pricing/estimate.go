package pricing

import "math"

// CalculateEstimate returns the estimate total in dollars, floored at zero
// and rounded to the cent.
//
// Weather and seasonal factors are added to the base multiplier as raw
// values, not as (factor - 1). GeneratePriceBreakdown applies them
// multiplicatively instead, so the two totals generally differ. Both formulas
// are kept as-is until one is chosen as canonical; see Diverges.
func CalculateEstimate(p PricingParams) float64 {
	estimate := p.BasePrice * (1 + p.AgeFactor + p.BodyFactor + p.WeatherFactor + p.SeasonalFactor)

	labor, damage, area := directCosts(&p)
	estimate += labor + damage + area

	estimate *= p.FilthinessFactor * p.WorkloadFactor * (1 + p.LocationSurcharge)
	estimate *= 1 + p.CompetitorFactor
	estimate = estimate*(1-p.MembershipDiscount) - p.LoyaltyCredit

	return roundCents(math.Max(estimate, 0))
}

// GeneratePriceBreakdown itemizes the price. The adjustment lines report
// each market factor's dollar contribution relative to a neutral factor.
func GeneratePriceBreakdown(p PricingParams) PriceBreakdown {
	labor, damage, area := directCosts(&p)

	b := PriceBreakdown{
		BasePrice:       p.BasePrice,
		LaborCost:       labor,
		DamageSurcharge: damage,
		AreaSurcharge:   area,

		FilthinessMultiplier: p.FilthinessFactor,
		WorkloadMultiplier:   p.WorkloadFactor,
		LocationMultiplier:   1 + p.LocationSurcharge,
		SkillMultiplier:      1 + p.SkillMarkup,

		LoyaltyCredit: p.LoyaltyCredit,
	}

	subtotal := p.BasePrice + labor + damage + area
	subtotal *= p.FilthinessFactor * p.WorkloadFactor * (1 + p.LocationSurcharge)

	b.WeatherSurcharge = subtotal * (p.WeatherFactor - 1)
	b.SeasonalAdjustment = subtotal * (p.SeasonalFactor - 1)
	b.CompetitorAdjustment = subtotal * p.CompetitorFactor

	subtotal *= (1 + p.WeatherFactor - 1) * (1 + p.SeasonalFactor - 1) * (1 + p.CompetitorFactor)

	b.Subtotal = subtotal
	b.MembershipDiscount = subtotal * p.MembershipDiscount
	b.Total = math.Max(0, b.Subtotal-b.MembershipDiscount-b.LoyaltyCredit)
	b.Savings = b.MembershipDiscount + b.LoyaltyCredit

	return b
}

// Diverges reports whether CalculateEstimate and GeneratePriceBreakdown
// disagree on the total at cent precision for p.
func Diverges(p PricingParams) bool {
	return CalculateEstimate(p) != roundCents(GeneratePriceBreakdown(p).Total)
}

// directCosts returns the labor, damage, and area costs shared by both
// pricing formulas.
func directCosts(p *PricingParams) (labor, damage, area float64) {
	labor = p.hours() * float64(p.TechCount) * p.LaborRate * (1 + p.SkillMarkup)
	damage = p.BasePrice * p.DamageFactor
	area = p.BasePrice * p.AreaFactor
	return labor, damage, area
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
