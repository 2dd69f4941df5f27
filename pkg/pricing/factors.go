package pricing

import (
	"math"
	"time"
)

// Damage and area caps.
const (
	MaxDamageFactor = 0.50
	MaxAreaFactor   = 0.30

	damageCountWeight = 0.02
	damageAreaWeight  = 0.01
	maxDamageAreaTerm = 0.15
)

// DamageFactor converts detected damage into a fractional surcharge:
// severity times the shop multiplier, plus ln(count+1) diminishing returns
// on the number of damages, plus a capped area term. Capped at
// MaxDamageFactor; zero when nothing was detected or the count is negative.
func DamageFactor(d DamageMetrics, severityMultiplier float64) float64 {
	if d.Count <= 0 {
		return 0
	}

	severity := d.AverageSeverity * severityMultiplier
	count := math.Log(float64(d.Count)+1) * damageCountWeight
	area := math.Min(d.TotalArea*damageAreaWeight, maxDamageAreaTerm)

	return math.Min(severity+count+area, MaxDamageFactor)
}

// AreaFactor prices the affected area, capped at MaxAreaFactor.
func AreaFactor(totalArea, unitPrice float64) float64 {
	return math.Min(totalArea*unitPrice*0.01, MaxAreaFactor)
}

// FilthinessFactor looks the level up in table. A nil table uses
// DefaultFilthinessMultipliers; a level missing from the table is neutral.
func FilthinessFactor(level FilthinessLevel, table map[FilthinessLevel]float64) float64 {
	if table == nil {
		table = DefaultFilthinessMultipliers()
	}
	if v, ok := table[level]; ok {
		return v
	}
	return 1.0
}

// WeatherFactor looks the condition up in table. A nil table uses
// DefaultWeatherMultipliers; a condition missing from the table is neutral.
func WeatherFactor(condition WeatherCondition, table map[WeatherCondition]float64) float64 {
	if table == nil {
		table = DefaultWeatherMultipliers()
	}
	if v, ok := table[condition]; ok {
		return v
	}
	return 1.0
}

// WorkloadFactor is the surge multiplier for the shop's booking
// utilization. It is a step function: below threshold 1.0, then 1.1 under
// 90%, 1.2 under 95%, and 1.3 beyond. A shop with no capacity is neutral.
func WorkloadFactor(bookings, capacity int, threshold float64) float64 {
	if capacity <= 0 {
		return 1.0
	}

	utilization := float64(bookings) / float64(capacity)
	switch {
	case utilization < threshold:
		return 1.0
	case utilization < 0.9:
		return 1.1
	case utilization < 0.95:
		return 1.2
	default:
		return 1.3
	}
}

// SeasonalFactor returns the demand multiplier for a calendar month.
func SeasonalFactor(month time.Month) float64 {
	switch month {
	case time.March, time.April, time.May:
		return 1.15
	case time.June, time.July, time.August:
		return 1.20
	case time.September, time.October:
		return 1.10
	default:
		return 0.95
	}
}
