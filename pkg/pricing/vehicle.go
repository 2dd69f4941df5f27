package pricing

import (
	"math"
	"strings"
)

// Vehicle factor caps.
const (
	MaxComplexityFactor = 0.25
	MaxSpecialtyFactor  = 0.35
)

// keywordRule adds value when any keyword is a substring of the
// lower-cased input.
type keywordRule struct {
	keywords []string
	value    float64
}

func (r keywordRule) matches(text string) bool {
	for _, k := range r.keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// sizeRules are checked in order; the first match wins.
var sizeRules = []keywordRule{
	{keywords: []string{"truck", "pickup"}, value: 0.25},
	{keywords: []string{"suv"}, value: 0.20},
	{keywords: []string{"van", "minivan"}, value: 0.18},
	{keywords: []string{"wagon"}, value: 0.12},
	{keywords: []string{"coupe", "convertible"}, value: 0.08},
}

const defaultSizeFactor = 0.10

// Fuel and trim rules are additive: every matching rule contributes.
var (
	fuelRules = []keywordRule{
		{keywords: []string{"electric"}, value: 0.30},
		{keywords: []string{"hybrid"}, value: 0.20},
		{keywords: []string{"diesel"}, value: 0.10},
	}
	trimRules = []keywordRule{
		{keywords: []string{"luxury", "premium"}, value: 0.15},
		{keywords: []string{"sport", "performance"}, value: 0.12},
		{keywords: []string{"limited", "platinum"}, value: 0.18},
	}
	allWheelDriveRule = keywordRule{keywords: []string{"4wd", "awd", "4x4"}, value: 0.15}
)

// AgeFactor returns the age surcharge for a model year. Comparisons are
// strict, so a vehicle exactly on a boundary falls to the lower bracket.
func AgeFactor(modelYear, currentYear int) float64 {
	age := currentYear - modelYear
	switch {
	case age > 15:
		return 0.20
	case age > 10:
		return 0.10
	case age < 3:
		return 0.15
	default:
		return 0.05
	}
}

// SizeFactor maps the body class to a size surcharge. The vehicle type is
// consulted only when the body class is empty.
func SizeFactor(bodyClass, vehicleType string) float64 {
	text := strings.ToLower(bodyClass)
	if strings.TrimSpace(text) == "" {
		text = strings.ToLower(vehicleType)
	}
	for _, r := range sizeRules {
		if r.matches(text) {
			return r.value
		}
	}
	return defaultSizeFactor
}

// ComplexityFactor scores drivetrain and engine complexity, capped at
// MaxComplexityFactor.
func ComplexityFactor(driveType string, cylinders int) float64 {
	factor := 0.0
	if allWheelDriveRule.matches(strings.ToLower(driveType)) {
		factor += allWheelDriveRule.value
	}
	if cylinders >= 8 {
		factor += 0.10
	}
	if cylinders >= 12 {
		factor += 0.05
	}
	return math.Min(factor, MaxComplexityFactor)
}

// SpecialtyFactor scores fuel type and trim level, capped at
// MaxSpecialtyFactor.
func SpecialtyFactor(fuelType, trim string) float64 {
	factor := sumMatches(fuelRules, strings.ToLower(fuelType)) +
		sumMatches(trimRules, strings.ToLower(trim))
	return math.Min(factor, MaxSpecialtyFactor)
}

func sumMatches(rules []keywordRule, text string) float64 {
	sum := 0.0
	for _, r := range rules {
		if r.matches(text) {
			sum += r.value
		}
	}
	return sum
}

// DeriveVehicleFactors returns a copy of specs with the four pricing factors
// recomputed from the descriptive fields.
func DeriveVehicleFactors(specs VehicleSpecs, currentYear int) VehicleSpecs {
	specs.AgeFactor = AgeFactor(specs.Year, currentYear)
	specs.SizeFactor = SizeFactor(specs.BodyClass, specs.VehicleType)
	specs.ComplexityFactor = ComplexityFactor(specs.DriveType, specs.Cylinders)
	specs.SpecialtyFactor = SpecialtyFactor(specs.FuelType, specs.Trim)
	return specs
}
