// Package pricing implements the dynamic pricing engine for vehicle
// inspection and detailing estimates. Every function in this package is
// pure: inputs are plain values, outputs are freshly allocated, and nothing
// here performs I/O or holds state between calls.
package pricing

// FilthinessLevel is the coarse four-point cleanliness rating of a vehicle.
type FilthinessLevel string

// Filthiness levels.
const (
	FilthinessLight    FilthinessLevel = "light"
	FilthinessModerate FilthinessLevel = "moderate"
	FilthinessHeavy    FilthinessLevel = "heavy"
	FilthinessExtreme  FilthinessLevel = "extreme"
)

// WeatherCondition is the daily weather bucket used for weather pricing.
type WeatherCondition string

// Weather conditions.
const (
	WeatherClear   WeatherCondition = "clear"
	WeatherRain    WeatherCondition = "rain"
	WeatherSnow    WeatherCondition = "snow"
	WeatherExtreme WeatherCondition = "extreme"
)

// MembershipTier is a customer loyalty bracket.
type MembershipTier string

// Membership tiers.
const (
	TierNone     MembershipTier = "none"
	TierBronze   MembershipTier = "bronze"
	TierSilver   MembershipTier = "silver"
	TierGold     MembershipTier = "gold"
	TierPlatinum MembershipTier = "platinum"
)

// VehicleSpecs describes a decoded vehicle. The four factor fields are
// derived from the others by DeriveVehicleFactors.
type VehicleSpecs struct {
	Year          int     `json:"year"`
	Make          string  `json:"make"`
	Model         string  `json:"model"`
	Trim          string  `json:"trim,omitempty"`
	BodyClass     string  `json:"body_class,omitempty"`
	VehicleType   string  `json:"vehicle_type,omitempty"`
	Doors         int     `json:"doors,omitempty"`
	Cylinders     int     `json:"cylinders,omitempty"`
	Displacement  float64 `json:"displacement,omitempty"`
	FuelType      string  `json:"fuel_type,omitempty"`
	DriveType     string  `json:"drive_type,omitempty"`
	PlantLocation string  `json:"plant_location,omitempty"`
	GVWR          string  `json:"gvwr,omitempty"`

	AgeFactor        float64 `json:"age_factor"        required:"false"`
	SizeFactor       float64 `json:"size_factor"       required:"false"`
	ComplexityFactor float64 `json:"complexity_factor" required:"false"`
	SpecialtyFactor  float64 `json:"specialty_factor"  required:"false"`
}

// DamageMetrics summarizes the damage detected during one inspection.
type DamageMetrics struct {
	Count           int      `json:"count"               required:"false" validate:"gte=0"`
	AverageSeverity float64  `json:"average_severity"    required:"false" validate:"gte=0,lte=1"`
	TotalArea       float64  `json:"total_area"          required:"false" validate:"gte=0"` // square meters
	Types           []string `json:"types,omitempty"`
	Locations       []string `json:"locations,omitempty"`
}

// ServicePackage is a priced service offered by a shop.
type ServicePackage struct {
	SKU                    string                      `json:"sku"                                validate:"required"`
	Name                   string                      `json:"name"                               validate:"required"`
	Description            string                      `json:"description,omitempty"`
	BasePrice              float64                     `json:"base_price"                         validate:"gt=0"`
	DefaultDuration        float64                     `json:"default_duration"                   validate:"gt=0"` // hours
	FilthinessMultipliers  map[FilthinessLevel]float64 `json:"filthiness_multipliers,omitempty"   validate:"dive,gte=1"`
	VehicleTypeMultipliers map[string]float64          `json:"vehicle_type_multipliers,omitempty" validate:"dive,gte=1"`
}

// ShopSettings holds one shop's pricing configuration.
type ShopSettings struct {
	LaborRate                float64                     `json:"labor_rate"                 validate:"gt=0"`
	SkillMarkup              float64                     `json:"skill_markup"               validate:"gte=0,lte=1"`
	LocationSurcharge        float64                     `json:"location_surcharge"         validate:"gte=0,lte=1"`
	MembershipDiscounts      map[MembershipTier]float64  `json:"membership_discounts"       validate:"dive,gte=0,lte=1"`
	WorkloadSurgeThreshold   float64                     `json:"workload_surge_threshold"   validate:"gte=0,lte=1"`
	FilthinessMultipliers    map[FilthinessLevel]float64 `json:"filthiness_multipliers"     validate:"dive,gte=1"`
	DamageSeverityMultiplier float64                     `json:"damage_severity_multiplier" validate:"gte=0"`
	AreaUnitPrice            float64                     `json:"area_unit_price"            validate:"gte=0"`
	Packages                 []ServicePackage            `json:"packages"                   validate:"dive"`
	ServiceTaxRate           float64                     `json:"service_tax_rate"           validate:"gte=0,lte=1"`
	MaterialsTaxRate         float64                     `json:"materials_tax_rate"         validate:"gte=0,lte=1"`
}

// Package returns the service package with the given SKU.
func (s *ShopSettings) Package(sku string) (ServicePackage, bool) {
	for i := range s.Packages {
		if s.Packages[i].SKU == sku {
			return s.Packages[i], true
		}
	}
	return ServicePackage{}, false
}

// CustomerProfile is the loyalty state of a customer.
type CustomerProfile struct {
	MembershipTier    MembershipTier `json:"membership_tier"              required:"false" validate:"omitempty,oneof=none bronze silver gold platinum"`
	LoyaltyPoints     int            `json:"loyalty_points"               validate:"gte=0"`
	HistoricalSpend   float64        `json:"historical_spend"             required:"false" validate:"gte=0"`
	PreferredServices []string       `json:"preferred_services,omitempty"`
}

// MarketConditions is a shop's market snapshot for one day. All factors are
// centered near 1.0 except CompetitorIndex, which enters the formulas as
// (1 + CompetitorIndex).
type MarketConditions struct {
	WeatherFactor   float64 `json:"weather_factor"`
	SeasonalDemand  float64 `json:"seasonal_demand"`
	CompetitorIndex float64 `json:"competitor_index"`
	LocalDemand     float64 `json:"local_demand"`
}

// PricingParams is the fully resolved input to CalculateEstimate and
// GeneratePriceBreakdown.
type PricingParams struct {
	BasePrice       float64  `json:"base_price"`
	DefaultDuration float64  `json:"default_duration"`
	DurationHrs     *float64 `json:"duration_hrs,omitempty"`
	TechCount       int      `json:"tech_count"`

	LaborRate         float64 `json:"labor_rate"`
	SkillMarkup       float64 `json:"skill_markup"`
	LocationSurcharge float64 `json:"location_surcharge"`

	AgeFactor        float64 `json:"age_factor"`
	BodyFactor       float64 `json:"body_factor"`
	DamageFactor     float64 `json:"damage_factor"`
	AreaFactor       float64 `json:"area_factor"`
	FilthinessFactor float64 `json:"filthiness_factor"`
	WorkloadFactor   float64 `json:"workload_factor"`

	WeatherFactor    float64 `json:"weather_factor"`
	SeasonalFactor   float64 `json:"seasonal_factor"`
	CompetitorFactor float64 `json:"competitor_factor"`

	MembershipDiscount float64 `json:"membership_discount"`
	LoyaltyCredit      float64 `json:"loyalty_credit"`
}

// hours returns the explicit duration when set, otherwise the default.
func (p *PricingParams) hours() float64 {
	if p.DurationHrs != nil {
		return *p.DurationHrs
	}
	return p.DefaultDuration
}

// PriceBreakdown itemizes a computed price.
type PriceBreakdown struct {
	BasePrice       float64 `json:"base_price"`
	LaborCost       float64 `json:"labor_cost"`
	DamageSurcharge float64 `json:"damage_surcharge"`
	AreaSurcharge   float64 `json:"area_surcharge"`

	FilthinessMultiplier float64 `json:"filthiness_multiplier"`
	WorkloadMultiplier   float64 `json:"workload_multiplier"`
	LocationMultiplier   float64 `json:"location_multiplier"`
	SkillMultiplier      float64 `json:"skill_multiplier"`

	WeatherSurcharge     float64 `json:"weather_surcharge"`
	SeasonalAdjustment   float64 `json:"seasonal_adjustment"`
	CompetitorAdjustment float64 `json:"competitor_adjustment"`

	MembershipDiscount float64 `json:"membership_discount"`
	LoyaltyCredit      float64 `json:"loyalty_credit"`

	Subtotal float64 `json:"subtotal"`
	Total    float64 `json:"total"`
	Savings  float64 `json:"savings"`
}
