package pricing

// ValidatePricingParams returns a human-readable message for every problem
// found in p, or nil when p is valid. The calculators never call it; callers
// decide whether a non-empty result blocks pricing.
func ValidatePricingParams(p PricingParams) []string {
	var errs []string

	if p.BasePrice <= 0 {
		errs = append(errs, "base price must be greater than 0")
	}
	if p.DefaultDuration <= 0 {
		errs = append(errs, "default duration must be greater than 0")
	}
	if p.TechCount <= 0 {
		errs = append(errs, "tech count must be greater than 0")
	}
	if p.LaborRate <= 0 {
		errs = append(errs, "labor rate must be greater than 0")
	}
	if p.MembershipDiscount < 0 || p.MembershipDiscount > 1 {
		errs = append(errs, "membership discount must be between 0 and 1")
	}
	if p.LoyaltyCredit < 0 {
		errs = append(errs, "loyalty credit cannot be negative")
	}

	return errs
}
