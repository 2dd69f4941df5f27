package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePricingParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(p *PricingParams)
		want   []string
	}{
		{
			name:   "valid",
			mutate: func(*PricingParams) {},
		},
		{
			name:   "zero base price",
			mutate: func(p *PricingParams) { p.BasePrice = 0 },
			want:   []string{"base price must be greater than 0"},
		},
		{
			name:   "negative duration",
			mutate: func(p *PricingParams) { p.DefaultDuration = -1 },
			want:   []string{"default duration must be greater than 0"},
		},
		{
			name:   "no technicians",
			mutate: func(p *PricingParams) { p.TechCount = 0 },
			want:   []string{"tech count must be greater than 0"},
		},
		{
			name:   "zero labor rate",
			mutate: func(p *PricingParams) { p.LaborRate = 0 },
			want:   []string{"labor rate must be greater than 0"},
		},
		{
			name:   "discount above one",
			mutate: func(p *PricingParams) { p.MembershipDiscount = 1.5 },
			want:   []string{"membership discount must be between 0 and 1"},
		},
		{
			name:   "negative discount",
			mutate: func(p *PricingParams) { p.MembershipDiscount = -0.1 },
			want:   []string{"membership discount must be between 0 and 1"},
		},
		{
			name:   "discount of exactly one is allowed",
			mutate: func(p *PricingParams) { p.MembershipDiscount = 1 },
		},
		{
			name:   "negative loyalty credit",
			mutate: func(p *PricingParams) { p.LoyaltyCredit = -5 },
			want:   []string{"loyalty credit cannot be negative"},
		},
		{
			name: "everything wrong",
			mutate: func(p *PricingParams) {
				*p = PricingParams{MembershipDiscount: 2, LoyaltyCredit: -1}
			},
			want: []string{
				"base price must be greater than 0",
				"default duration must be greater than 0",
				"tech count must be greater than 0",
				"labor rate must be greater than 0",
				"membership discount must be between 0 and 1",
				"loyalty credit cannot be negative",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := basicWashParams()
			tt.mutate(&p)
			assert.Equal(t, tt.want, ValidatePricingParams(p))
		})
	}
}

func TestValidatePricingParams_DoesNotBlockCalculation(t *testing.T) {
	t.Parallel()

	p := basicWashParams()
	p.TechCount = -1

	assert.NotEmpty(t, ValidatePricingParams(p))
	assert.GreaterOrEqual(t, CalculateEstimate(p), 0.0)
}
