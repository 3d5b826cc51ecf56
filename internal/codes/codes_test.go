package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		table    map[string]string
		code     string
		expected string
	}{
		{"Known CSP", ProfessionalCategories, "10", "Salarié"},
		{"Known plan", GuaranteePlans, "2", "Décès + PTIA"},
		{"Unknown code falls back", LoanTypes, "99", "Code 99"},
		{"Nil table falls back", nil, "X", "Code X"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Label(tc.table, tc.code))
		})
	}
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "3", OrDefault("3", DefaultLoanType))
	assert.Equal(t, DefaultLoanType, OrDefault("", DefaultLoanType))
}

func TestDefaultsResolveToKnownCodes(t *testing.T) {
	// Every documented default must exist in its own table.
	assert.Contains(t, ProfessionalCategories, DefaultProfessionalCategory)
	assert.Contains(t, LoanTypes, DefaultLoanType)
	assert.Contains(t, RateTypes, DefaultRateType)
	assert.Contains(t, FinancingPurposes, DefaultFinancingPurpose)
	assert.Contains(t, MembershipTypes, DefaultMembershipType)
	assert.Contains(t, BillingFrequencies, DefaultBillingFrequency)
	assert.Contains(t, LoanCategories, DefaultLoanCategory)
}

func TestCommissionTiers(t *testing.T) {
	tiers := CommissionTiers("AFI")
	assert.Len(t, tiers, 3)
	assert.Equal(t, "C30", tiers[0].Code)

	assert.Nil(t, CommissionTiers("UNKNOWN"))
}

func TestRecommendedCommissionTier(t *testing.T) {
	for _, insurer := range []string{"AFI", "MNCAP", "MUTLOG"} {
		recommended := RecommendedCommissionTier(insurer)
		assert.NotEmpty(t, recommended, insurer)

		found := false
		for _, tier := range CommissionTiers(insurer) {
			if tier.Code == recommended {
				found = true
			}
		}
		assert.True(t, found, "recommended tier of %s must be in its tier list", insurer)
	}

	assert.Empty(t, RecommendedCommissionTier("UNKNOWN"))
}

func TestCommissionTierLabel(t *testing.T) {
	assert.Equal(t, "Barème 2", CommissionTierLabel("MNCAP", "T2"))
	assert.Equal(t, "Code T9", CommissionTierLabel("MNCAP", "T9"))
}
