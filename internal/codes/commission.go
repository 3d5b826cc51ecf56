package codes

// CommissionTier is one broker commission rate band offered by an insurer.
type CommissionTier struct {
	Code  string
	Label string
}

// insurerTiers lists the valid commission-tier codes per insurer key, in
// the order the insurers publish them.
var insurerTiers = map[string][]CommissionTier{
	"AFI": {
		{Code: "C30", Label: "Commission 30%"},
		{Code: "C40", Label: "Commission 40%"},
		{Code: "C50", Label: "Commission 50%"},
	},
	"MNCAP": {
		{Code: "T1", Label: "Barème 1"},
		{Code: "T2", Label: "Barème 2"},
		{Code: "T3", Label: "Barème 3"},
	},
	"MUTLOG": {
		{Code: "STD", Label: "Barème standard"},
		{Code: "MAJ", Label: "Barème majoré"},
	},
}

// recommendedTier holds the default tier per insurer key.
var recommendedTier = map[string]string{
	"AFI":    "C40",
	"MNCAP":  "T2",
	"MUTLOG": "STD",
}

// CommissionTiers returns the ordered list of valid commission tiers for
// an insurer, or nil when the insurer is unknown.
func CommissionTiers(insurer string) []CommissionTier {
	return insurerTiers[insurer]
}

// RecommendedCommissionTier returns the default tier code for an insurer,
// or the empty string when the insurer is unknown.
func RecommendedCommissionTier(insurer string) string {
	return recommendedTier[insurer]
}

// CommissionTierLabel resolves a tier code for an insurer to its label.
func CommissionTierLabel(insurer, code string) string {
	for _, t := range insurerTiers[insurer] {
		if t.Code == code {
			return t.Label
		}
	}
	return Label(nil, code)
}
