// Package codes holds the static domain code tables used by the tariff
// protocol: professional categories, loan types, financing purposes,
// guarantee plans, membership types and the per-insurer commission tiers.
// Pure lookup data, safe for unlimited concurrent readers.
package codes

import "fmt"

// Wire codes with a documented default. The builder consults Defaults as
// the single fallback table instead of scattering per-field defaulting.
const (
	DefaultProfessionalCategory = "10" // salaried employee
	DefaultLoanType             = "1"  // amortizing
	DefaultRateType             = "1"  // fixed
	DefaultFinancingPurpose     = "1"  // primary residence
	DefaultMembershipType       = "1"  // new loan
	DefaultBillingFrequency     = "M"  // monthly premiums
	DefaultLoanCategory         = "IMMO"
)

// Civilities maps civility codes to labels.
var Civilities = map[string]string{
	"M":   "Monsieur",
	"MME": "Madame",
	"MLE": "Mademoiselle",
}

// ProfessionalCategories maps CSP codes to labels.
var ProfessionalCategories = map[string]string{
	"10": "Salarié",
	"20": "Cadre",
	"31": "Profession libérale",
	"40": "Fonctionnaire",
	"50": "Artisan / Commerçant",
	"60": "Agriculteur",
	"70": "Retraité",
	"80": "Sans activité professionnelle",
}

// LoanTypes maps loan-type codes to labels.
var LoanTypes = map[string]string{
	"1": "Amortissable",
	"2": "In fine",
	"3": "Prêt relais",
	"4": "Crédit-bail",
}

// RateTypes maps rate-type codes to labels.
var RateTypes = map[string]string{
	"1": "Taux fixe",
	"2": "Taux variable",
	"3": "Taux capé",
}

// FinancingPurposes maps financing-purpose codes to labels.
var FinancingPurposes = map[string]string{
	"1": "Résidence principale",
	"2": "Résidence secondaire",
	"3": "Investissement locatif",
	"4": "Travaux",
	"5": "Consommation",
	"6": "Besoin professionnel",
}

// GuaranteePlans maps guarantee plan codes to the bundle of covered risks.
var GuaranteePlans = map[string]string{
	"1": "Décès",
	"2": "Décès + PTIA",
	"3": "Décès + PTIA + IPT/ITT",
	"4": "Décès + PTIA + IPT/ITT + IPP",
	"5": "Décès + PTIA + IPT/ITT + IPP + Perte d'emploi",
}

// MembershipTypes maps membership-type codes to labels.
var MembershipTypes = map[string]string{
	"1": "Nouveau prêt",
	"2": "Substitution d'assurance",
	"3": "Reprise d'encours",
}

// BillingFrequencies maps fractionation codes to labels.
var BillingFrequencies = map[string]string{
	"M": "Mensuel",
	"U": "Prime unique",
}

// LoanCategories maps loan-category codes to labels.
var LoanCategories = map[string]string{
	"IMMO":  "Prêt immobilier",
	"AUTRE": "Autre financement",
}

// BusinessTravelTiers maps annual business-mileage tiers to labels.
var BusinessTravelTiers = map[string]string{
	"0": "Aucun déplacement",
	"1": "Moins de 20 000 km/an",
	"2": "20 000 à 40 000 km/an",
	"3": "Plus de 40 000 km/an",
}

// ManualLaborTiers maps manual-work intensity tiers to labels.
var ManualLaborTiers = map[string]string{
	"0": "Aucun travail manuel",
	"1": "Travail manuel léger",
	"2": "Travail manuel régulier",
	"3": "Travail manuel intensif",
}

// Label resolves a code in the given table, falling back to a generic
// label for unknown codes so display code never has to nil-check.
func Label(table map[string]string, code string) string {
	if label, ok := table[code]; ok {
		return label
	}
	return fmt.Sprintf("Code %s", code)
}

// OrDefault returns code when non-empty, otherwise fallback.
func OrDefault(code, fallback string) string {
	if code != "" {
		return code
	}
	return fallback
}
