// Package models provides the data structures exchanged with the tariff
// client: the domain-side request aggregate and the normalized quotes the
// pipeline returns. All entities are transient, built fresh per call.
package models

import "github.com/shopspring/decimal"

// InsuredPerson is an individual covered by the requested product.
// Code fields left empty are filled with the documented defaults by the
// request builder; the struct itself carries no defaulting logic.
type InsuredPerson struct {
	Civility   string
	LastName   string
	FirstName  string
	BirthName  string
	BirthDate  string // any separator convention, normalized to YYYYMMDD on the wire
	BirthPlace string

	Street     string
	PostalCode string
	City       string
	Phone      string
	Email      string

	Smoker               bool
	ProfessionalCategory string // CSP code, "" means the salaried-employee default
	BusinessTravelTier   string // annual business-mileage tier
	ManualLaborTier      string // manual-work intensity tier
	WorksAtHeight        bool
	HazardousMaterials   bool

	Nationality      string
	ResidenceCountry string
	MembershipType   string // "" means new-loan default
}

// Loan carries the financed amount in major units and the nominal rate as
// a percentage; the builder converts both to the wire integer forms.
type Loan struct {
	Amount           decimal.Decimal // major units
	AnnualRate       decimal.Decimal // percentage, e.g. 1.20
	TermMonths       int
	LoanType         string // "" means amortizing
	RateType         string // "" means fixed
	DefermentMonths  int
	DisbursementDate string
	FinancingPurpose string // "" means primary residence
	MembershipType   string // "" means new loan
	Category         string // "" means real-estate
	BillingFrequency string // "" means monthly premiums
}

// GuaranteeSelection names the plan (bundle of covered risks) and the
// coverage quota percentage. With a co-insured present the quota is split
// evenly across the two persons by the builder.
type GuaranteeSelection struct {
	PlanCode     string
	QuotaPercent int
}

// CommissionOptions carries the optional broker-side commission
// parameters. Each field is emitted on the wire independently: a nil field
// emits nothing, and a nil options object emits none of them.
type CommissionOptions struct {
	AdhesionFeeCents *int64  // broker adhesion fee, minor units
	TierCode         *string // insurer-specific commission tier
	TypeCode         *string // commission type
}

// TariffRequest is the aggregate handed to the pipeline. Principal, Loan
// and Guarantee are structurally required; everything else is optional.
// A non-empty SimulationID requests pricing of one existing remote
// simulation/product instead of a fresh simulation.
type TariffRequest struct {
	Principal  *InsuredPerson
	CoInsured  *InsuredPerson
	Loan       *Loan
	Guarantee  *GuaranteeSelection
	Commission *CommissionOptions

	SimulationID string
}
