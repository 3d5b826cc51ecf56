package quote

import (
	"fmt"
	"os"

	"emprunteo/tarificateur/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// requestFileSpec mirrors models.TariffRequest with YAML-friendly field
// types. Monetary amounts and rates are strings so they survive YAML
// without float rounding.
type requestFileSpec struct {
	Principal    *personSpec     `yaml:"principal"`
	CoInsured    *personSpec     `yaml:"co_insured"`
	Loan         *loanSpec       `yaml:"loan"`
	Guarantee    *guaranteeSpec  `yaml:"guarantee"`
	Commission   *commissionSpec `yaml:"commission"`
	SimulationID string          `yaml:"simulation_id"`
}

type personSpec struct {
	Civility   string `yaml:"civility"`
	LastName   string `yaml:"last_name"`
	FirstName  string `yaml:"first_name"`
	BirthName  string `yaml:"birth_name"`
	BirthDate  string `yaml:"birth_date"`
	BirthPlace string `yaml:"birth_place"`

	Street     string `yaml:"street"`
	PostalCode string `yaml:"postal_code"`
	City       string `yaml:"city"`
	Phone      string `yaml:"phone"`
	Email      string `yaml:"email"`

	Smoker               bool   `yaml:"smoker"`
	ProfessionalCategory string `yaml:"professional_category"`
	BusinessTravelTier   string `yaml:"business_travel_tier"`
	ManualLaborTier      string `yaml:"manual_labor_tier"`
	WorksAtHeight        bool   `yaml:"works_at_height"`
	HazardousMaterials   bool   `yaml:"hazardous_materials"`

	Nationality      string `yaml:"nationality"`
	ResidenceCountry string `yaml:"residence_country"`
	MembershipType   string `yaml:"membership_type"`
}

type loanSpec struct {
	Amount           string `yaml:"amount"`
	AnnualRate       string `yaml:"annual_rate"`
	TermMonths       int    `yaml:"term_months"`
	LoanType         string `yaml:"loan_type"`
	RateType         string `yaml:"rate_type"`
	DefermentMonths  int    `yaml:"deferment_months"`
	DisbursementDate string `yaml:"disbursement_date"`
	FinancingPurpose string `yaml:"financing_purpose"`
	MembershipType   string `yaml:"membership_type"`
	Category         string `yaml:"category"`
	BillingFrequency string `yaml:"billing_frequency"`
}

type guaranteeSpec struct {
	PlanCode     string `yaml:"plan_code"`
	QuotaPercent int    `yaml:"quota_percent"`
}

type commissionSpec struct {
	AdhesionFeeCents *int64  `yaml:"adhesion_fee_cents"`
	TierCode         *string `yaml:"tier_code"`
	TypeCode         *string `yaml:"type_code"`
}

// LoadRequestFile reads a YAML tariff request file into the domain form.
func LoadRequestFile(path string) (*models.TariffRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading request file: %w", err)
	}

	var spec requestFileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("error parsing request file: %w", err)
	}

	req := &models.TariffRequest{SimulationID: spec.SimulationID}
	if spec.Principal != nil {
		req.Principal = spec.Principal.toModel()
	}
	if spec.CoInsured != nil {
		req.CoInsured = spec.CoInsured.toModel()
	}
	if spec.Loan != nil {
		loan, err := spec.Loan.toModel()
		if err != nil {
			return nil, err
		}
		req.Loan = loan
	}
	if spec.Guarantee != nil {
		req.Guarantee = &models.GuaranteeSelection{
			PlanCode:     spec.Guarantee.PlanCode,
			QuotaPercent: spec.Guarantee.QuotaPercent,
		}
	}
	if spec.Commission != nil {
		req.Commission = &models.CommissionOptions{
			AdhesionFeeCents: spec.Commission.AdhesionFeeCents,
			TierCode:         spec.Commission.TierCode,
			TypeCode:         spec.Commission.TypeCode,
		}
	}
	return req, nil
}

func (p *personSpec) toModel() *models.InsuredPerson {
	return &models.InsuredPerson{
		Civility:   p.Civility,
		LastName:   p.LastName,
		FirstName:  p.FirstName,
		BirthName:  p.BirthName,
		BirthDate:  p.BirthDate,
		BirthPlace: p.BirthPlace,

		Street:     p.Street,
		PostalCode: p.PostalCode,
		City:       p.City,
		Phone:      p.Phone,
		Email:      p.Email,

		Smoker:               p.Smoker,
		ProfessionalCategory: p.ProfessionalCategory,
		BusinessTravelTier:   p.BusinessTravelTier,
		ManualLaborTier:      p.ManualLaborTier,
		WorksAtHeight:        p.WorksAtHeight,
		HazardousMaterials:   p.HazardousMaterials,

		Nationality:      p.Nationality,
		ResidenceCountry: p.ResidenceCountry,
		MembershipType:   p.MembershipType,
	}
}

func (l *loanSpec) toModel() (*models.Loan, error) {
	amount, err := decimal.NewFromString(l.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid loan amount '%s': %w", l.Amount, err)
	}
	rate, err := decimal.NewFromString(l.AnnualRate)
	if err != nil {
		return nil, fmt.Errorf("invalid loan rate '%s': %w", l.AnnualRate, err)
	}
	return &models.Loan{
		Amount:           amount,
		AnnualRate:       rate,
		TermMonths:       l.TermMonths,
		LoanType:         l.LoanType,
		RateType:         l.RateType,
		DefermentMonths:  l.DefermentMonths,
		DisbursementDate: l.DisbursementDate,
		FinancingPurpose: l.FinancingPurpose,
		MembershipType:   l.MembershipType,
		Category:         l.Category,
		BillingFrequency: l.BillingFrequency,
	}, nil
}
