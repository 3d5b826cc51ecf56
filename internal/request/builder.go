// Package request builds the wire-format tariff request: the inner French
// legacy XML document and the SOAP envelope that carries it.
package request

import (
	"encoding/xml"
	"fmt"
	"math"
	"time"

	"emprunteo/tarificateur/internal/amountutils"
	"emprunteo/tarificateur/internal/clienterror"
	"emprunteo/tarificateur/internal/codes"
	"emprunteo/tarificateur/internal/dateutils"
	"emprunteo/tarificateur/internal/models"
	"emprunteo/tarificateur/internal/wire"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Operation identifiers of the remote tariff service.
const (
	TypeOperation = "TARIFICATION"
	SoapNamespace = "urn:tarification"
	SoapOperation = "tariferSimulation"
)

const envelopeTemplate = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/" xmlns:tar="%s">
  <soap:Header/>
  <soap:Body>
    <tar:%s>
      <xmlSimulation><![CDATA[%s]]></xmlSimulation>
    </tar:%s>
  </soap:Body>
</soap:Envelope>`

// Builder turns a domain TariffRequest into the wire documents. Licence
// and BrokerCode identify the calling broker on every request; they come
// from configuration, never from this package.
type Builder struct {
	Licence    string
	BrokerCode string
}

// NewBuilder creates a request builder for the given broker credentials.
func NewBuilder(licence, brokerCode string) *Builder {
	return &Builder{Licence: licence, BrokerCode: brokerCode}
}

// BuiltRequest holds the inner document and the envelope embedding it
// verbatim inside a CDATA section.
type BuiltRequest struct {
	InnerXML string
	Envelope string
}

// Build produces the wire request. Malformed optional input never fails:
// every defaultable code falls back to the documented default. Only a
// structurally missing principal, loan or guarantee selection is an error.
func (b *Builder) Build(req *models.TariffRequest) (*BuiltRequest, error) {
	if req == nil {
		return nil, &clienterror.ValidationError{Field: "request", Reason: "no tariff request supplied"}
	}
	if req.Principal == nil {
		return nil, &clienterror.ValidationError{Field: "principal", Reason: "principal insured person is required"}
	}
	if req.Loan == nil {
		return nil, &clienterror.ValidationError{Field: "loan", Reason: "loan is required"}
	}
	if req.Guarantee == nil {
		return nil, &clienterror.ValidationError{Field: "guarantee", Reason: "guarantee selection is required"}
	}

	doc := wire.TarificationRequest{
		Licence:       b.Licence,
		CodeCourtier:  b.BrokerCode,
		TypeOperation: TypeOperation,
		IDTarif:       req.SimulationID,
		Simulation:    b.buildSimulation(req),
	}

	inner, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tariff request: %w", err)
	}
	innerXML := xml.Header + string(inner)

	log.WithFields(logrus.Fields{
		"insured":    len(doc.Simulation.Assures),
		"term":       doc.Simulation.Pret.Duree,
		"simulation": req.SimulationID,
	}).Debug("Built tariff request document")

	return &BuiltRequest{
		InnerXML: innerXML,
		Envelope: fmt.Sprintf(envelopeTemplate, SoapNamespace, SoapOperation, innerXML, SoapOperation),
	}, nil
}

func (b *Builder) buildSimulation(req *models.TariffRequest) wire.SimulationRequest {
	loan := req.Loan
	sim := wire.SimulationRequest{
		DateEffet:          effectDate(loan.DisbursementDate),
		FracAssurance:      codes.OrDefault(loan.BillingFrequency, codes.DefaultBillingFrequency),
		TypeCredit:         codes.OrDefault(loan.LoanType, codes.DefaultLoanType),
		IDObjetFinancement: codes.OrDefault(loan.FinancingPurpose, codes.DefaultFinancingPurpose),
		Pret:               buildPret(loan),
	}

	sim.Assures = append(sim.Assures, buildAssure(req.Principal, 1))
	if req.CoInsured != nil {
		sim.Assures = append(sim.Assures, buildAssure(req.CoInsured, 2))
	}

	// Quota is split evenly when a co-insured is present; the principal
	// keeps the full quota when alone.
	quota := req.Guarantee.QuotaPercent
	if req.CoInsured != nil {
		half := int(math.Round(float64(quota) / 2))
		sim.Garanties = []wire.GarantiePretRequest{
			{IDAssure: 1, Formule: req.Guarantee.PlanCode, Quotite: half},
			{IDAssure: 2, Formule: req.Guarantee.PlanCode, Quotite: half},
		}
	} else {
		sim.Garanties = []wire.GarantiePretRequest{
			{IDAssure: 1, Formule: req.Guarantee.PlanCode, Quotite: quota},
		}
	}

	// Commission elements are emitted independently, each only when its
	// field is set. An absent options object emits none of them.
	if req.Commission != nil {
		sim.FraisAdhesionApporteur = req.Commission.AdhesionFeeCents
		sim.CodeTauxCommission = req.Commission.TierCode
		sim.TypeCommission = req.Commission.TypeCode
	}

	return sim
}

func buildPret(loan *models.Loan) wire.PretRequest {
	return wire.PretRequest{
		Capital:       amountutils.ToCents(loan.Amount),
		Taux:          amountutils.ToBasisPoints(loan.AnnualRate),
		Duree:         loan.TermMonths,
		TypePret:      codes.OrDefault(loan.LoanType, codes.DefaultLoanType),
		TypeTaux:      codes.OrDefault(loan.RateType, codes.DefaultRateType),
		Differe:       loan.DefermentMonths,
		DateDeblocage: dateutils.ToWireDate(loan.DisbursementDate),
		CategoriePret: codes.OrDefault(loan.Category, codes.DefaultLoanCategory),
		TypeAdhesion:  codes.OrDefault(loan.MembershipType, codes.DefaultMembershipType),
	}
}

func buildAssure(p *models.InsuredPerson, ordre int) wire.AssureRequest {
	return wire.AssureRequest{
		Ordre:         ordre,
		Civilite:      p.Civility,
		Nom:           p.LastName,
		Prenom:        p.FirstName,
		NomNaissance:  p.BirthName,
		DateNaissance: dateutils.ToWireDate(p.BirthDate),
		LieuNaissance: p.BirthPlace,

		Adresse:    p.Street,
		CodePostal: p.PostalCode,
		Ville:      p.City,
		Telephone:  p.Phone,
		Email:      p.Email,

		Fumeur:            wireFlag(p.Smoker),
		CSP:               codes.OrDefault(p.ProfessionalCategory, codes.DefaultProfessionalCategory),
		DeplacementPro:    p.BusinessTravelTier,
		TravailManuel:     p.ManualLaborTier,
		TravailHauteur:    wireFlag(p.WorksAtHeight),
		ProduitsDangereux: wireFlag(p.HazardousMaterials),

		Nationalite:   p.Nationality,
		PaysResidence: p.ResidenceCountry,
		TypeAdhesion:  codes.OrDefault(p.MembershipType, codes.DefaultMembershipType),
	}
}

// effectDate normalizes the disbursement date to the wire form, falling
// back to today when the loan carries no usable date.
func effectDate(dateStr string) string {
	if d := dateutils.ToWireDate(dateStr); d != "" {
		return d
	}
	return dateutils.FormatWireDate(time.Now())
}

func wireFlag(v bool) string {
	if v {
		return "O"
	}
	return "N"
}
