// Package tariff converts the parsed simulation document into normalized
// quotes. The first insured person's product list is authoritative: one
// quote is emitted per tarif id found there, joining every other insured
// person's matching entry by id.
package tariff

import (
	"emprunteo/tarificateur/internal/amountutils"
	"emprunteo/tarificateur/internal/clienterror"
	"emprunteo/tarificateur/internal/models"
	"emprunteo/tarificateur/internal/wire"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Normalize produces one quote per product offered to the principal
// insured. A structurally valid simulation that prices zero products is an
// EmptyResultError, not an empty list: it almost always means the profile
// is unpriceable and the caller should say so.
func Normalize(sim *wire.Simulation) ([]models.TariffQuote, error) {
	if sim == nil || len(sim.Assures) == 0 {
		return nil, &clienterror.EmptyResultError{}
	}

	principal := sim.Assures[0]
	quotes := make([]models.TariffQuote, 0, len(principal.Tarifs))
	for _, lead := range principal.Tarifs {
		if lead.IDTarif == "" {
			continue
		}
		quotes = append(quotes, buildQuote(sim, lead))
	}

	if len(quotes) == 0 {
		log.WithField("simulation", sim.IDSimulation).Warn("Simulation priced zero products")
		return nil, &clienterror.EmptyResultError{SimulationID: sim.IDSimulation}
	}

	log.WithFields(logrus.Fields{
		"simulation": sim.IDSimulation,
		"products":   len(quotes),
	}).Info("Normalized tariff quotes")
	return quotes, nil
}

// buildQuote aggregates one product across every insured person. Costs and
// fees are summed across persons; per-guarantee monthly costs only over
// each person's first billing period.
func buildQuote(sim *wire.Simulation, lead wire.Tarif) models.TariffQuote {
	quote := models.TariffQuote{
		SimulationID:      sim.IDSimulation,
		ProductID:         lead.IDTarif,
		Insurer:           lead.Compagnie,
		ProductName:       lead.Nom,
		ProductType:       lead.TypeTarif,
		LemoineCompatible: lead.CompatibleLemoine == "O",
	}

	quote.BrokerAdhesionFee = parseCents(lead.FraisAdhesionApporteur, "frais_adhesion_apporteur")
	quote.FractionationFee = parseCents(lead.FraisFrac, "frais_frac")
	if lead.TauxCapitalAssure != "" {
		if rate, err := amountutils.ParseRate(lead.TauxCapitalAssure); err == nil {
			quote.CapitalAssuredRate = &rate
		} else {
			log.WithError(err).Warn("Ignoring unparseable capital-assured rate")
		}
	}

	agg := newGuaranteeAggregator()
	for _, assure := range sim.Assures {
		tarif, ok := findTarif(assure, lead.IDTarif)
		if !ok {
			continue
		}

		quote.TotalCost = quote.TotalCost.Add(parseCents(tarif.CoutTotal, "cout_total"))
		quote.AdhesionFee = quote.AdhesionFee.Add(parseCents(tarif.FraisAdhesion, "frais_adhesion"))

		// Only the earliest billing period counts toward the monthly
		// cost; later periods repeat the guarantee list under step-up
		// pricing and would double-count.
		if period, ok := firstPeriod(tarif.Pret.Periodes); ok {
			for _, g := range period.Garanties {
				agg.addPeriodLine(g)
			}
		}
		for _, total := range tarif.CoutsTotauxGarantie {
			agg.addLifetimeTotal(total)
		}
		for _, e := range tarif.ListeErreurs.Erreurs {
			if e.Libelle != "" {
				quote.Errors = append(quote.Errors, e.Libelle)
			}
		}
	}

	quote.Guarantees = agg.ordered()
	for _, g := range quote.Guarantees {
		quote.MonthlyCost = quote.MonthlyCost.Add(g.MonthlyCost)
	}
	return quote
}

func findTarif(assure wire.Assure, id string) (wire.Tarif, bool) {
	for _, t := range assure.Tarifs {
		if t.IDTarif == id {
			return t, true
		}
	}
	return wire.Tarif{}, false
}

// firstPeriod selects the lexically smallest period label. Period labels
// are opaque; lexical order is the remote's documented behavior, kept
// as-is for compatibility even though it is not calendar-aware.
func firstPeriod(periods []wire.GarantiePretResult) (wire.GarantiePretResult, bool) {
	if len(periods) == 0 {
		return wire.GarantiePretResult{}, false
	}
	first := periods[0]
	for _, p := range periods[1:] {
		if p.Periode < first.Periode {
			first = p
		}
	}
	return first, true
}

// guaranteeAggregator merges period cost lines and lifetime totals into
// one GuaranteeCost per name, preserving first-seen order.
type guaranteeAggregator struct {
	order []string
	byKey map[string]*models.GuaranteeCost
}

func newGuaranteeAggregator() *guaranteeAggregator {
	return &guaranteeAggregator{byKey: make(map[string]*models.GuaranteeCost)}
}

func (a *guaranteeAggregator) get(name string) *models.GuaranteeCost {
	if g, ok := a.byKey[name]; ok {
		return g
	}
	g := &models.GuaranteeCost{Name: name}
	a.byKey[name] = g
	a.order = append(a.order, name)
	return g
}

func (a *guaranteeAggregator) addPeriodLine(line wire.GarantieResult) {
	g := a.get(line.Nom)
	g.MonthlyCost = g.MonthlyCost.Add(parseCents(line.Cout, "cout"))
	if capital := parseCents(line.CapitalRestant, "capital_restant"); !capital.IsZero() {
		g.OutstandingCapital = capital
	}
	switch line.AssujettiTaxe {
	case "O":
		g.TaxApplicable = boolPtr(true)
	case "N":
		g.TaxApplicable = boolPtr(false)
	}
	if line.AppreciationRisque != "" {
		g.RiskAppreciation = line.AppreciationRisque
	}
}

func (a *guaranteeAggregator) addLifetimeTotal(total wire.CoutTotalGarantie) {
	g := a.get(total.Nom)
	g.TotalCost = g.TotalCost.Add(parseCents(total.CoutTotal, "cout_total"))
}

func (a *guaranteeAggregator) ordered() []models.GuaranteeCost {
	out := make([]models.GuaranteeCost, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, *a.byKey[name])
	}
	return out
}

// parseCents converts a wire cents field, logging and zeroing unparseable
// values instead of dropping the whole product.
func parseCents(raw, field string) decimal.Decimal {
	amount, err := amountutils.ParseCents(raw)
	if err != nil {
		log.WithError(err).WithField("field", field).Warn("Ignoring unparseable wire amount")
		return decimal.Zero
	}
	return amount
}

func boolPtr(v bool) *bool {
	return &v
}
