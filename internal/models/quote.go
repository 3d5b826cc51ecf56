package models

import "github.com/shopspring/decimal"

// GuaranteeCost is one covered risk line inside a quote. A guarantee seen
// only as a per-period cost line and one seen only as a lifetime total
// still collapse into a single record keyed by name.
type GuaranteeCost struct {
	Name               string
	TaxApplicable      *bool  // nil when the remote omits the flag
	RiskAppreciation   string // qualitative appreciation, may be empty
	MonthlyCost        decimal.Decimal
	TotalCost          decimal.Decimal
	OutstandingCapital decimal.Decimal
}

// TariffQuote is one priceable product returned by the remote service,
// with all wire minor-unit fields already converted to major units.
// MonthlyCost is derived from the first billing period's guarantee lines
// and is approximate, not authoritative.
type TariffQuote struct {
	SimulationID string
	ProductID    string
	Insurer      string
	ProductName  string
	ProductType  string

	MonthlyCost       decimal.Decimal
	TotalCost         decimal.Decimal
	AdhesionFee       decimal.Decimal
	BrokerAdhesionFee decimal.Decimal
	FractionationFee  decimal.Decimal

	Guarantees []GuaranteeCost

	LemoineCompatible  bool
	Errors             []string         // product-level remote messages, quote still usable for display
	CapitalAssuredRate *decimal.Decimal // percentage, nil when not transmitted
}
