package wire

import "encoding/xml"

// Simulation is the root of the inner response document. The document
// order of the assure elements is significant: the first one is the
// principal insured, whose tarif list is authoritative.
type Simulation struct {
	XMLName      xml.Name `xml:"simulation"`
	IDSimulation string   `xml:"id_simulation"`
	Assures      []Assure `xml:"assure"`
}

// Assure carries one insured person's per-product breakdown.
type Assure struct {
	Ordre  string  `xml:"ordre"`
	Tarifs []Tarif `xml:"tarif"`
}

// Tarif is one priced product for one insured person. All monetary fields
// are kept as raw wire strings (integer cents, possibly empty) and
// converted by the normalizer.
type Tarif struct {
	IDTarif   string `xml:"id_tarif"`
	Compagnie string `xml:"compagnie"`
	Nom       string `xml:"nom"`
	TypeTarif string `xml:"type_tarif"`

	CoutTotal              string `xml:"cout_total"`
	FraisAdhesion          string `xml:"frais_adhesion"`
	FraisAdhesionApporteur string `xml:"frais_adhesion_apporteur"`
	FraisFrac              string `xml:"frais_frac"`
	CompatibleLemoine      string `xml:"compatible_lemoine"`
	TauxCapitalAssure      string `xml:"taux_capital_assure_tarif"`

	Pret                PretResult          `xml:"pret"`
	CoutsTotauxGarantie []CoutTotalGarantie `xml:"cout_total_garantie"`
	ListeErreurs        ListeErreurs        `xml:"listeErreurs"`
}

// PretResult groups the per-period guarantee cost lines of a product. A
// product may repeat its guarantee list across several future billing
// periods (step-up pricing).
type PretResult struct {
	Periodes []GarantiePretResult `xml:"garantie_pret"`
}

// GarantiePretResult is the guarantee cost list of one billing period.
// Periode is an opaque label; period identity is compared on the raw
// string.
type GarantiePretResult struct {
	Periode   string           `xml:"periode"`
	Garanties []GarantieResult `xml:"garantie"`
}

// GarantieResult is one covered-risk cost line inside a period.
type GarantieResult struct {
	Nom                string `xml:"nom"`
	Cout               string `xml:"cout"` // monthly cost, cents
	CapitalRestant     string `xml:"capital_restant"`
	AssujettiTaxe      string `xml:"assujetti_taxe"` // O / N / absent
	AppreciationRisque string `xml:"appreciation_risque"`
}

// CoutTotalGarantie is a lifetime total keyed by guarantee name.
type CoutTotalGarantie struct {
	Nom       string `xml:"nom"`
	CoutTotal string `xml:"cout_total"` // cents
}

// ListeErreurs is the structured error list the remote attaches either to
// one tarif or, on full rejection, as the root of the inner document.
type ListeErreurs struct {
	Erreurs []Erreur `xml:"erreur"`
}

// Erreur is one remote error entry.
type Erreur struct {
	Code    string `xml:"code"`
	Libelle string `xml:"libelle"`
}
