// Package wire defines the XML structures of the inner tariff documents:
// the request document embedded in the outgoing envelope and the
// simulation document extracted from the response. Field names follow the
// remote service's French legacy schema.
package wire

import "encoding/xml"

// TarificationRequest is the root of the inner request document.
type TarificationRequest struct {
	XMLName       xml.Name `xml:"tarification"`
	Licence       string   `xml:"licence"`
	CodeCourtier  string   `xml:"code_courtier"`
	TypeOperation string   `xml:"type_operation"`
	// IDTarif requests pricing of one existing simulation/product; when
	// empty the element is omitted and the remote opens a fresh simulation.
	IDTarif    string            `xml:"id_tarif,omitempty"`
	Simulation SimulationRequest `xml:"simulation"`
}

// SimulationRequest describes the insured persons, the loan and the
// guarantee selection. The three commission fields are independent
// optional elements: a nil pointer emits nothing.
type SimulationRequest struct {
	DateEffet          string                `xml:"date_effet"`
	FracAssurance      string                `xml:"frac_assurance"`
	TypeCredit         string                `xml:"type_credit"`
	IDObjetFinancement string                `xml:"id_objetdufinancement"`
	Assures            []AssureRequest       `xml:"assure"`
	Pret               PretRequest           `xml:"pret"`
	Garanties          []GarantiePretRequest `xml:"garantie_pret"`

	FraisAdhesionApporteur *int64  `xml:"frais_adhesion_apporteur,omitempty"`
	CodeTauxCommission     *string `xml:"code_taux_commission,omitempty"`
	TypeCommission         *string `xml:"type_commission,omitempty"`
}

// AssureRequest is one insured person block. Ordre 1 is the principal,
// ordre 2 the co-insured.
type AssureRequest struct {
	Ordre         int    `xml:"ordre"`
	Civilite      string `xml:"civilite"`
	Nom           string `xml:"nom"`
	Prenom        string `xml:"prenom"`
	NomNaissance  string `xml:"nom_naissance,omitempty"`
	DateNaissance string `xml:"date_naissance"`
	LieuNaissance string `xml:"lieu_naissance,omitempty"`

	Adresse    string `xml:"adresse,omitempty"`
	CodePostal string `xml:"code_postal,omitempty"`
	Ville      string `xml:"ville,omitempty"`
	Telephone  string `xml:"telephone,omitempty"`
	Email      string `xml:"email,omitempty"`

	Fumeur            string `xml:"fumeur"` // O / N
	CSP               string `xml:"csp"`
	DeplacementPro    string `xml:"deplacement_pro,omitempty"`
	TravailManuel     string `xml:"travail_manuel,omitempty"`
	TravailHauteur    string `xml:"travail_hauteur"`
	ProduitsDangereux string `xml:"produits_dangereux"`

	Nationalite   string `xml:"nationalite,omitempty"`
	PaysResidence string `xml:"pays_residence,omitempty"`
	TypeAdhesion  string `xml:"type_adhesion"`
}

// PretRequest is the loan block. Capital is in cents and Taux in
// basis-point-like integer form (percentage times 100).
type PretRequest struct {
	Capital       int64  `xml:"capital"`
	Taux          int64  `xml:"taux"`
	Duree         int    `xml:"duree"`
	TypePret      string `xml:"type_pret"`
	TypeTaux      string `xml:"type_taux"`
	Differe       int    `xml:"differe"`
	DateDeblocage string `xml:"date_deblocage,omitempty"`
	CategoriePret string `xml:"categorie_pret"`
	TypeAdhesion  string `xml:"type_adhesion"`
}

// GarantiePretRequest assigns a guarantee plan and a coverage quota to one
// insured person.
type GarantiePretRequest struct {
	IDAssure int    `xml:"id_assure"`
	Formule  string `xml:"formule"`
	Quotite  int    `xml:"quotite"`
}
