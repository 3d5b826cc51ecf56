package request

import (
	"strconv"
	"strings"
	"testing"

	"emprunteo/tarificateur/internal/clienterror"
	"emprunteo/tarificateur/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/xmlpath.v2"
)

func testRequest() *models.TariffRequest {
	return &models.TariffRequest{
		Principal: &models.InsuredPerson{
			Civility:  "M",
			LastName:  "Martin",
			FirstName: "Paul",
			BirthDate: "1985-04-12",
		},
		Loan: &models.Loan{
			Amount:           decimal.RequireFromString("200000"),
			AnnualRate:       decimal.RequireFromString("1.20"),
			TermMonths:       240,
			DisbursementDate: "2026-09-01",
		},
		Guarantee: &models.GuaranteeSelection{PlanCode: "2", QuotaPercent: 100},
	}
}

// value extracts a single XPath value from a built inner document.
func value(t *testing.T, innerXML, path string) (string, bool) {
	t.Helper()
	root, err := xmlpath.Parse(strings.NewReader(innerXML))
	require.NoError(t, err)
	return xmlpath.MustCompile(path).String(root)
}

func TestBuildLoanFields(t *testing.T) {
	b := NewBuilder("LIC-1", "BRK-1")
	built, err := b.Build(testRequest())
	require.NoError(t, err)

	tests := []struct {
		path     string
		expected string
	}{
		{"//pret/capital", "20000000"},
		{"//pret/taux", "120"},
		{"//pret/duree", "240"},
		{"//pret/date_deblocage", "20260901"},
		{"/tarification/licence", "LIC-1"},
		{"/tarification/code_courtier", "BRK-1"},
		{"/tarification/type_operation", "TARIFICATION"},
	}
	for _, tc := range tests {
		got, ok := value(t, built.InnerXML, tc.path)
		require.True(t, ok, tc.path)
		assert.Equal(t, tc.expected, got, tc.path)
	}
}

func TestBuildAppliesDefaults(t *testing.T) {
	b := NewBuilder("LIC-1", "BRK-1")
	built, err := b.Build(testRequest())
	require.NoError(t, err)

	tests := []struct {
		path     string
		expected string
	}{
		{"//assure/csp", "10"},
		{"//assure/type_adhesion", "1"},
		{"//pret/type_pret", "1"},
		{"//pret/type_taux", "1"},
		{"//pret/categorie_pret", "IMMO"},
		{"//simulation/frac_assurance", "M"},
		{"//simulation/type_credit", "1"},
		{"//simulation/id_objetdufinancement", "1"},
	}
	for _, tc := range tests {
		got, ok := value(t, built.InnerXML, tc.path)
		require.True(t, ok, tc.path)
		assert.Equal(t, tc.expected, got, tc.path)
	}
}

func TestBuildKeepsSuppliedCodes(t *testing.T) {
	req := testRequest()
	req.Principal.ProfessionalCategory = "31"
	req.Loan.LoanType = "2"
	req.Loan.RateType = "3"

	b := NewBuilder("LIC-1", "BRK-1")
	built, err := b.Build(req)
	require.NoError(t, err)

	got, _ := value(t, built.InnerXML, "//assure/csp")
	assert.Equal(t, "31", got)
	got, _ = value(t, built.InnerXML, "//pret/type_pret")
	assert.Equal(t, "2", got)
	got, _ = value(t, built.InnerXML, "//pret/type_taux")
	assert.Equal(t, "3", got)
}

func TestBuildNormalizesDates(t *testing.T) {
	req := testRequest()
	req.Principal.BirthDate = "12/04/1985"

	b := NewBuilder("LIC-1", "BRK-1")
	built, err := b.Build(req)
	require.NoError(t, err)

	got, ok := value(t, built.InnerXML, "//assure/date_naissance")
	require.True(t, ok)
	assert.Equal(t, "12041985", got)
}

func TestQuotaSplit(t *testing.T) {
	tests := []struct {
		name  string
		quota int
	}{
		{"Even quota", 100},
		{"Odd quota", 75},
		{"Zero quota", 0},
		{"Full low", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := testRequest()
			req.Guarantee.QuotaPercent = tc.quota
			req.CoInsured = &models.InsuredPerson{Civility: "MME", LastName: "Martin", FirstName: "Anne", BirthDate: "19870101"}

			b := NewBuilder("LIC-1", "BRK-1")
			built, err := b.Build(req)
			require.NoError(t, err)

			root, err := xmlpath.Parse(strings.NewReader(built.InnerXML))
			require.NoError(t, err)

			var quotas []int
			iter := xmlpath.MustCompile("//garantie_pret/quotite").Iter(root)
			for iter.Next() {
				q, err := strconv.Atoi(iter.Node().String())
				require.NoError(t, err)
				quotas = append(quotas, q)
			}
			require.Len(t, quotas, 2)

			sum := quotas[0] + quotas[1]
			assert.GreaterOrEqual(t, sum, tc.quota)
			assert.LessOrEqual(t, sum, tc.quota+1)
			assert.GreaterOrEqual(t, quotas[0], 0)
			assert.GreaterOrEqual(t, quotas[1], 0)
		})
	}
}

func TestPrincipalAloneKeepsFullQuota(t *testing.T) {
	b := NewBuilder("LIC-1", "BRK-1")
	built, err := b.Build(testRequest())
	require.NoError(t, err)

	got, ok := value(t, built.InnerXML, "//garantie_pret/quotite")
	require.True(t, ok)
	assert.Equal(t, "100", got)
}

func TestCommissionFieldIndependence(t *testing.T) {
	fee := int64(5000)
	tier := "C40"

	tests := []struct {
		name       string
		commission *models.CommissionOptions
		wantFee    bool
		wantTier   bool
		wantType   bool
	}{
		{"No options at all", nil, false, false, false},
		{"Fee only", &models.CommissionOptions{AdhesionFeeCents: &fee}, true, false, false},
		{"Tier only", &models.CommissionOptions{TierCode: &tier}, false, true, false},
		{"Fee and tier", &models.CommissionOptions{AdhesionFeeCents: &fee, TierCode: &tier}, true, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := testRequest()
			req.Commission = tc.commission

			b := NewBuilder("LIC-1", "BRK-1")
			built, err := b.Build(req)
			require.NoError(t, err)

			_, hasFee := value(t, built.InnerXML, "//simulation/frais_adhesion_apporteur")
			_, hasTier := value(t, built.InnerXML, "//simulation/code_taux_commission")
			_, hasType := value(t, built.InnerXML, "//simulation/type_commission")
			assert.Equal(t, tc.wantFee, hasFee)
			assert.Equal(t, tc.wantTier, hasTier)
			assert.Equal(t, tc.wantType, hasType)
		})
	}
}

func TestSimulationIDOmittedWhenAbsent(t *testing.T) {
	b := NewBuilder("LIC-1", "BRK-1")

	built, err := b.Build(testRequest())
	require.NoError(t, err)
	_, found := value(t, built.InnerXML, "/tarification/id_tarif")
	assert.False(t, found)

	req := testRequest()
	req.SimulationID = "SIM-7"
	built, err = b.Build(req)
	require.NoError(t, err)
	got, found := value(t, built.InnerXML, "/tarification/id_tarif")
	require.True(t, found)
	assert.Equal(t, "SIM-7", got)
}

func TestEnvelopeEmbedsInnerVerbatim(t *testing.T) {
	b := NewBuilder("LIC-1", "BRK-1")
	built, err := b.Build(testRequest())
	require.NoError(t, err)

	assert.Contains(t, built.Envelope, "<![CDATA[")
	assert.Contains(t, built.Envelope, built.InnerXML)
	assert.Contains(t, built.Envelope, "soap:Envelope")
	assert.Contains(t, built.Envelope, SoapOperation)
	// The inner document is embedded without re-escaping
	assert.NotContains(t, built.Envelope, "&lt;tarification&gt;")
}

func TestBuildValidation(t *testing.T) {
	b := NewBuilder("LIC-1", "BRK-1")

	tests := []struct {
		name   string
		mutate func(*models.TariffRequest) *models.TariffRequest
	}{
		{"Nil request", func(r *models.TariffRequest) *models.TariffRequest { return nil }},
		{"Missing principal", func(r *models.TariffRequest) *models.TariffRequest { r.Principal = nil; return r }},
		{"Missing loan", func(r *models.TariffRequest) *models.TariffRequest { r.Loan = nil; return r }},
		{"Missing guarantee", func(r *models.TariffRequest) *models.TariffRequest { r.Guarantee = nil; return r }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.Build(tc.mutate(testRequest()))
			require.Error(t, err)
			var verr *clienterror.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}
