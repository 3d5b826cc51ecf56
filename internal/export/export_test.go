package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"emprunteo/tarificateur/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuotes() []models.TariffQuote {
	return []models.TariffQuote{{
		SimulationID:      "S-1",
		ProductID:         "42",
		Insurer:           "Insurer X",
		ProductName:       "Produit A",
		ProductType:       "Groupe",
		MonthlyCost:       decimal.RequireFromString("35"),
		TotalCost:         decimal.RequireFromString("8400"),
		LemoineCompatible: true,
		Guarantees: []models.GuaranteeCost{
			{Name: "DECES", MonthlyCost: decimal.RequireFromString("15")},
			{Name: "PTIA", MonthlyCost: decimal.RequireFromString("20")},
		},
		Errors: []string{"Info tarif"},
	}}
}

func TestToRows(t *testing.T) {
	rows := ToRows(sampleQuotes())
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "42", row.ProductID)
	assert.Equal(t, "35.00", row.MonthlyCost)
	assert.Equal(t, "8400.00", row.TotalCost)
	assert.Equal(t, "0.00", row.AdhesionFee)
	assert.Equal(t, "DECES / PTIA", row.Guarantees)
	assert.Equal(t, "Info tarif", row.Errors)
	assert.True(t, row.LemoineCompatible)
}

func TestWriteQuotesToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.csv")

	err := WriteQuotesToCSV(sampleQuotes(), path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "monthly_cost")
	assert.Contains(t, lines[1], "35.00")
	assert.Contains(t, lines[1], "DECES / PTIA")
}

func TestWriteQuotesToCSVBadPath(t *testing.T) {
	err := WriteQuotesToCSV(sampleQuotes(), filepath.Join(t.TempDir(), "missing", "quotes.csv"))
	assert.Error(t, err)
}

func TestQuotesJSON(t *testing.T) {
	data, err := QuotesJSON(sampleQuotes())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"product_id": "42"`)
	assert.Contains(t, out, `"monthly_cost": "35.00"`)
}
