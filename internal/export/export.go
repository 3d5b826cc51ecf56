// Package export renders normalized quotes for the CLI: CSV files through
// gocsv and JSON through goccy/go-json.
package export

import (
	"fmt"
	"os"
	"strings"

	"emprunteo/tarificateur/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// QuoteRow is the flat CSV projection of one quote.
type QuoteRow struct {
	SimulationID      string `csv:"simulation_id" json:"simulation_id"`
	ProductID         string `csv:"product_id" json:"product_id"`
	Insurer           string `csv:"insurer" json:"insurer"`
	ProductName       string `csv:"product_name" json:"product_name"`
	ProductType       string `csv:"product_type" json:"product_type"`
	MonthlyCost       string `csv:"monthly_cost" json:"monthly_cost"`
	TotalCost         string `csv:"total_cost" json:"total_cost"`
	AdhesionFee       string `csv:"adhesion_fee" json:"adhesion_fee"`
	BrokerAdhesionFee string `csv:"broker_adhesion_fee" json:"broker_adhesion_fee"`
	FractionationFee  string `csv:"fractionation_fee" json:"fractionation_fee"`
	LemoineCompatible bool   `csv:"lemoine_compatible" json:"lemoine_compatible"`
	Guarantees        string `csv:"guarantees" json:"guarantees"`
	Errors            string `csv:"errors" json:"errors"`
}

// ToRows flattens quotes into CSV rows, two decimal places on every
// monetary column.
func ToRows(quotes []models.TariffQuote) []QuoteRow {
	rows := make([]QuoteRow, 0, len(quotes))
	for _, q := range quotes {
		names := make([]string, 0, len(q.Guarantees))
		for _, g := range q.Guarantees {
			names = append(names, g.Name)
		}
		rows = append(rows, QuoteRow{
			SimulationID:      q.SimulationID,
			ProductID:         q.ProductID,
			Insurer:           q.Insurer,
			ProductName:       q.ProductName,
			ProductType:       q.ProductType,
			MonthlyCost:       q.MonthlyCost.StringFixed(2),
			TotalCost:         q.TotalCost.StringFixed(2),
			AdhesionFee:       q.AdhesionFee.StringFixed(2),
			BrokerAdhesionFee: q.BrokerAdhesionFee.StringFixed(2),
			FractionationFee:  q.FractionationFee.StringFixed(2),
			LemoineCompatible: q.LemoineCompatible,
			Guarantees:        strings.Join(names, " / "),
			Errors:            strings.Join(q.Errors, " / "),
		})
	}
	return rows
}

// WriteQuotesToCSV writes quotes to a CSV file.
func WriteQuotesToCSV(quotes []models.TariffQuote, csvFile string) error {
	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(quotes),
	}).Info("Writing quotes to CSV file")

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := ToRows(quotes)
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		log.WithError(err).Error("Failed to write CSV file")
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

// QuotesJSON renders quotes as indented JSON.
func QuotesJSON(quotes []models.TariffQuote) ([]byte, error) {
	data, err := json.MarshalIndent(ToRows(quotes), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding quotes to JSON: %w", err)
	}
	return data, nil
}
