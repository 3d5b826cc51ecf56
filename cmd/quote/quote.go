// Package quote implements the command that prices one tariff request
// described in a YAML file.
package quote

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"emprunteo/tarificateur/cmd/root"
	"emprunteo/tarificateur/internal/config"
	"emprunteo/tarificateur/internal/export"
	"emprunteo/tarificateur/pkg/tarifclient"

	"github.com/spf13/cobra"
)

var (
	requestFile string
	persist     bool
	format      string
	outputFile  string
)

// Cmd is the quote command
var Cmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a tariff request described in a YAML file",
	Long: `Reads a borrower/loan/guarantee profile from a YAML file, calls the
pricing service and prints one quote per offered product. With --persist
the simulation is recorded on the remote service's tracking views.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&requestFile, "request", "r", "", "YAML tariff request file")
	Cmd.Flags().BoolVar(&persist, "persist", false, "Use the endpoint that persists the simulation remotely")
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, json or csv (default from config)")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (csv format)")
	_ = Cmd.MarkFlagRequired("request")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}

	req, err := LoadRequestFile(requestFile)
	if err != nil {
		return err
	}

	client := tarifclient.New(tarifclient.Config{
		SimulationURL: cfg.Tarif.SimulationURL,
		PersistentURL: cfg.Tarif.PersistentURL,
		Licence:       cfg.Tarif.Licence,
		BrokerCode:    cfg.Tarif.BrokerCode,
		Timeout:       cfg.Timeout(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	quotes, err := client.Quote(ctx, req, tarifclient.Options{Persist: persist})
	if err != nil {
		return err
	}

	outFormat := format
	if outFormat == "" {
		outFormat = cfg.Output.Format
	}
	switch outFormat {
	case "json":
		data, err := export.QuotesJSON(quotes)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "csv":
		if outputFile == "" {
			return fmt.Errorf("csv format requires --output")
		}
		return export.WriteQuotesToCSV(quotes, outputFile)
	default:
		printTable(quotes)
	}
	return nil
}

func printTable(quotes []tarifclient.TariffQuote) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tINSURER\tNAME\tMONTHLY\tTOTAL\tLEMOINE\tERRORS")
	for _, q := range quotes {
		lemoine := "non"
		if q.LemoineCompatible {
			lemoine = "oui"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			q.ProductID, q.Insurer, q.ProductName,
			q.MonthlyCost.StringFixed(2), q.TotalCost.StringFixed(2),
			lemoine, len(q.Errors))
	}
	if err := w.Flush(); err != nil {
		root.Log.WithError(err).Warn("Failed to flush output")
	}
}
