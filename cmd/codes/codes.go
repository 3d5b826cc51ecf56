// Package codes implements the command that prints the domain code
// catalogs used to build tariff requests.
package codes

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"emprunteo/tarificateur/internal/codes"

	"github.com/spf13/cobra"
)

// Cmd is the codes command
var Cmd = &cobra.Command{
	Use:   "codes",
	Short: "Print the domain code catalogs",
	Long: `Prints every enumeration the tariff protocol uses (professional
categories, loan types, guarantee plans, ...) and the commission tiers
available per insurer.`,
	Run: run,
}

func run(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	printTable(w, "Professional categories", codes.ProfessionalCategories)
	printTable(w, "Loan types", codes.LoanTypes)
	printTable(w, "Rate types", codes.RateTypes)
	printTable(w, "Financing purposes", codes.FinancingPurposes)
	printTable(w, "Guarantee plans", codes.GuaranteePlans)
	printTable(w, "Membership types", codes.MembershipTypes)
	printTable(w, "Billing frequencies", codes.BillingFrequencies)

	fmt.Fprintln(w, "\nCommission tiers")
	for _, insurer := range []string{"AFI", "MNCAP", "MUTLOG"} {
		recommended := codes.RecommendedCommissionTier(insurer)
		for _, tier := range codes.CommissionTiers(insurer) {
			marker := ""
			if tier.Code == recommended {
				marker = "(default)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", insurer, tier.Code, tier.Label, marker)
		}
	}
	_ = w.Flush()
}

func printTable(w *tabwriter.Writer, title string, table map[string]string) {
	fmt.Fprintf(w, "\n%s\n", title)
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%s\n", k, table[k])
	}
}
