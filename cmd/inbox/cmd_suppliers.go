package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
)

var suppliersCmd = &cobra.Command{
	Use:   "suppliers [query]",
	Short: "Browse the supplier directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSuppliers,
}

func init() {
	suppliersCmd.Flags().String("location", "", "Filter by location")
	suppliersCmd.Flags().String("specialty", "", "Filter by specialty")
	suppliersCmd.Flags().Bool("verified", false, "Only verified suppliers")
	suppliersCmd.Flags().Int("pages", 1, "Number of pages to load")
}

func runSuppliers(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	ctx, err := sessionContext(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	f := model.SupplierFilter{}
	if len(args) > 0 {
		f.Query = args[0]
	}
	f.Location, _ = cmd.Flags().GetString("location")
	f.Specialty, _ = cmd.Flags().GetString("specialty")
	if verified, _ := cmd.Flags().GetBool("verified"); verified {
		f.Verified = &verified
	}
	pages, _ := cmd.Flags().GetInt("pages")

	var directory pagination.Infinite[model.Supplier]
	more := true
	for i := 0; i < max(pages, 1) && more; i++ {
		if more, err = eng.suppliers.LoadMore(ctx, f, &directory); err != nil {
			return err
		}
	}

	printSuppliers(cmd.OutOrStdout(), directory.Items(), more)
	return nil
}

func printSuppliers(out io.Writer, suppliers []model.Supplier, more bool) {
	if len(suppliers) == 0 {
		fmt.Fprintln(out, "No suppliers found.")
		return
	}
	for _, s := range suppliers {
		mark := " "
		if s.IsVerified {
			mark = "✓"
		}
		fmt.Fprintf(out, "%s %-6d %-30s %-20s %s\n", mark, s.ID, s.CompanyName, s.Location, strings.Join(s.Specialties, ", "))
	}
	if more {
		fmt.Fprintln(out, "More results available; raise --pages to load them.")
	}
}
