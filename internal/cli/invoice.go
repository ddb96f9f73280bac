package cli

import (
	"fmt"
	"os"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/invoice"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/render"
	"github.com/spf13/cobra"
)

func newInvoiceCmd(s *state) *cobra.Command {
	var req invoice.BuildInvoiceRequest

	invoiceCmd := &cobra.Command{
		Use:   "invoice",
		Short: "Build invoices for a location and period",
	}
	invoiceCmd.PersistentFlags().StringVar(&req.LocationID, "location", "", "location id")
	invoiceCmd.PersistentFlags().StringVar(&req.Start, "start", "", "first date, MM/DD/YYYY or YYYY-MM-DD")
	invoiceCmd.PersistentFlags().StringVar(&req.End, "end", "", "last date, MM/DD/YYYY or YYYY-MM-DD")

	build := func(cmd *cobra.Command) (invoice.Invoice, error) {
		inv, ok, err := s.app.Invoices.Build(cmd.Context(), req)
		if err != nil {
			return invoice.Invoice{}, err
		}
		if !ok {
			return invoice.Invoice{}, fmt.Errorf("no time entries found for this location in the selected date range")
		}
		return inv, nil
	}

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Print a plain-text invoice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := build(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Text(inv))
			return nil
		},
	}

	var outPath string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the invoice as an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := build(cmd)
			if err != nil {
				return err
			}

			path := outPath
			if path == "" {
				path = render.FileName(inv)
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			if err := render.WriteXLSX(f, inv); err != nil {
				f.Close()
				return fmt.Errorf("write invoice: %w", err)
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Invoice written to %s (%d items, total $%s).\n", path, len(inv.Items), inv.Total.StringFixed(2))
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default Invoice_<facility>_<start>_to_<end>.xlsx)")

	invoiceCmd.AddCommand(previewCmd, exportCmd)
	return invoiceCmd
}
