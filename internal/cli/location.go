package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/location"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newLocationCmd(s *state) *cobra.Command {
	locationCmd := &cobra.Command{
		Use:   "location",
		Short: "Manage client locations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locations, err := s.app.Locations.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list locations: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(locations) == 0 {
				fmt.Fprintln(out, "No locations found.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFACILITY\tCONTACT\tRATE")
			for _, l := range locations {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\n", l.ID, l.FacilityName, l.ContactName, l.PayRate.StringFixed(2), l.PayRateType)
			}
			return w.Flush()
		},
	}

	var (
		req  location.CreateLocationRequest
		rate string
	)
	addCmd := &cobra.Command{
		Use:   "add [facility name]",
		Short: "Create a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.FacilityName = args[0]
			payRate, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("invalid rate %q: %w", rate, err)
			}
			req.PayRate = payRate

			created, err := s.app.Locations.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Location '%s' created with ID %s.\n", created.FacilityName, created.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&req.ContactName, "contact", "", "contact person")
	addCmd.Flags().StringVar(&req.ContactEmail, "email", "", "contact email")
	addCmd.Flags().StringVar(&req.ContactPhone, "phone", "", "contact phone")
	addCmd.Flags().StringVar(&req.Address, "address", "", "street address")
	addCmd.Flags().StringVar(&req.City, "city", "", "city")
	addCmd.Flags().StringVar(&req.State, "state", "", "state")
	addCmd.Flags().StringVar(&req.Zip, "zip", "", "zip code")
	addCmd.Flags().StringVar(&rate, "rate", "0", "pay rate")
	addCmd.Flags().StringVar(&req.PayRateType, "rate-type", string(location.PayRateTypePerHour), "'Per Hour' or 'Per Day'")

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a location and all of its time entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.app.Locations.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Location %s deleted.\n", args[0])
			return nil
		},
	}

	locationCmd.AddCommand(listCmd, addCmd, deleteCmd)
	return locationCmd
}
