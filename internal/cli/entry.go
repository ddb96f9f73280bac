package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/timeentry"
	"github.com/spf13/cobra"
)

func newEntryCmd(s *state) *cobra.Command {
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage time entries",
		Long:  `Record shifts, lock and archive them, and clean up unlocked entries.`,
	}

	var addReq timeentry.CreateTimeEntryRequest
	addCmd := &cobra.Command{
		Use:   "add [location id] [date] [arrival] [departure]",
		Short: "Record a shift",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			addReq.LocationID = args[0]
			addReq.Date = args[1]
			addReq.Arrival = args[2]
			addReq.Departure = args[3]

			e, err := s.app.Entries.Create(cmd.Context(), addReq)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Time entry %s created: %.2f hours, $%s.\n", e.ID, e.Hours, e.DailyPay.StringFixed(2))
			return nil
		},
	}
	addCmd.Flags().StringVar(&addReq.Notes, "notes", "", "free-form notes shown on the invoice")

	var listReq timeentry.ListTimeEntryRequest
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List time entries in date order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := s.app.Entries.List(cmd.Context(), listReq)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No time entries found.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tLOCATION\tARRIVAL\tDEPARTURE\tHOURS\tPAY\tSTATE")
			for _, e := range entries {
				name := e.LocationID
				if e.LocationName != nil {
					name = *e.LocationName
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f\t%s\t%s\n",
					e.ID, e.Date, name, e.Arrival, e.Departure, e.Hours, e.DailyPay.StringFixed(2), e.State)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().StringVar(&listReq.LocationID, "location", "", "only entries of this location")
	listCmd.Flags().StringVar(&listReq.From, "from", "", "first date, MM/DD/YYYY or YYYY-MM-DD")
	listCmd.Flags().StringVar(&listReq.To, "to", "", "last date, MM/DD/YYYY or YYYY-MM-DD")

	statusCmd := &cobra.Command{
		Use:   "status [id]",
		Short: "Show the lock and archive state of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := s.app.Lifecycle.Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printStatus(cmd, st)
			return nil
		},
	}

	lockCmd := &cobra.Command{
		Use:   "lock [id]",
		Short: "Toggle the lock of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := s.app.Lifecycle.ToggleLock(ctx, args[0]); err != nil {
				return err
			}
			st, err := s.app.Lifecycle.Status(ctx, args[0])
			if err != nil {
				return err
			}
			printStatus(cmd, st)
			return nil
		},
	}

	archiveCmd := &cobra.Command{
		Use:   "archive [id]",
		Short: "Toggle the archive marker of a locked entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := s.app.Lifecycle.ToggleArchive(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("%s", result.Message)
			}
			if result.Archived {
				fmt.Fprintf(cmd.OutOrStdout(), "Entry %s archived.\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Entry %s unarchived.\n", args[0])
			}
			return nil
		},
	}

	cleanupCmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete every time entry that is not locked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := s.app.Lifecycle.DeleteUnlockedEntries(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d unlocked time entries.\n", n)
			return nil
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show entry counts and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := s.app.Lifecycle.Stats(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Locked:\t%d\n", st.Locked)
			fmt.Fprintf(w, "Archived:\t%d\n", st.Archived)
			fmt.Fprintf(w, "Unlocked:\t%d\n", st.Unlocked)
			fmt.Fprintf(w, "Hours:\t%.2f\n", st.TotalHours)
			fmt.Fprintf(w, "Pay:\t$%s\n", st.TotalPay.StringFixed(2))
			return w.Flush()
		},
	}

	entryCmd.AddCommand(addCmd, listCmd, statusCmd, lockCmd, archiveCmd, cleanupCmd, statsCmd)
	return entryCmd
}

func printStatus(cmd *cobra.Command, st timeentry.StatusResponse) {
	fmt.Fprintf(cmd.OutOrStdout(), "Entry %s is %s (locked=%t, archived=%t).\n", st.ID, st.State, st.Locked, st.Archived)
}
