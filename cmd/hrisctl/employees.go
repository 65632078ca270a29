package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newEmployeesCmd(app func() *console) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"emp"},
		Short:   "List and manage employees",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the employee table with stat cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := app().employees.Board(cmd.Context())
			if err != nil {
				banner(cmd.ErrOrStderr(), app().store)
				return err
			}

			out := cmd.OutOrStdout()
			s := board.Stats
			fmt.Fprintf(out, "Total %d | Active %d | On Leave %d | Departments %d | Avg salary %s | Avg days worked %d\n\n",
				s.TotalEmployees, s.ActiveEmployees, s.OnLeaveEmployees, s.Departments, money(s.AverageSalary), s.AverageDaysWorked)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tDEPARTMENT\tPOSITION\tSTATUS\tSALARY")
			for _, e := range board.Employees {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.Name, e.Email, e.Department, e.Position, e.Status, money(float64(e.Salary)))
			}
			return tw.Flush()
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle ID",
		Short: "Switch an employee between Active and On Leave",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app().employees.ToggleStatus(cmd.Context(), args[0])
			if err != nil {
				banner(cmd.ErrOrStderr(), app().store)
				return err
			}
			banner(cmd.OutOrStdout(), app().store)
			fmt.Fprintf(cmd.OutOrStdout(), "Status is now %s\n", status)
			return nil
		},
	}

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed := yes || confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Are you sure you want to delete this employee?")
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}

			if err := app().employees.Delete(cmd.Context(), args[0], true); err != nil {
				banner(cmd.ErrOrStderr(), app().store)
				return err
			}
			banner(cmd.OutOrStdout(), app().store)
			return nil
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	cmd.AddCommand(listCmd, toggleCmd, deleteCmd)
	return cmd
}
