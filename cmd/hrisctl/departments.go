package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newDepartmentsCmd(app func() *console) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"dept"},
		Short:   "List and manage departments",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the department table with stat cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := app().departments.Board(cmd.Context())
			if err != nil {
				banner(cmd.ErrOrStderr(), app().store)
				return err
			}

			out := cmd.OutOrStdout()
			s := board.Stats
			fmt.Fprintf(out, "Departments %d | Employees %d | Avg size %d | Avg salary %s\n\n",
				s.TotalDepartments, s.TotalEmployees, s.AverageDepartmentSize, money(s.AverageSalary))

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tMANAGER\tBUDGET\tEMPLOYEES\tDESCRIPTION")
			for _, d := range board.Departments {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
					d.ID, d.Name, d.Manager, money(d.Budget.Float64()), d.EmployeeCount, d.Description)
			}
			return tw.Flush()
		},
	}

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a department; its employees keep the department name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed := yes || confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Are you sure you want to delete this department?")
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}

			if err := app().departments.Delete(cmd.Context(), args[0], true); err != nil {
				banner(cmd.ErrOrStderr(), app().store)
				return err
			}
			banner(cmd.OutOrStdout(), app().store)
			return nil
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	cmd.AddCommand(listCmd, deleteCmd)
	return cmd
}
