// Command hrisctl is the terminal console: the same reports and mutations as
// the web console, run directly against the Data Store.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/config"
	"github.com/cmlabs-hris/hris-console/internal/domain/department"
	"github.com/cmlabs-hris/hris-console/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console/internal/domain/report"
	"github.com/cmlabs-hris/hris-console/internal/pkg/datastore"
	"github.com/cmlabs-hris/hris-console/internal/repository/rest"
	departmentService "github.com/cmlabs-hris/hris-console/internal/service/department"
	employeeService "github.com/cmlabs-hris/hris-console/internal/service/employee"
	reportService "github.com/cmlabs-hris/hris-console/internal/service/report"
	"github.com/cmlabs-hris/hris-console/internal/store"
	"github.com/spf13/cobra"
)

// console bundles what every subcommand needs.
type console struct {
	store       *store.Store
	employees   employee.EmployeeService
	departments department.DepartmentService
	reports     report.ReportService
}

type rootOptions struct {
	datastoreURL string
	timeout      time.Duration
	orphans      string
	verbose      bool
}

func newConsole(opts rootOptions, logger *slog.Logger) *console {
	client := datastore.NewClient(opts.datastoreURL,
		datastore.WithTimeout(opts.timeout),
		datastore.WithLogger(logger),
	)
	employeeRepo := rest.NewEmployeeRepository(client)
	departmentRepo := rest.NewDepartmentRepository(client)

	st := store.New(employeeRepo, departmentRepo, store.WithLogger(logger))
	aggregator := reportService.NewAggregator(report.OrphanPolicy(opts.orphans))

	return &console{
		store:       st,
		employees:   employeeService.NewEmployeeService(st, employeeRepo, time.Now),
		departments: departmentService.NewDepartmentService(st, aggregator),
		reports:     reportService.NewReportService(st, aggregator, time.Now),
	}
}

// newRootCmd builds the command tree. Defaults come from the environment
// (and .env) the same way the servers read them.
func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := rootOptions{
		datastoreURL: cfg.DataStore.URL,
		timeout:      cfg.DataStore.Timeout,
		orphans:      string(cfg.Report.OrphanPolicy),
	}
	var app *console

	rootCmd := &cobra.Command{
		Use:   "hrisctl",
		Short: "HRIS admin console for the terminal",
		Long: `hrisctl reads employees and departments from the Data Store and prints
the same tables and reports as the web console.

Destructive commands ask for confirmation unless --yes is given.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			app = newConsole(opts, logger)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.datastoreURL, "datastore-url", opts.datastoreURL, "Data Store base URL (or set DATASTORE_URL)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", opts.timeout, "Request timeout, 0 for none")
	rootCmd.PersistentFlags().StringVar(&opts.orphans, "orphans", opts.orphans, "Employees of unknown departments: keep or drop")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	current := func() *console { return app }
	rootCmd.AddCommand(newReportCmd(current))
	rootCmd.AddCommand(newEmployeesCmd(current))
	rootCmd.AddCommand(newDepartmentsCmd(current))

	return rootCmd
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

// banner prints what the store would show at the top of the page.
func banner(w io.Writer, st *store.Store) {
	snap := st.Snapshot()
	if snap.Error != "" {
		fmt.Fprintln(w, snap.Error)
	}
	if snap.Message != "" {
		fmt.Fprintln(w, snap.Message)
	}
}
