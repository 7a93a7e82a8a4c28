package cli

import (
	"fmt"
	"time"

	"github.com/vaibhavharit14/BudgetBox/internal/client/analytics"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Derived analytics: burn rate, savings, projections, warnings",
	Args:  cobra.NoArgs,
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	draft := app.Store.State().Draft
	if !analytics.HasData(draft) {
		fmt.Println("Enter your budget data to see analytics and insights (budgetbox set income 50000)")
		return nil
	}

	metrics := analytics.Compute(draft, time.Now())
	warnings := analytics.Warnings(draft)

	fmt.Print(renderDashboard(draft, metrics, warnings))
	return nil
}
