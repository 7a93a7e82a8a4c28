package cli

import (
	"fmt"
	"strings"

	"github.com/vaibhavharit14/BudgetBox/internal/client/store"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Edit one budget field in the local draft",
	Long: "Edit one budget field in the local draft. Fields: " +
		strings.Join(store.FieldNames, ", ") + ".",
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the local draft and its sync status",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(setCmd, showCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	field, value := args[0], args[1]
	if err := app.Store.SetField(ctx, field, value); err != nil {
		return err
	}

	state := app.Store.State()
	fmt.Printf("%s = %q  [%s]\n", field, value, state.SyncStatus)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	fmt.Print(renderDraft(app.Store.State()))
	return nil
}
