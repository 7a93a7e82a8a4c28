package cli

import (
	"fmt"

	syncflow "github.com/vaibhavharit14/BudgetBox/internal/client/sync"

	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Send the local draft to the server (whole-record overwrite)",
	Args:  cobra.NoArgs,
	RunE:  runPush,
}

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch the server's latest budget and overwrite the local draft",
	Args:  cobra.NoArgs,
	RunE:  runPull,
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check server reachability",
	Args:  cobra.NoArgs,
	RunE:  runPing,
}

func init() {
	rootCmd.AddCommand(pushCmd, pullCmd, pingCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	token, err := app.RequireToken()
	if err != nil {
		return err
	}

	flow := syncflow.New(app.API, app.Store)
	if _, err := flow.Push(ctx, token); err != nil {
		return app.handleSyncErr(ctx, err)
	}

	state := app.Store.State()
	fmt.Printf("Synced successfully at %s  [%s]\n",
		state.LastServerSyncAt.Format("15:04:05"), state.SyncStatus)
	return nil
}

func runPull(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	token, err := app.RequireToken()
	if err != nil {
		return err
	}

	flow := syncflow.New(app.API, app.Store)
	if _, err := flow.Pull(ctx, token); err != nil {
		return app.handleSyncErr(ctx, err)
	}

	fmt.Println("Latest budget fetched")
	fmt.Print(renderDraft(app.Store.State()))
	return nil
}

func runPing(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.API.Health(ctx); err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	fmt.Printf("%s is up\n", app.Config.Server.BaseURL)
	return nil
}
