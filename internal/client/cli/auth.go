package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/vaibhavharit14/BudgetBox/internal/client/storage"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register [email]",
	Short: "Create a new account on the server",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in and activate your local draft partition",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session and reset the active draft",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in identity",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	reader := bufio.NewReader(os.Stdin)
	email, err := argOrPrompt(args, reader, "Email: ")
	if err != nil {
		return err
	}
	password, err := promptPassword(os.Stdout, "Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword(os.Stdout, "Confirm password: ")
	if err != nil {
		return err
	}

	user, err := app.API.Register(ctx, email, password, confirm)
	if err != nil {
		return err
	}

	fmt.Printf("Registered %s. Log in with: budgetbox login %s\n", user.Email, user.Email)
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	reader := bufio.NewReader(os.Stdin)
	email, err := argOrPrompt(args, reader, "Email: ")
	if err != nil {
		return err
	}
	password, err := promptPassword(os.Stdout, "Password: ")
	if err != nil {
		return err
	}

	token, user, err := app.API.Login(ctx, email, password)
	if err != nil {
		return err
	}

	sess := storage.Session{Token: token, Email: user.Email}
	if err := storage.SaveSession(ctx, app.Backend, sess); err != nil {
		return err
	}
	// activate this identity's own draft partition
	if err := app.Store.SwitchUser(ctx, user.Email); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", user.Email)
	if app.Store.State().Draft.IsEmpty() {
		fmt.Println("No local draft for this account yet. Pull the server copy with: budgetbox pull")
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := storage.ClearSession(ctx, app.Backend); err != nil {
		return err
	}
	if err := app.Store.SwitchUser(ctx, ""); err != nil {
		return err
	}

	fmt.Println("Logged out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if app.Session.Email == "" {
		fmt.Println("Not logged in (guest draft active)")
		return nil
	}
	fmt.Println(app.Session.Email)
	return nil
}

func argOrPrompt(args []string, r *bufio.Reader, prompt string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	return promptLine(r, os.Stdout, prompt)
}
