package cli

import (
	"fmt"
	"os"

	"github.com/vaibhavharit14/BudgetBox/internal/client/export"

	"github.com/spf13/cobra"
)

var (
	flagExportFormat string
	flagExportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the local draft (xml or xlsx)",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "xml", "Export format: xml or xlsx")
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Output path (default: stdout for xml, budget.xlsx for xlsx)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	draft := app.Store.State().Draft

	switch flagExportFormat {
	case "xml":
		data, err := export.ToXML(draft)
		if err != nil {
			return err
		}
		if flagExportOut == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(flagExportOut, data, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Printf("Exported to %s\n", flagExportOut)
		return nil

	case "xlsx":
		out := flagExportOut
		if out == "" {
			out = "budget.xlsx"
		}
		if err := export.ToXLSX(draft, out); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", out)
		return nil

	default:
		return fmt.Errorf("unknown export format %q (want xml or xlsx)", flagExportFormat)
	}
}
