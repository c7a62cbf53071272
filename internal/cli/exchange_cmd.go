package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				out = f
			}

			n, err := app.Exchange.Export(context.Background(), out)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(os.Stderr, "Warning: no data to export.")
				return nil
			}
			if outPath != "" {
				fmt.Fprintf(os.Stderr, "Exported %d sessions to %s\n", n, outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import sessions from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			n, err := app.Exchange.Import(context.Background(), f)
			if err != nil {
				return fmt.Errorf("import failed, ledger unchanged: %w", err)
			}
			fmt.Printf("Imported %d sessions from %s\n", n, args[0])
			return nil
		},
	}
}
