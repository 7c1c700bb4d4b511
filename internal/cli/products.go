package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the product lines available for reporting",
	Run:   runProducts,
}

func init() {
	rootCmd.AddCommand(productsCmd)
}

func runProducts(cmd *cobra.Command, args []string) {
	app, err := buildApp()
	if err != nil {
		slog.Error("Failed to initialize service", "error", err)
		os.Exit(1)
	}
	defer app.close()

	lines, err := app.svc.ProductLines(context.Background())
	if err != nil {
		slog.Error("Failed to list product lines", "error", err)
		os.Exit(1)
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
