package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var checkProduct string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check complaint data availability for a product line",
	Run:   runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkProduct, "product-line", "", "product line to check (required)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	if checkProduct == "" {
		slog.Error("--product-line is required")
		os.Exit(1)
	}

	app, err := buildApp()
	if err != nil {
		slog.Error("Failed to initialize service", "error", err)
		os.Exit(1)
	}
	defer app.close()

	avail, err := app.svc.CheckAvailability(context.Background(), checkProduct)
	if err != nil {
		slog.Error("Availability check failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Product line: %s\n", avail.ProductLine)
	fmt.Printf("Records:      %d\n", avail.RecordCount)
	if avail.MinDate != nil && avail.MaxDate != nil {
		fmt.Printf("Date range:   %s to %s\n",
			avail.MinDate.Format("2006-01-02"), avail.MaxDate.Format("2006-01-02"))
	} else {
		fmt.Println("Date range:   no complaint data")
	}
}
