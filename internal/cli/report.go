package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/radcomm/riskcalc/internal/core/domain"
)

var (
	reportProduct string
	reportFrom    string
	reportTo      string
	reportJSON    bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a risk assessment report for a product line",
	Run:   runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportProduct, "product-line", "", "product line to assess (required unless configured)")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "period start, YYYY-MM-DD (required)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "period end, YYYY-MM-DD (defaults to today)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "emit the report as JSON")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) {
	app, err := buildApp()
	if err != nil {
		slog.Error("Failed to initialize service", "error", err)
		os.Exit(1)
	}
	defer app.close()

	productLine := reportProduct
	if productLine == "" {
		productLine = app.cfg.Report.DefaultProductLine
	}

	from, err := time.Parse("2006-01-02", reportFrom)
	if err != nil {
		slog.Error("Invalid --from date", "error", err)
		os.Exit(1)
	}
	to := time.Now().UTC().Truncate(24 * time.Hour)
	if reportTo != "" {
		to, err = time.Parse("2006-01-02", reportTo)
		if err != nil {
			slog.Error("Invalid --to date", "error", err)
			os.Exit(1)
		}
	}

	rep, err := app.svc.Generate(context.Background(), productLine, from, to)
	if err != nil {
		slog.Error("Report generation failed", "error", err)
		os.Exit(1)
	}

	if reportJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			slog.Error("Failed to encode report", "error", err)
			os.Exit(1)
		}
		return
	}

	printReport(rep)
}

func printReport(rep *domain.RiskReport) {
	fmt.Printf("Risk assessment for %s (%s to %s)\n",
		rep.ProductLine,
		rep.PeriodStart.Format("2006-01-02"),
		rep.PeriodEnd.Format("2006-01-02"))
	fmt.Printf("HHI reference: %s   Total procedures: %d\n\n", orNA(rep.HHIReference), rep.TotalProcedures)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.Debug)
	_, _ = fmt.Fprintln(w, "OBJECT\tERROR\tHAZARD\tSEVERITY\tCOMPLAINTS\tP1\tP2\tHARM\tRISK")

	for _, a := range rep.Assessments {
		p1 := a.P1Label
		if a.RateKnown {
			p1 = fmt.Sprintf("%.2e %s", a.Rate, a.P1Label)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			a.ObjectCode, a.ErrorCode, a.Hazard, a.Severity,
			a.TotalComplaints, p1, orNA(string(a.P2)), a.HarmLabel, a.Risk)
	}
	_ = w.Flush()

	fmt.Printf("\nRows: %d   High: %d   Medium: %d   Low: %d   N/A: %d\n",
		len(rep.Assessments),
		rep.Summary[domain.RiskHigh],
		rep.Summary[domain.RiskMedium],
		rep.Summary[domain.RiskLow],
		rep.Summary[domain.RiskNotApplicable])
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
