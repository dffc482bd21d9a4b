package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/reports"
)

var reportsMonthlyXlsxPath string

var reportsMonthlyCmd = &cobra.Command{
	Use:   "monthly-summary",
	Short: "Print the current month's summary",
	Long:  "The monthly-summary command prints billing and contact counts for the current month, optionally exporting them as a spreadsheet",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(printMonthlySummary) },
}

func printMonthlySummary(service reports.Service) error {
	summary, err := service.MonthlySummary(context.TODO())
	if err != nil {
		return err
	}

	fmt.Printf("Month: %s\n", summary.Month)
	fmt.Printf("Total patients: %v\n", summary.TotalPatients)
	fmt.Printf("New patients: %v\n", summary.NewPatients)
	fmt.Printf("Billed patients: %v\n", summary.BilledPatients)
	fmt.Printf("Unable to contact: %v\n", summary.UnableToContact)
	fmt.Printf("Medicaid issues: %v\n", summary.MedicaidIssues)

	if reportsMonthlyXlsxPath != "" {
		file, err := reports.NewWorkbook(*summary).Generate()
		if err != nil {
			return err
		}
		if err := file.Save(reportsMonthlyXlsxPath); err != nil {
			return err
		}
		fmt.Printf("Saved %s\n", reportsMonthlyXlsxPath)
	}

	return nil
}

func init() {
	reportsMonthlyCmd.Flags().StringVar(&reportsMonthlyXlsxPath, "xlsx", "", "Path to write the summary as an xlsx workbook")
	reportsCmd.AddCommand(reportsMonthlyCmd)
}
