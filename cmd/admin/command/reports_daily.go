package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/reports"
)

var reportsDailyCmd = &cobra.Command{
	Use:   "daily-calls",
	Short: "Print today's call sheet",
	Long:  "The daily-calls command prints the tasks due today, contacts needing a callback and patients with expiring authorizations",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(printDailyCalls) },
}

func printDailyCalls(service reports.Service) error {
	report, err := service.DailyCalls(context.TODO())
	if err != nil {
		return err
	}

	fmt.Printf("Tasks due today (%v):\n", len(report.DailyTasks))
	for _, task := range report.DailyTasks {
		fmt.Printf("  %s [%s] %s\n", task.PatientId, task.TaskType, task.Title)
	}

	fmt.Printf("Callbacks needed (%v):\n", len(report.CallbacksNeeded))
	for _, log := range report.CallbacksNeeded {
		due := ""
		if log.FollowUpDate != nil {
			due = *log.FollowUpDate
		}
		fmt.Printf("  %s %s\n", log.PatientId, due)
	}

	fmt.Printf("Expiring TANs (%v):\n", len(report.ExpiringTans))
	for _, patient := range report.ExpiringTans {
		fmt.Printf("  %s %s %s expires %s\n", patient.Id, patient.FirstName, patient.LastName, patient.TanExpiryDate)
	}

	fmt.Printf("Total items: %v\n", report.TotalItems)

	return nil
}

func init() {
	reportsCmd.AddCommand(reportsDailyCmd)
}
