package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/patients"
)

var patientsListSearch string
var patientsListTanExpiring bool

var patientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List patients",
	Long:  "The list command is used to retrieve a list of patients, optionally filtered by a search term",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listPatients) },
}

func listPatients(service patients.Service) error {
	filter := &patients.Filter{
		TanExpiring: patientsListTanExpiring,
	}
	if patientsListSearch != "" {
		filter.Search = &patientsListSearch
	}

	list, err := service.List(context.TODO(), filter)
	if err != nil {
		return err
	}

	for _, patient := range list {
		fmt.Printf("%s %s %s %s\n", patient.Id, patient.FirstName, patient.LastName, patient.TanExpiryDate)
	}
	fmt.Printf("Found %v patients\n", len(list))

	return nil
}

func init() {
	patientsListCmd.Flags().StringVar(&patientsListSearch, "search", "", "Substring to match against name or phone")
	patientsListCmd.Flags().BoolVar(&patientsListTanExpiring, "tan-expiring", false, "Only patients whose TAN expires within the renewal window")
	patientsCmd.AddCommand(patientsListCmd)
}
