package command

import (
	"github.com/spf13/cobra"
)

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "Patients",
	Long:  "The patients command is used to inspect patient records",
}

func init() {
	rootCmd.AddCommand(patientsCmd)
}
