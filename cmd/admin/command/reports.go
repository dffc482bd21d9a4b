package command

import (
	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Reports",
	Long:  "The reports command is used to generate operational reports",
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}
