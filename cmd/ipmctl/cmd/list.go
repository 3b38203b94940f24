package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the embedded scenario catalogue",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range scenarioNames() {
			s := scenarios[name]
			fmt.Printf("%-4s %s\n", s.Name, s.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
