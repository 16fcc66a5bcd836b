package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the moneypath CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("moneypath version %s\n", version)
		fmt.Println("A multi-decade personal finance journey simulator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
