package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VersionCmd displays the current application version.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Displays the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%v\n", VERSION)
	},
}
