package main

import (
	"fmt"
	"strings"

	iroiro "github.com/SilverEzhik/IroIro"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of iroiro",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "iroiro version %s\n", strings.TrimSpace(iroiro.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
