package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parentCmd = &cobra.Command{
	Use:   "parent [path]",
	Short: "Print the folder containing a note or folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nb, err := openNotebook()
		if err != nil {
			return err
		}

		item, err := lookup(nb, args)
		if err != nil {
			return err
		}

		parent, ok := item.Parent()
		if !ok {
			return fmt.Errorf("%s has no parent", displayPath(item.Path))
		}

		fmt.Fprintln(cmd.OutOrStdout(), displayPath(parent.Path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parentCmd)
}
