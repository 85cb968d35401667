package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [path]",
	Short: "Print the absolute path of a note or folder",
	Long: `Resolve a path relative to the Notes folder and print where it lives on disk.
Paths that leave the Notes folder, missing entries and non-Markdown files are
all reported as not found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nb, err := openNotebook()
		if err != nil {
			return err
		}

		item, err := lookup(nb, args)
		if err != nil {
			return err
		}

		path, ok := item.FSPath()
		if !ok {
			return fmt.Errorf("%w: %s", errNotFound, args[0])
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
