package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SilverEzhik/IroIro/pkg/outline"
)

var lsOutput string

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List the contents of a folder",
	Long:  `List the folders and notes directly inside a folder, in natural order. Folders end with "/".`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outline.ParseFormat(lsOutput)
		if err != nil {
			return err
		}

		nb, err := openNotebook()
		if err != nil {
			return err
		}

		item, err := lookup(nb, args)
		if err != nil {
			return err
		}

		node := outline.Build(item, 1)
		if format != outline.FormatText {
			return outline.Write(cmd.OutOrStdout(), node, format)
		}

		for _, child := range node.Children {
			path := displayPath(child.Path)
			if child.IsFolder {
				path += "/"
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().StringVarP(&lsOutput, "output", "o", "text", "Output format: text, json or yaml")
}
