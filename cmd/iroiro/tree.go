package main

import (
	"github.com/spf13/cobra"

	"github.com/SilverEzhik/IroIro/pkg/outline"
)

var (
	treeDepth  int
	treeOutput string
)

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Print the folders and notes below a path",
	Long: `Print the outline of the notes below a folder (the whole notebook by default).
Folders are marked with a trailing colon in text output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outline.ParseFormat(treeOutput)
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

		return outline.Write(cmd.OutOrStdout(), outline.Build(item, treeDepth), format)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().IntVarP(&treeDepth, "depth", "d", 0, "Maximum depth to descend (0 = unlimited)")
	treeCmd.Flags().StringVarP(&treeOutput, "output", "o", "text", "Output format: text, json or yaml")
}
