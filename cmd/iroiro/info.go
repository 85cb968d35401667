package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SilverEzhik/IroIro/pkg/notebook"
	"github.com/SilverEzhik/IroIro/pkg/outline"
)

var infoOutput string

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the notebook configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outline.ParseFormat(infoOutput)
		if err != nil {
			return err
		}

		nb, err := openNotebook()
		if err != nil {
			return err
		}

		state, _ := nb.State().(notebook.NotebookState)
		out := cmd.OutOrStdout()

		switch format {
		case outline.FormatJSON:
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(state)
		case outline.FormatYAML:
			encoder := yaml.NewEncoder(out)
			if err := encoder.Encode(state); err != nil {
				return err
			}
			return encoder.Close()
		}

		fmt.Fprintf(out, "notebook: %s\n", state.NotebookPath)
		fmt.Fprintf(out, "notes:    %s\n", state.NotesPath)
		fmt.Fprintf(out, "present:  %t\n", state.NotesPresent)
		fmt.Fprintf(out, "ignore:   %v\n", state.Ignore)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringVarP(&infoOutput, "output", "o", "text", "Output format: text, json or yaml")
}
