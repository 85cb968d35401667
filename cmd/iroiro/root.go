package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	iroiro "github.com/SilverEzhik/IroIro"
)

var (
	verbose      bool
	notebookPath string
)

var errNotFound = errors.New("not found")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "iroiro",
	Short: "Browse the notes of an IroIro notebook",
	Long: `IroIro resolves paths inside a notebook's Notes folder and lists the
folders and Markdown notes it contains. Nothing outside Notes is ever shown.

Without --notebook, the notebook is found by walking up from the current
directory to the first directory containing a Notes folder.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&notebookPath, "notebook", "n", "", "Notebook root directory (default: discovered from the working directory)")
}

// openNotebook opens the notebook selected by the --notebook flag.
func openNotebook() (*iroiro.Notebook, error) {
	opts := []iroiro.Option{iroiro.WithLogger(slog.Default())}

	path := notebookPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		path = wd
		opts = append(opts, iroiro.WithDiscovery(true))
	}

	nb, err := iroiro.Open(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open notebook: %w", err)
	}
	return nb, nil
}

// lookup resolves an optional path argument, defaulting to the notes root.
func lookup(nb *iroiro.Notebook, args []string) (iroiro.Item, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	item, ok := nb.GetItem(path)
	if !ok {
		return iroiro.Item{}, fmt.Errorf("%w: %s", errNotFound, displayPath(path))
	}
	return item, nil
}

// displayPath renders a notes-relative path, "." being the notes root.
func displayPath(rel string) string {
	if rel == "" {
		return "."
	}
	return filepath.ToSlash(rel)
}
