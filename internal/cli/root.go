// Package cli provides the command-line interface for linkshelf.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/linkshelf/internal/app"
)

// Version is set by the main package at build time.
var Version = "dev"

type globalFlags struct {
	configPath  string
	catalogPath string
	verbose     bool
	watch       time.Duration
}

func (g *globalFlags) options() app.Options {
	return app.Options{
		ConfigPath:  g.configPath,
		CatalogPath: g.catalogPath,
		Verbose:     g.verbose,
		WatchEvery:  g.watch,
	}
}

// NewRootCmd creates the root command. With no subcommand it runs the TUI.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "linkshelf",
		Short: "Browse the building-footprint link catalog and export selections",
		Long: `linkshelf lists downloadable building-footprint data files by region and
quadkey, lets you filter, sort and select them, and bundles the selected
links into a ZIP archive of text files.

Run without a subcommand to open the interactive catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), flags.options())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "Catalog CSV path (overrides catalog_path)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.Flags().DurationVar(&flags.watch, "watch", 0, "Catalog file reload interval (0 = 2s, negative disables)")

	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newExportCmd(flags))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the linkshelf version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("linkshelf %s\n", Version)
		},
	}
}
