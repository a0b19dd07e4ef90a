package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "setlist",
		Short: "Build performance setlists from a song catalog",
		Long: `A command line tool to browse a song catalog and assemble an ordered setlist.
Without a subcommand the interactive terminal interface is started.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.Prepare()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI()
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "path to the config file (default: $XDG_CONFIG_HOME/setlist/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&app.catalogPath, "catalog", "", "path to the catalog file (overrides catalog_path from config)")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createPoolCommand())
	rootCmd.AddCommand(app.createBuildCommand())
	rootCmd.AddCommand(app.createImportCommand())
	rootCmd.AddCommand(app.createBackupCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}
