package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-setlist/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch the two-pane terminal interface: catalog on the left, setlist on the right.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI()
		},
	}
}

func (app *Application) launchTUI() error {
	tuiApp := tui.NewApp(app.Engine, app.SaveSetlist)

	if err := tuiApp.Run(); err != nil {
		return fmt.Errorf("ошибка TUI: %w", err)
	}
	return nil
}
