package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-setlist/internal/song"
)

// buildOptions флаги команды build
type buildOptions struct {
	sort  bool
	vetos []string
	save  bool
}

// createBuildCommand создает команду build с привязкой к экземпляру приложения
func (app *Application) createBuildCommand() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build [titles...]",
		Short: "Assemble a setlist from catalog titles",
		Long: `Add songs to the setlist by exact title, optionally remove vetoed titles
(case-insensitive), sort by BPM and append the result to the catalog file.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return app.buildSetlist(args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.sort, "sort", false, "sort the setlist by BPM, slowest first")
	cmd.Flags().StringArrayVar(&opts.vetos, "veto", nil, "remove every entry with this title (case-insensitive), can be repeated")
	cmd.Flags().BoolVar(&opts.save, "save", false, "append the setlist to the catalog file")

	return cmd
}

func (app *Application) buildSetlist(titles []string, opts *buildOptions) error {
	for _, title := range titles {
		if !app.Engine.AddToSetlist(title) {
			fmt.Printf("⚠️  Песня не найдена в каталоге: %s\n", title)
		}
	}

	for _, title := range opts.vetos {
		removed := app.Engine.RemoveFromSetlist(title)
		fmt.Printf("🚫 Убрано из сетлиста: %s (%d)\n", title, removed)
	}

	if opts.sort {
		app.Engine.SortSetlistByBPM()
	}

	app.printSetlist()

	if !opts.save {
		return nil
	}
	if err := app.SaveSetlist(); err != nil {
		fmt.Printf("❌ %v\n", err)
		return err
	}
	fmt.Printf("💾 Сетлист сохранен в %s\n", app.Config.CatalogPath)
	return nil
}

func (app *Application) printSetlist() {
	entries := app.Engine.Setlist()
	if len(entries) == 0 {
		fmt.Println("📋 Сетлист пуст")
		return
	}

	fmt.Printf("📋 Сетлист (%d):\n", len(entries))
	for i, s := range entries {
		fmt.Printf("%3d. %s\n", i+1, s)
	}
	fmt.Println()
	fmt.Printf("⏱️  Общая длительность: %s\n", song.FormatDuration(app.Engine.TotalDuration()))
}
