package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-setlist/internal/catalog"
	"github.com/hazadus/go-setlist/internal/metadata"
	"github.com/hazadus/go-setlist/internal/song"
)

// importOptions флаги команды import
type importOptions struct {
	title          string
	duration       string
	bpm            int
	key            string
	danceability   int
	happy          int
	sad            int
	relaxed        int
	aggressiveness int
	notes          string
}

// createImportCommand создает команду import с привязкой к экземпляру приложения
func (app *Application) createImportCommand() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import [mp3 file]",
		Short: "Add a song to the catalog",
		Long: `Add a song row to the catalog file. Title and duration are read from the mp3 file
when it is given; --title and --duration override them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var filePath string
			if len(args) == 1 {
				filePath = args[0]
			}
			return app.importSong(filePath, opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "song title (default: from audio tags or file name)")
	cmd.Flags().StringVar(&opts.duration, "duration", "", "duration as mm:ss (default: from the mp3 stream)")
	cmd.Flags().IntVar(&opts.bpm, "bpm", 0, "tempo in beats per minute")
	cmd.Flags().StringVar(&opts.key, "key", song.DefaultKey, "musical key")
	cmd.Flags().IntVar(&opts.danceability, "danceability", song.DefaultMood, "danceability score")
	cmd.Flags().IntVar(&opts.happy, "happy", song.DefaultMood, "happy score")
	cmd.Flags().IntVar(&opts.sad, "sad", song.DefaultMood, "sad score")
	cmd.Flags().IntVar(&opts.relaxed, "relaxed", song.DefaultMood, "relaxed score")
	cmd.Flags().IntVar(&opts.aggressiveness, "aggressiveness", song.DefaultMood, "aggressiveness score")
	cmd.Flags().StringVar(&opts.notes, "notes", "", "free-form notes (default: genre from audio tags)")

	return cmd
}

func (app *Application) importSong(filePath string, opts *importOptions) error {
	title := opts.title
	notes := opts.notes
	var durationSeconds int

	if filePath != "" {
		info, err := metadata.NewExtractor().Extract(filePath)
		if err != nil {
			return fmt.Errorf("ошибка чтения аудио файла: %w", err)
		}
		if title == "" {
			title = info.Title
		}
		durationSeconds = info.DurationSeconds()
		notes = notesOrGenre(opts.notes, info.TrackTags)

		fmt.Printf("🎵 Файл: %s\n", filePath)
		fmt.Printf("   Исполнитель: %s\n", info.Artist)
		fmt.Printf("   Название: %s\n", info.Title)
		fmt.Printf("   Длительность: %s\n", song.FormatDuration(durationSeconds))
		if info.Genre != "" {
			fmt.Printf("   Жанр: %s\n", info.Genre)
		}
	}

	if opts.duration != "" {
		seconds, err := song.ParseDuration(opts.duration)
		if err != nil {
			return fmt.Errorf("неверная длительность %q: %w", opts.duration, err)
		}
		durationSeconds = seconds
	}

	title = catalog.CleanField(title)
	if title == "" {
		return fmt.Errorf("не указано название песни: передайте mp3 файл или --title")
	}
	if filePath == "" && opts.duration == "" {
		return fmt.Errorf("не указана длительность: передайте mp3 файл или --duration")
	}

	s := song.New(song.Attributes{
		Title:           title,
		BPM:             opts.bpm,
		DurationSeconds: durationSeconds,
		Key:             catalog.CleanField(opts.key),
		Danceability:    opts.danceability,
		Happy:           opts.happy,
		Sad:             opts.sad,
		Relaxed:         opts.relaxed,
		Aggressiveness:  opts.aggressiveness,
		Notes:           catalog.CleanField(notes),
	})

	if _, exists := app.Engine.Pool().Get(title); exists {
		fmt.Printf("⚠️  Песня %q уже есть в каталоге, при загрузке будет использована новая запись\n", title)
	}

	if err := catalog.AppendSong(app.Config.CatalogPath, s); err != nil {
		fmt.Printf("❌ %v\n", err)
		return err
	}
	app.Engine.AddSong(s)

	fmt.Printf("✅ Добавлено в каталог %s:\n", app.Config.CatalogPath)
	fmt.Printf("   %s\n", s)
	return nil
}

// notesOrGenre возвращает заметки, а если они не заданы - жанр из тегов
func notesOrGenre(notes string, tags metadata.TrackTags) string {
	if notes != "" {
		return notes
	}
	return tags.Genre
}
