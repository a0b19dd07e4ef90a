package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-setlist/internal/song"
	"github.com/hazadus/go-setlist/internal/utils"
)

// createPoolCommand создает команду pool с привязкой к экземпляру приложения
func (app *Application) createPoolCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pool",
		Short: "List all songs from the catalog",
		Long:  `Display every song loaded from the catalog in file order.`,
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			app.listPool()
		},
	}
}

func (app *Application) listPool() {
	songs := app.Engine.Pool().Songs()
	if len(songs) == 0 {
		fmt.Printf("📚 Каталог пуст: %s\n", app.Config.CatalogPath)
		return
	}

	fmt.Printf("📚 Найдено песен: %d\n\n", len(songs))

	// Выводим заголовок таблицы
	fmt.Println(strings.Join([]string{
		utils.Cell("Название", 30),
		utils.Cell("BPM", 5),
		utils.Cell("Длит.", 6),
		utils.Cell("Тональность", 12),
		utils.Cell("Танц.", 5),
		utils.Cell("Рад.", 5),
		utils.Cell("Груст.", 6),
		utils.Cell("Спок.", 5),
		utils.Cell("Агр.", 5),
		"Заметки",
	}, " "))
	fmt.Println(strings.Repeat("-", 120))

	for _, s := range songs {
		fmt.Println(strings.Join([]string{
			utils.Cell(s.Title(), 30),
			utils.Cell(strconv.Itoa(s.BPM()), 5),
			utils.Cell(song.FormatDuration(s.DurationSeconds()), 6),
			utils.Cell(s.Key(), 12),
			utils.Cell(strconv.Itoa(s.Danceability()), 5),
			utils.Cell(strconv.Itoa(s.Happy()), 5),
			utils.Cell(strconv.Itoa(s.Sad()), 6),
			utils.Cell(strconv.Itoa(s.Relaxed()), 5),
			utils.Cell(strconv.Itoa(s.Aggressiveness()), 5),
			utils.TruncateString(s.Notes(), 40),
		}, " "))
	}

	fmt.Println()
	fmt.Println("💡 Используйте 'setlist build [названия...]' или 'setlist tui' для составления сетлиста")
}
