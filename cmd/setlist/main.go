package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hazadus/go-setlist/internal/catalog"
	"github.com/hazadus/go-setlist/internal/config"
	"github.com/hazadus/go-setlist/internal/setlist"
)

// Application содержит общее состояние приложения
type Application struct {
	Config *config.Config
	Engine *setlist.Engine
	Logger *slog.Logger

	configPath  string // Значение флага --config
	catalogPath string // Значение флага --catalog
	now         func() time.Time
}

// NewApplication создает приложение с пустым движком сетлиста
func NewApplication(logger *slog.Logger) *Application {
	return &Application{
		Config: config.Default(),
		Engine: setlist.NewEngine(),
		Logger: logger,
		now:    time.Now,
	}
}

// newLogger создает логгер для диагностических сообщений
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// Prepare загружает конфигурацию и каталог перед выполнением команды
func (app *Application) Prepare() error {
	cfg, err := config.Load(app.configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	if app.catalogPath != "" {
		cfg.CatalogPath = app.catalogPath
	}
	app.Config = cfg

	app.LoadCatalog()
	return nil
}

// LoadCatalog заполняет пул песнями из файла каталога.
// Ошибки чтения не прерывают работу: приложение продолжает с тем, что удалось загрузить.
func (app *Application) LoadCatalog() int {
	result, err := catalog.LoadInto(app.Config.CatalogPath, app.Engine)
	if result != nil {
		for _, skipped := range result.Skipped {
			app.Logger.Warn("строка каталога пропущена",
				"path", app.Config.CatalogPath,
				"line", skipped.Line,
				"error", skipped.Err)
		}
	}
	if err != nil {
		app.Logger.Warn("не удалось загрузить каталог",
			"path", app.Config.CatalogPath,
			"error", err)
	}

	app.Logger.Debug("каталог загружен", "songs", app.Engine.Pool().Len())
	return app.Engine.Pool().Len()
}

// SaveSetlist дописывает текущий сетлист в файл каталога
func (app *Application) SaveSetlist() error {
	if err := catalog.AppendSetlist(app.Config.CatalogPath, app.Engine.Setlist(), app.now()); err != nil {
		return fmt.Errorf("ошибка сохранения сетлиста: %w", err)
	}
	return nil
}

func main() {
	ctx := context.Background()

	app := NewApplication(newLogger(os.Stderr))
	rootCmd := app.createRootCommand(ctx)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
