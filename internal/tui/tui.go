// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-setlist/internal/setlist"
	"github.com/hazadus/go-setlist/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	engine   *setlist.Engine
	saveFunc func() error // Функция для сохранения сетлиста
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(engine *setlist.Engine, saveFunc func() error) *App {
	return &App{
		engine:   engine,
		saveFunc: saveFunc,
	}
}

// Model возвращает модель Bubble Tea для приложения
func (tuiApp *App) Model() *app.MainModel {
	return app.NewMainModel(tuiApp.engine, tuiApp.saveFunc)
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	p := tea.NewProgram(tuiApp.Model(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
