// Package app содержит основную логику TUI приложения
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-setlist/internal/setlist"
	"github.com/hazadus/go-setlist/internal/song"
	"github.com/hazadus/go-setlist/internal/tui/songlist"
)

// FocusType определяет активную панель
type FocusType int

// Константы для активной панели
const (
	// PoolFocus - панель каталога
	PoolFocus FocusType = iota
	// SetlistFocus - панель сетлиста
	SetlistFocus
)

const helpText = "tab: панель • a/enter: добавить • v: убрать • s: сортировать по BPM • c: очистить • w: сохранить • q: выход"

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	activePaneStyle = paneStyle.BorderForeground(lipgloss.Color("170"))
	durationStyle   = lipgloss.NewStyle().Bold(true).MarginLeft(1)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).MarginLeft(1)
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginLeft(1)
)

// MainModel представляет главную модель TUI
type MainModel struct {
	engine      *setlist.Engine
	poolPane    *songlist.Model
	setlistPane *songlist.Model
	focus       FocusType
	status      string
	saveFunc    func() error // Функция для сохранения сетлиста
	width       int
	height      int
}

// NewMainModel создает новую главную модель
func NewMainModel(engine *setlist.Engine, saveFunc func() error) *MainModel {
	m := &MainModel{
		engine:      engine,
		poolPane:    songlist.NewModel("Каталог", engine.Pool().Songs(), songlist.PoolLayout),
		setlistPane: songlist.NewModel("Сетлист", engine.Setlist(), songlist.SetlistLayout),
		focus:       PoolFocus,
		saveFunc:    saveFunc,
	}
	m.poolPane.SetActive(true)
	return m
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		// Во время ввода фильтра все клавиши уходят в панель каталога
		if m.focus == PoolFocus && m.poolPane.Filtering() {
			return m.updateActivePane(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.toggleFocus()
			return m, nil
		case "a", "enter":
			m.addSelected()
			return m, nil
		case "v":
			m.vetoSelected()
			return m, nil
		case "c":
			m.engine.ClearSetlist()
			m.refreshSetlist()
			m.status = "Сетлист очищен"
			return m, nil
		case "s":
			m.engine.SortSetlistByBPM()
			m.refreshSetlist()
			m.status = "Сетлист отсортирован по BPM"
			return m, nil
		case "w":
			m.save()
			return m, nil
		}
	}

	return m.updateActivePane(msg)
}

func (m *MainModel) updateActivePane(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == PoolFocus {
		m.poolPane, cmd = m.poolPane.Update(msg)
	} else {
		m.setlistPane, cmd = m.setlistPane.Update(msg)
	}
	return m, cmd
}

func (m *MainModel) toggleFocus() {
	if m.focus == PoolFocus {
		m.focus = SetlistFocus
	} else {
		m.focus = PoolFocus
	}
	m.poolPane.SetActive(m.focus == PoolFocus)
	m.setlistPane.SetActive(m.focus == SetlistFocus)
}

func (m *MainModel) addSelected() {
	selected, ok := m.poolPane.SelectedSong()
	if !ok {
		m.status = "Сначала выберите песню в каталоге"
		return
	}
	if !m.engine.AddToSetlist(selected.Title()) {
		m.status = fmt.Sprintf("Песня не найдена в каталоге: %s", selected.Title())
		return
	}
	m.refreshSetlist()
	m.status = fmt.Sprintf("Добавлено: %s", selected.Title())
}

func (m *MainModel) vetoSelected() {
	selected, ok := m.setlistPane.SelectedSong()
	if !ok {
		m.status = "Сначала выберите песню в сетлисте"
		return
	}
	removed := m.engine.RemoveFromSetlist(selected.Title())
	m.refreshSetlist()
	m.status = fmt.Sprintf("Убрано из сетлиста: %s (%d)", selected.Title(), removed)
}

func (m *MainModel) save() {
	if m.saveFunc == nil {
		m.status = "Сохранение недоступно"
		return
	}
	if err := m.saveFunc(); err != nil {
		m.status = fmt.Sprintf("Ошибка сохранения: %v", err)
		return
	}
	m.status = fmt.Sprintf("Сетлист сохранен (%d песен)", m.engine.SetlistLen())
}

func (m *MainModel) refreshSetlist() {
	m.setlistPane.SetSongs(m.engine.Setlist())
}

// resize делит ширину окна между панелями, оставляя место под рамки и строки состояния
func (m *MainModel) resize() {
	paneWidth := m.width/2 - 2
	paneHeight := m.height - 6
	if paneWidth < 0 {
		paneWidth = 0
	}
	if paneHeight < 0 {
		paneHeight = 0
	}
	m.poolPane.SetSize(paneWidth, paneHeight)
	m.setlistPane.SetSize(paneWidth, paneHeight)
}

// Focus возвращает активную панель
func (m *MainModel) Focus() FocusType {
	return m.focus
}

// Status возвращает текущее сообщение строки состояния
func (m *MainModel) Status() string {
	return m.status
}

// RuntimeLabel возвращает строку с общей длительностью сетлиста
func (m *MainModel) RuntimeLabel() string {
	return "Общая длительность: " + song.FormatDuration(m.engine.TotalDuration())
}

// View отображает интерфейс
func (m *MainModel) View() string {
	poolStyle, setlistStyle := paneStyle, paneStyle
	if m.focus == PoolFocus {
		poolStyle = activePaneStyle
	} else {
		setlistStyle = activePaneStyle
	}

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.setlistPane.View(),
		durationStyle.Render(m.RuntimeLabel()),
	)

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		poolStyle.Render(m.poolPane.View()),
		setlistStyle.Render(right),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		panes,
		statusStyle.Render(m.status),
		helpStyle.Render(helpText),
	)
}
