// Package songlist содержит модель панели со списком песен для TUI
package songlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-setlist/internal/song"
	"github.com/hazadus/go-setlist/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(1)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(2)
)

// Layout определяет, как песня отображается в строке списка
type Layout int

const (
	// PoolLayout - подробная строка со всеми атрибутами песни
	PoolLayout Layout = iota
	// SetlistLayout - краткая строка вида "Title (120 BPM, 225s, Key: C major)"
	SetlistLayout
)

// songItem реализует интерфейс list.Item для песни
type songItem struct {
	song *song.Song
}

func (i songItem) FilterValue() string {
	return i.song.Title()
}

// songItemDelegate реализует отображение элементов списка
type songItemDelegate struct {
	layout Layout
	active *bool
}

func (d songItemDelegate) Height() int                             { return 1 }
func (d songItemDelegate) Spacing() int                            { return 0 }
func (d songItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d songItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(songItem)
	if !ok {
		return
	}

	str := FormatRow(i.song, d.layout)
	if width := m.Width() - 4; width > 0 {
		str = utils.TruncateString(str, width)
	}

	fn := itemStyle.Render
	if index == m.Index() && *d.active {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// FormatRow форматирует песню для строки списка
func FormatRow(s *song.Song, layout Layout) string {
	if layout == SetlistLayout {
		return s.String()
	}
	return fmt.Sprintf("%s | BPM: %d | Length: %s | Key: %s | Danceability: %d | Happy: %d | Sad: %d | Relaxed: %d | Aggressive: %d | Notes: %s",
		s.Title(),
		s.BPM(),
		song.FormatDuration(s.DurationSeconds()),
		s.Key(),
		s.Danceability(),
		s.Happy(),
		s.Sad(),
		s.Relaxed(),
		s.Aggressiveness(),
		s.Notes())
}

// Model представляет модель панели со списком песен
type Model struct {
	list   list.Model
	active *bool
}

// NewModel создает панель с заголовком title
func NewModel(title string, songs []*song.Song, layout Layout) *Model {
	active := new(bool)

	l := list.New(toItems(songs), songItemDelegate{layout: layout, active: active}, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(layout == PoolLayout)
	l.DisableQuitKeybindings()
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle

	return &Model{
		list:   l,
		active: active,
	}
}

func toItems(songs []*song.Song) []list.Item {
	items := make([]list.Item, len(songs))
	for i, s := range songs {
		items[i] = songItem{song: s}
	}
	return items
}

// SetSongs заменяет содержимое панели, сохраняя позицию курсора, если это возможно
func (m *Model) SetSongs(songs []*song.Song) {
	index := m.list.Index()
	m.list.SetItems(toItems(songs))
	if len(songs) == 0 {
		m.list.ResetSelected()
		return
	}
	m.list.Select(min(index, len(songs)-1))
}

// SetActive помечает панель как активную
func (m *Model) SetActive(active bool) {
	*m.active = active
}

// Active сообщает, активна ли панель
func (m *Model) Active() bool {
	return *m.active
}

// SetSize задает размеры панели
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Select перемещает курсор на элемент index
func (m *Model) Select(index int) {
	m.list.Select(index)
}

// SelectedSong возвращает песню под курсором
func (m *Model) SelectedSong() (*song.Song, bool) {
	item, ok := m.list.SelectedItem().(songItem)
	if !ok {
		return nil, false
	}
	return item.song, true
}

// Len возвращает количество элементов в панели
func (m *Model) Len() int {
	return len(m.list.Items())
}

// Filtering сообщает, вводит ли пользователь строку фильтра
func (m *Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	return m.list.View()
}
