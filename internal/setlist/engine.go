// Package setlist содержит пул песен каталога и рабочий сетлист
package setlist

import (
	"slices"
	"strings"

	"github.com/hazadus/go-setlist/internal/song"
)

// Engine управляет пулом песен и текущим сетлистом.
// Не предназначен для одновременного использования из нескольких горутин.
type Engine struct {
	pool    *Pool
	setlist []*song.Song
}

// NewEngine создает движок с пустым пулом и пустым сетлистом
func NewEngine() *Engine {
	return &Engine{
		pool:    newPool(),
		setlist: make([]*song.Song, 0),
	}
}

// AddSong добавляет песню в пул или заменяет песню с тем же названием
func (e *Engine) AddSong(s *song.Song) {
	e.pool.put(s)
}

// AddToSetlist добавляет в конец сетлиста песню из пула с точно таким же
// названием. Возвращает false, если песни нет в пуле; сетлист при этом
// не меняется.
func (e *Engine) AddToSetlist(title string) bool {
	s, ok := e.pool.Get(title)
	if !ok {
		return false
	}
	e.setlist = append(e.setlist, s)
	return true
}

// RemoveFromSetlist удаляет из сетлиста все песни, название которых
// совпадает с title без учета регистра. Возвращает число удаленных записей.
func (e *Engine) RemoveFromSetlist(title string) int {
	before := len(e.setlist)
	e.setlist = slices.DeleteFunc(e.setlist, func(s *song.Song) bool {
		return strings.EqualFold(s.Title(), title)
	})
	return before - len(e.setlist)
}

// ClearSetlist очищает сетлист, пул не меняется
func (e *Engine) ClearSetlist() {
	clear(e.setlist)
	e.setlist = e.setlist[:0]
}

// SortSetlistByBPM сортирует сетлист по возрастанию BPM вставками.
// Песни с одинаковым BPM сохраняют взаимный порядок.
func (e *Engine) SortSetlistByBPM() {
	for i := 1; i < len(e.setlist); i++ {
		current := e.setlist[i]
		j := i - 1

		// Сдвигаем только строго большие значения, иначе сортировка потеряет стабильность
		for j >= 0 && e.setlist[j].BPM() > current.BPM() {
			e.setlist[j+1] = e.setlist[j]
			j--
		}

		e.setlist[j+1] = current
	}
}

// TotalDuration возвращает суммарную длительность сетлиста в секундах
func (e *Engine) TotalDuration() int {
	total := 0
	for _, s := range e.setlist {
		total += s.DurationSeconds()
	}
	return total
}

// Pool возвращает пул песен
func (e *Engine) Pool() *Pool {
	return e.pool
}

// Setlist возвращает текущий сетлист без копирования.
// Вызывающий код не должен изменять возвращенный срез.
func (e *Engine) Setlist() []*song.Song {
	return e.setlist
}

// SetlistLen возвращает количество записей в сетлисте
func (e *Engine) SetlistLen() int {
	return len(e.setlist)
}
