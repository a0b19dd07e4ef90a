// Package song содержит модель песни из каталога
package song

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Значения по умолчанию для упрощенного конструктора NewBasic
const (
	DefaultKey  = "C major"
	DefaultMood = 50
)

// ErrBadDuration возвращается, если длительность не в формате mm:ss
var ErrBadDuration = errors.New("длительность должна быть в формате mm:ss")

// Attributes описывает все одиннадцать полей песни
type Attributes struct {
	Title           string
	IndexNumber     int // Не используется логикой, сохраняется для записи в файл
	BPM             int
	DurationSeconds int
	Key             string
	Danceability    int
	Happy           int
	Sad             int
	Relaxed         int
	Aggressiveness  int
	Notes           string
}

// Song неизменяемая запись о песне. Значения полей не проверяются.
type Song struct {
	attrs Attributes
}

// New создает песню со всеми атрибутами
func New(attrs Attributes) *Song {
	return &Song{attrs: attrs}
}

// NewBasic создает песню по названию, темпу, танцевальности, агрессивности
// и длительности. Остальные поля получают значения по умолчанию.
func NewBasic(title string, bpm, danceability, aggressiveness, durationSeconds int) *Song {
	return New(Attributes{
		Title:           title,
		BPM:             bpm,
		DurationSeconds: durationSeconds,
		Key:             DefaultKey,
		Danceability:    danceability,
		Happy:           DefaultMood,
		Sad:             DefaultMood,
		Relaxed:         DefaultMood,
		Aggressiveness:  aggressiveness,
	})
}

func (s *Song) Title() string        { return s.attrs.Title }
func (s *Song) IndexNumber() int     { return s.attrs.IndexNumber }
func (s *Song) BPM() int             { return s.attrs.BPM }
func (s *Song) DurationSeconds() int { return s.attrs.DurationSeconds }
func (s *Song) Key() string          { return s.attrs.Key }
func (s *Song) Danceability() int    { return s.attrs.Danceability }
func (s *Song) Happy() int           { return s.attrs.Happy }
func (s *Song) Sad() int             { return s.attrs.Sad }
func (s *Song) Relaxed() int         { return s.attrs.Relaxed }
func (s *Song) Aggressiveness() int  { return s.attrs.Aggressiveness }
func (s *Song) Notes() string        { return s.attrs.Notes }

// Attributes возвращает копию всех полей песни
func (s *Song) Attributes() Attributes {
	return s.attrs
}

// String возвращает строку вида "Title (120 BPM, 225s, Key: C major)"
func (s *Song) String() string {
	return fmt.Sprintf("%s (%d BPM, %ds, Key: %s)",
		s.attrs.Title, s.attrs.BPM, s.attrs.DurationSeconds, s.attrs.Key)
}

// FormatDuration форматирует длительность в секундах в формат m:ss
func FormatDuration(seconds int) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%d:%02d", sign, seconds/60, seconds%60)
}

// ParseDuration разбирает строку mm:ss и возвращает длительность в секундах.
// Знак "-" перед строкой относится ко всему значению: "-1:30" это -90.
// Отрицательные секунды ("-1:-30") тоже принимаются.
func ParseDuration(s string) (int, error) {
	value := strings.TrimSpace(s)
	negative := strings.HasPrefix(value, "-")
	value = strings.TrimPrefix(value, "-")

	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadDuration, s)
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrBadDuration, s, err)
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrBadDuration, s, err)
	}
	if minutes < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadDuration, s)
	}
	if seconds < 0 {
		seconds = -seconds
	}

	total := minutes*60 + seconds
	if negative {
		total = -total
	}
	return total, nil
}
