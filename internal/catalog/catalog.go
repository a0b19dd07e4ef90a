// Package catalog читает и дописывает файл каталога песен
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hazadus/go-setlist/internal/song"
	"github.com/hazadus/go-setlist/internal/utils"
)

// Header первая строка файла каталога. При чтении всегда пропускается.
const Header = "Title,Index,BPM,Duration,Key,Danceability,Happy,Sad,Relaxed,Aggressiveness,Notes"

// FieldCount минимальное число полей в строке с данными
const FieldCount = 11

// markerPrefix обрамляет строку-разделитель сохраненного сетлиста
const markerPrefix = "---"

// setlistMarker начало строки-разделителя, которую пишет WriteSetlist
const setlistMarker = markerPrefix + " Setlist saved on "

var (
	// ErrTooFewFields строка содержит меньше FieldCount полей
	ErrTooFewFields = errors.New("недостаточно полей")
	// ErrEmptyTitle у песни пустое название
	ErrEmptyTitle = errors.New("пустое название")
	// ErrBadDuration длительность не в формате mm:ss
	ErrBadDuration = song.ErrBadDuration
)

// LineError описывает строку каталога, которую не удалось разобрать
type LineError struct {
	Line int    // Номер строки в файле, начиная с 1
	Text string // Исходный текст строки
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("строка %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// LoadResult результат чтения каталога
type LoadResult struct {
	Songs   []*song.Song // Разобранные песни в порядке следования в файле
	Skipped []*LineError // Пропущенные строки
}

// SongAdder принимает песни, прочитанные из каталога
type SongAdder interface {
	AddSong(s *song.Song)
}

// ParseLine разбирает одну строку каталога
func ParseLine(line string) (*song.Song, error) {
	parts := strings.Split(line, ",")
	if len(parts) < FieldCount {
		return nil, fmt.Errorf("%w: %d из %d", ErrTooFewFields, len(parts), FieldCount)
	}

	title := strings.TrimSpace(parts[0])
	if title == "" {
		return nil, ErrEmptyTitle
	}

	// Колонка 1 (индекс в файле) не используется
	bpm, err := parseInt("bpm", parts[2])
	if err != nil {
		return nil, err
	}
	duration, err := song.ParseDuration(parts[3])
	if err != nil {
		return nil, err
	}

	scores := make([]int, 5)
	names := []string{"danceability", "happy", "sad", "relaxed", "aggressiveness"}
	for i, name := range names {
		if scores[i], err = parseInt(name, parts[5+i]); err != nil {
			return nil, err
		}
	}

	return song.New(song.Attributes{
		Title:           title,
		BPM:             bpm,
		DurationSeconds: duration,
		Key:             strings.TrimSpace(parts[4]),
		Danceability:    scores[0],
		Happy:           scores[1],
		Sad:             scores[2],
		Relaxed:         scores[3],
		Aggressiveness:  scores[4],
		Notes:           strings.TrimSpace(parts[10]),
	}), nil
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("поле %s: %w", field, err)
	}
	return n, nil
}

// Parse читает каталог из reader. Ошибка в одной строке не прерывает
// чтение остальных: такие строки попадают в LoadResult.Skipped.
// Пустые строки и разделители сохраненных сетлистов пропускаются молча.
// Длина строки не ограничена.
func Parse(r io.Reader) (*LoadResult, error) {
	result := &LoadResult{
		Songs:   make([]*song.Song, 0),
		Skipped: make([]*LineError, 0),
	}

	reader := bufio.NewReader(r)
	lineNumber := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return result, fmt.Errorf("ошибка чтения каталога: %w", err)
		}
		if line == "" && err == io.EOF {
			break
		}

		lineNumber++
		result.addLine(lineNumber, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))

		if err == io.EOF {
			break
		}
	}

	return result, nil
}

func (r *LoadResult) addLine(lineNumber int, line string) {
	if lineNumber == 1 {
		return
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, setlistMarker) {
		return
	}

	s, err := ParseLine(line)
	if err != nil {
		r.Skipped = append(r.Skipped, &LineError{Line: lineNumber, Text: line, Err: err})
		return
	}
	r.Songs = append(r.Songs, s)
}

// LoadFile читает каталог из файла
func LoadFile(filePath string) (*LoadResult, error) {
	path, err := utils.ExpandPath(filePath)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия каталога: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// LoadInto читает каталог из файла и передает каждую песню в adder
// в порядке следования в файле
func LoadInto(filePath string, adder SongAdder) (*LoadResult, error) {
	result, err := LoadFile(filePath)
	if result != nil {
		for _, s := range result.Songs {
			adder.AddSong(s)
		}
	}
	return result, err
}
