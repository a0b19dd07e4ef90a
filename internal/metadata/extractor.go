// Package metadata предоставляет функционал для извлечения метаданных из аудио файлов
package metadata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/mp3"
)

// UnknownArtist подставляется, если исполнителя не удалось определить
const UnknownArtist = "Unknown Artist"

// TrackTags хранит теги трека
type TrackTags struct {
	Artist string
	Title  string
	Album  string
	Genre  string
}

// SongInfo содержит все, что нужно для новой записи в каталоге
type SongInfo struct {
	TrackTags
	Duration time.Duration
}

// DurationSeconds возвращает длительность, округленную до секунд
func (i *SongInfo) DurationSeconds() int {
	return int(i.Duration.Round(time.Second) / time.Second)
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader извлекает теги из io.ReadSeeker
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) TrackTags {
	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return e.getDefaultTags(source)
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return e.getDefaultTags(source)
	}

	tags := TrackTags{
		Artist: strings.TrimSpace(metadata.Artist()),
		Title:  strings.TrimSpace(metadata.Title()),
		Album:  strings.TrimSpace(metadata.Album()),
		Genre:  strings.TrimSpace(metadata.Genre()),
	}

	// Если в тегах нет названия, берем его из имени файла
	if tags.Title == "" {
		fallback := e.getDefaultTags(source)
		tags.Title = fallback.Title
		if tags.Artist == "" {
			tags.Artist = fallback.Artist
		}
	}

	return tags
}

// ExtractFromFile извлекает теги из файла
func (e *Extractor) ExtractFromFile(filePath string) TrackTags {
	file, err := os.Open(filePath)
	if err != nil {
		return e.getDefaultTags(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// GetDuration получает длительность MP3 файла
func (e *Extractor) GetDuration(filePath string) (time.Duration, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	streamer, format, err := mp3.Decode(file)
	if err != nil {
		return 0, fmt.Errorf("ошибка декодирования MP3: %w", err)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// Extract собирает теги и длительность файла
func (e *Extractor) Extract(filePath string) (*SongInfo, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	duration, err := e.GetDuration(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения длительности: %w", err)
	}

	return &SongInfo{
		TrackTags: e.ExtractFromFile(filePath),
		Duration:  duration,
	}, nil
}

// getDefaultTags возвращает теги по умолчанию на основе имени файла
func (e *Extractor) getDefaultTags(source string) TrackTags {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Пытаемся разобрать имя файла в формате "Artist - Title"
	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return TrackTags{
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
		}
	}

	return TrackTags{
		Artist: UnknownArtist,
		Title:  nameWithoutExt,
	}
}
