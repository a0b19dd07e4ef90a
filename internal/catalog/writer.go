package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hazadus/go-setlist/internal/song"
	"github.com/hazadus/go-setlist/internal/utils"
)

// TimestampLayout формат даты в строке-разделителе сохраненного сетлиста
const TimestampLayout = "2006/01/02 15:04:05"

var fieldReplacer = strings.NewReplacer(",", ";", "\r\n", " ", "\n", " ", "\r", " ")

// CleanField готовит произвольный текст к записи в одно поле каталога:
// запятые заменяются на точку с запятой, переводы строк на пробелы
func CleanField(s string) string {
	return strings.TrimSpace(fieldReplacer.Replace(s))
}

// FormatRow форматирует песню как строку каталога (без перевода строки)
func FormatRow(s *song.Song) string {
	fields := []string{
		s.Title(),
		strconv.Itoa(s.IndexNumber()),
		strconv.Itoa(s.BPM()),
		song.FormatDuration(s.DurationSeconds()),
		s.Key(),
		strconv.Itoa(s.Danceability()),
		strconv.Itoa(s.Happy()),
		strconv.Itoa(s.Sad()),
		strconv.Itoa(s.Relaxed()),
		strconv.Itoa(s.Aggressiveness()),
		s.Notes(),
	}
	return strings.Join(fields, ",")
}

// WriteSetlist записывает строку-разделитель с датой сохранения
// и по одной строке на каждую запись сетлиста
func WriteSetlist(w io.Writer, songs []*song.Song, savedAt time.Time) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "\n%s%s %s\n",
		setlistMarker, savedAt.Format(TimestampLayout), markerPrefix); err != nil {
		return err
	}
	for _, s := range songs {
		if _, err := bw.WriteString(FormatRow(s) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// AppendSetlist дописывает сетлист в конец файла каталога
func AppendSetlist(filePath string, songs []*song.Song, savedAt time.Time) error {
	path, err := utils.ExpandPath(filePath)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("ошибка открытия каталога для записи: %w", err)
	}

	if err := WriteSetlist(file, songs, savedAt); err != nil {
		file.Close()
		return fmt.Errorf("ошибка записи сетлиста: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("ошибка записи сетлиста: %w", err)
	}
	return nil
}

// AppendSong дописывает песню в каталог. Если файла нет, он создается
// вместе со строкой заголовка.
func AppendSong(filePath string, s *song.Song) error {
	path, err := utils.ExpandPath(filePath)
	if err != nil {
		return err
	}

	var prefix string
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("ошибка создания директории каталога: %w", err)
		}
		prefix = Header + "\n"
	case err != nil:
		return fmt.Errorf("ошибка чтения каталога: %w", err)
	case info.Size() > 0:
		// Файл мог быть дописан без перевода строки в конце
		last, err := lastByte(path, info.Size())
		if err != nil {
			return err
		}
		if last != '\n' {
			prefix = "\n"
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("ошибка открытия каталога для записи: %w", err)
	}

	if _, err := file.WriteString(prefix + FormatRow(s) + "\n"); err != nil {
		file.Close()
		return fmt.Errorf("ошибка записи песни: %w", err)
	}
	return file.Close()
}

func lastByte(path string, size int64) (byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("ошибка чтения каталога: %w", err)
	}
	defer file.Close()

	buf := make([]byte, 1)
	if _, err := file.ReadAt(buf, size-1); err != nil {
		return 0, fmt.Errorf("ошибка чтения каталога: %w", err)
	}
	return buf[0], nil
}
