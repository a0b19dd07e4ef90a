// Package backup предоставляет резервное копирование файла каталога в S3
package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/dustin/go-humanize"
)

// keyLayout формат даты в ключе резервной копии
const keyLayout = "20060102-150405"

// FileUploader загружает данные в хранилище и возвращает URL объекта
type FileUploader interface {
	UploadFile(ctx context.Context, reader io.Reader, key, contentType string) (string, error)
}

// Service управляет резервным копированием каталога
type Service struct {
	uploader FileUploader
	prefix   string
	now      func() time.Time
}

// NewService создает новый сервис резервного копирования
func NewService(uploader FileUploader, prefix string) *Service {
	return &Service{
		uploader: uploader,
		prefix:   prefix,
		now:      time.Now,
	}
}

// Result содержит результат резервного копирования
type Result struct {
	URL  string
	Key  string
	Size int64
}

// Key возвращает ключ объекта для копии, сделанной в момент t
func (s *Service) Key(t time.Time) string {
	return path.Join(s.prefix, "catalog-"+t.Format(keyLayout)+".csv")
}

// BackupCatalog загружает файл каталога в хранилище
func (s *Service) BackupCatalog(ctx context.Context, filePath string, progressCallback func(int64)) (*Result, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия каталога: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	// Создаем reader с отслеживанием прогресса
	var reader io.Reader = file
	if progressCallback != nil {
		reader = &ProgressReader{
			Reader:     file,
			Size:       info.Size(),
			OnProgress: progressCallback,
		}
	}

	key := s.Key(s.now())
	url, err := s.uploader.UploadFile(ctx, reader, key, "text/csv")
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки в S3: %w", err)
	}

	return &Result{
		URL:  url,
		Key:  key,
		Size: info.Size(),
	}, nil
}

// ProgressReader структура для отслеживания прогресса чтения
type ProgressReader struct {
	io.Reader
	Size       int64
	OnProgress func(int64)
	bytesRead  int64
}

func (pr *ProgressReader) Read(p []byte) (n int, err error) {
	n, err = pr.Reader.Read(p)
	pr.bytesRead += int64(n)
	if pr.OnProgress != nil {
		pr.OnProgress(pr.bytesRead)
	}
	return n, err
}

// FormatFileSize форматирует размер файла в читаемом виде
func FormatFileSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatDuration форматирует длительность времени
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
