package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-setlist/internal/backup"
	"github.com/hazadus/go-setlist/internal/s3"
	"github.com/hazadus/go-setlist/internal/utils"
)

// createBackupCommand создает команду backup с привязкой к экземпляру приложения
func (app *Application) createBackupCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Upload the catalog file to S3 storage",
		Long:  `Upload a timestamped copy of the catalog file to the configured S3 bucket with progress tracking.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !app.Config.BackupEnabled() {
				return fmt.Errorf("не указан aws_bucket_name в конфигурации")
			}

			s3Uploader, err := s3.NewUploader(&s3.Config{
				Region:     app.Config.AwsRegion,
				AccessKey:  app.Config.AwsAccessKey,
				SecretKey:  app.Config.AwsSecretKey,
				Endpoint:   app.Config.AwsEndpoint,
				BucketName: app.Config.AwsBucketName,
			})
			if err != nil {
				return fmt.Errorf("ошибка создания S3 uploader: %w", err)
			}

			// Создаем контекст с таймаутом для загрузки (10 минут)
			uploadCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
			defer cancel()
			return app.backupCatalog(uploadCtx, backup.NewService(s3Uploader, app.Config.BackupPrefix))
		},
	}
}

// backupCatalog загружает файл каталога через сервис резервного копирования
func (app *Application) backupCatalog(ctx context.Context, service *backup.Service) error {
	path, err := utils.ExpandPath(app.Config.CatalogPath)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("каталог не найден: %w", err)
	}
	fileSize := info.Size()

	fmt.Printf("📤 Загружаем каталог в S3:\n")
	fmt.Printf("   Файл: %s\n", path)
	fmt.Printf("   Размер: %s\n", backup.FormatFileSize(fileSize))
	fmt.Printf("   Бакет: %s\n", app.Config.AwsBucketName)
	fmt.Println()

	// Создаем канал для отслеживания прогресса
	progressChan := make(chan int64)
	done := make(chan struct{})

	// Запускаем горутину для отображения прогресса
	go func() {
		defer close(done)
		startTime := time.Now()

		for progress := range progressChan {
			if progress <= 0 || fileSize == 0 {
				continue
			}
			elapsed := time.Since(startTime)
			percentage := float64(progress) / float64(fileSize) * 100

			// Вычисляем скорость загрузки
			var speed float64
			if elapsed > 0 {
				speed = float64(progress) / elapsed.Seconds()
			}

			// Вычисляем оставшееся время
			var remainingTime time.Duration
			if speed > 0 {
				remainingTime = time.Duration(float64(fileSize-progress) / speed * float64(time.Second))
			}

			fmt.Printf("\r📊 Прогресс: %.1f%% | Скорость: %s/s | Прошло: %s | Осталось: %s",
				percentage,
				backup.FormatFileSize(int64(speed)),
				backup.FormatDuration(elapsed),
				backup.FormatDuration(remainingTime))
		}
	}()

	result, err := service.BackupCatalog(ctx, path, func(bytesRead int64) {
		select {
		case progressChan <- bytesRead:
		case <-ctx.Done():
		}
	})

	// Закрываем канал прогресса и ждем завершения вывода
	close(progressChan)
	<-done

	if err != nil {
		fmt.Printf("\n❌ Ошибка загрузки: %v\n", err)
		return fmt.Errorf("ошибка резервного копирования: %w", err)
	}

	// Проверяем, не была ли операция отменена
	if ctx.Err() != nil {
		return fmt.Errorf("операция отменена: %w", ctx.Err())
	}

	fmt.Printf("\n✅ Каталог успешно сохранен в S3!\n")
	fmt.Printf("   Ключ: %s\n", result.Key)
	fmt.Printf("   URL: %s\n", result.URL)
	return nil
}
