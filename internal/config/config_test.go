package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

func TestLoadConfigFromFile(t *testing.T) {
	// Создаем временный файл конфигурации
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	// Создаем тестовую конфигурацию
	testConfig := Config{
		CatalogPath:   "/srv/music/catalog.csv",
		AwsBucketName: "test-bucket",
		AwsAccessKey:  "test-access-key",
		AwsSecretKey:  "test-secret-key",
		AwsRegion:     "eu-central-1",
		AwsEndpoint:   "https://storage.example.com",
		BackupPrefix:  "band/",
	}

	// Сериализуем конфигурацию в YAML
	data, err := yaml.Marshal(testConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}

	// Записываем в файл
	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	// Загружаем конфигурацию
	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Проверяем, что конфигурация загружена корректно
	if *loadedConfig != testConfig {
		t.Errorf("Ожидалась конфигурация %+v, получено: %+v", testConfig, *loadedConfig)
	}
	if !loadedConfig.BackupEnabled() {
		t.Error("Ожидалось, что резервное копирование включено")
	}
}

func TestDefaultConfig(t *testing.T) {
	// Создаем временный файл конфигурации с минимальными данными
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "minimal_config.yaml")

	minimalConfig := map[string]string{
		"aws_bucket_name": "test-bucket",
	}

	data, err := yaml.Marshal(minimalConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Проверяем, что незаданные поля получили значения по умолчанию
	if loadedConfig.CatalogPath != DefaultCatalogPath {
		t.Errorf("Ожидался CatalogPath по умолчанию: %s, получено: %s", DefaultCatalogPath, loadedConfig.CatalogPath)
	}
	if loadedConfig.BackupPrefix != DefaultBackupPrefix {
		t.Errorf("Ожидался BackupPrefix по умолчанию: %s, получено: %s", DefaultBackupPrefix, loadedConfig.BackupPrefix)
	}
	if loadedConfig.AwsRegion != "us-east-1" {
		t.Errorf("Ожидался AwsRegion по умолчанию: us-east-1, получено: %s", loadedConfig.AwsRegion)
	}
	if loadedConfig.AwsBucketName != "test-bucket" {
		t.Errorf("Ожидался AwsBucketName: test-bucket, получено: %s", loadedConfig.AwsBucketName)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.CatalogPath != DefaultCatalogPath {
		t.Errorf("Ожидался CatalogPath: %s, получено: %s", DefaultCatalogPath, cfg.CatalogPath)
	}
	if cfg.BackupEnabled() {
		t.Error("Без бакета резервное копирование должно быть выключено")
	}
}

func TestLoadWithExplicitPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("catalog_path: songs.csv\n"), 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	if cfg.CatalogPath != "songs.csv" {
		t.Errorf("Ожидался CatalogPath: songs.csv, получено: %s", cfg.CatalogPath)
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	// Направляем поиск XDG в пустую директорию.
	// Cleanup регистрируется до Setenv, чтобы выполниться после восстановления окружения.
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	if path := Locate(); path != "" {
		t.Skipf("Найден системный файл конфигурации: %s", path)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Ожидалась конфигурация по умолчанию, получена ошибка: %v", err)
	}
	if cfg.CatalogPath != DefaultCatalogPath {
		t.Errorf("Ожидался CatalogPath: %s, получено: %s", DefaultCatalogPath, cfg.CatalogPath)
	}
}

func TestLoadConfigNonExistentFile(t *testing.T) {
	// Пытаемся загрузить несуществующий файл
	_, err := LoadConfig("/non/existent/config.yaml")

	if err == nil {
		t.Fatal("Ожидалась ошибка при загрузке несуществующего файла")
	}

	if !strings.Contains(err.Error(), "no such file") && !strings.Contains(err.Error(), "not found") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	// Создаем временный файл с некорректным YAML
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid_config.yaml")

	invalidYAML := `catalog_path: "songs.csv"
aws_bucket_name: [unclosed array
`
	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	if err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	_, err = LoadConfig(configPath)

	if err == nil {
		t.Fatal("Ожидалась ошибка при загрузке некорректного YAML")
	}

	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}

func TestLoadConfigWithTilde(t *testing.T) {
	// Создаем временный файл конфигурации с тильдой в пути к каталогу
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	testConfig := Config{
		CatalogPath: "~/music/catalog.csv",
	}

	data, err := yaml.Marshal(testConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Проверяем, что тильда раскрывается корректно
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, "music", "catalog.csv")
	if loadedConfig.CatalogPath != expected {
		t.Errorf("Ожидался CatalogPath с раскрытой тильдой: %s, получено: %s", expected, loadedConfig.CatalogPath)
	}
}
