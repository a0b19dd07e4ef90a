// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-setlist/internal/utils"
)

const (
	// DefaultCatalogPath каталог по умолчанию ищется в текущей директории
	DefaultCatalogPath = "AxigallyDatabase.csv"
	// DefaultBackupPrefix префикс ключей резервных копий в бакете
	DefaultBackupPrefix = "setlist/"

	xdgConfigFile = "setlist/config.yaml"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	CatalogPath   string `yaml:"catalog_path"`
	AwsBucketName string `yaml:"aws_bucket_name"`
	AwsAccessKey  string `yaml:"aws_access_key"`
	AwsSecretKey  string `yaml:"aws_secret_key"`
	AwsRegion     string `yaml:"aws_region"`
	AwsEndpoint   string `yaml:"aws_endpoint"`
	BackupPrefix  string `yaml:"backup_prefix"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// LoadConfig загружает конфигурацию приложения из указанного файла
func LoadConfig(filePath string) (*Config, error) {
	path, err := utils.ExpandPath(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	// Раскрываем тильду в пути к каталогу
	if config.CatalogPath, err = utils.ExpandPath(config.CatalogPath); err != nil {
		return nil, err
	}

	return config, nil
}

// Locate ищет файл конфигурации в директориях XDG.
// Возвращает пустую строку, если файл не найден.
func Locate() string {
	path, err := xdg.SearchConfigFile(xdgConfigFile)
	if err != nil {
		return ""
	}
	return path
}

// Load загружает конфигурацию из filePath, а если путь не указан -
// из файла, найденного Locate. Без файла используются значения по умолчанию.
func Load(filePath string) (*Config, error) {
	if filePath == "" {
		filePath = Locate()
	}
	if filePath == "" {
		return Default(), nil
	}
	return LoadConfig(filePath)
}

// BackupEnabled сообщает, настроен ли бакет для резервных копий
func (c *Config) BackupEnabled() bool {
	return c.AwsBucketName != ""
}

func (c *Config) applyDefaults() {
	if c.CatalogPath == "" {
		c.CatalogPath = DefaultCatalogPath
	}
	if c.BackupPrefix == "" {
		c.BackupPrefix = DefaultBackupPrefix
	}
	if c.AwsRegion == "" {
		c.AwsRegion = "us-east-1"
	}
}
