package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigurationFile = "explorer.yaml"
	DefaultMaxUploadSize     = 2 * 1024 * 1024
)

type Configuration struct {
	Storage  StorageConfig  `yaml:"storage"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
}

type StorageConfig struct {
	Driver        string      `yaml:"driver"`
	Path          string      `yaml:"path"`
	MaxUploadSize int64       `yaml:"maxUploadSize"`
	Minio         MinioConfig `yaml:"minio"`
}

type MinioConfig struct {
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"accessKeyId"`
	SecretAccessKey string `yaml:"secretAccessKey"`
	UseSSL          bool   `yaml:"useSSL"`
	BucketName      string `yaml:"bucketName"`
}

type DatabaseConfig struct {
	Driver     string `yaml:"driver"`
	SqlitePath string `yaml:"sqlitePath"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"requestConfig"`
	LogConfig     LogConfig     `yaml:"logConfig"`
	CleanConfig   CleanConfig   `yaml:"cleanConfig"`
}

type RequestConfig struct {
	// SizeLimit is the request body limit in MiB.
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type CleanConfig struct {
	Schedule    string        `yaml:"schedule"`
	GracePeriod time.Duration `yaml:"gracePeriod"`
}

// LoadConfiguration reads the yaml file at configurationFilePath. A missing
// file is not an error: defaults are used instead. A .env file next to the
// process is loaded first so DB_* variables can live there.
func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var config Configuration
	data, err := os.ReadFile(configurationFilePath)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, &config); err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Path returns the configuration file to use, honouring EXPLORER_CONFIG.
func Path() string {
	if p := os.Getenv("EXPLORER_CONFIG"); p != "" {
		return p
	}
	return DefaultConfigurationFile
}

func (c *Configuration) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Server.Concurrency == 0 {
		c.Server.Concurrency = 256
	}
	if c.Server.RequestConfig.SizeLimit == 0 {
		c.Server.RequestConfig.SizeLimit = 4
	}
	if c.Server.LogConfig.Level == "" {
		c.Server.LogConfig.Level = "info"
	}
	if c.Server.LogConfig.Format == "" {
		c.Server.LogConfig.Format = "text"
	}
	if c.Server.LogConfig.Output == "" {
		c.Server.LogConfig.Output = "stdout"
	}
	if c.Server.CleanConfig.Schedule == "" {
		c.Server.CleanConfig.Schedule = "@every 1h"
	}
	if c.Server.CleanConfig.GracePeriod == 0 {
		c.Server.CleanConfig.GracePeriod = 10 * time.Minute
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.SqlitePath == "" {
		c.Database.SqlitePath = "explorer.db"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "disk"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "./uploads"
	}
	if c.Storage.MaxUploadSize == 0 {
		c.Storage.MaxUploadSize = DefaultMaxUploadSize
	}
}

func (c *Configuration) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	switch c.Storage.Driver {
	case "disk":
	case "minio":
		if c.Storage.Minio.Endpoint == "" || c.Storage.Minio.BucketName == "" {
			return errors.New("minio storage requires endpoint and bucketName")
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if c.Storage.MaxUploadSize < 0 {
		return errors.New("maxUploadSize must not be negative")
	}
	return nil
}
