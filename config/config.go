package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Site    SiteConfig    `yaml:"site"`
	API     APIConfig     `yaml:"api"`
	Server  ServerConfig  `yaml:"server"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SiteConfig holds the public identity of the publication, used by
// templates, the RSS feed and the sitemap.
type SiteConfig struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// APIConfig points at the remote content API that owns all persistence.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	Retry   RetryConfig   `yaml:"retry"`
}

// RetryConfig bounds the optional retry decorator around idempotent reads.
// MaxAttempts <= 1 disables retries, which is the default.
type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type ServerConfig struct {
	Addr          string `yaml:"addr"`
	SessionSecret string `yaml:"session_secret"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &c)
	if err != nil {
		panic(err)
	}
	c.setDefaults()
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func (c *AppConfig) setDefaults() {
	if c.Site.Name == "" {
		c.Site.Name = "Game Press"
	}
	if c.Site.URL == "" {
		c.Site.URL = "http://localhost:3000"
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = os.Getenv("CONTENT_API_BASE_URL")
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 10 * time.Second
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":3000"
	}
	if c.Server.SessionSecret == "" {
		c.Server.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
