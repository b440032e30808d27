package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env           string             `yaml:"env" env:"ENV" env-default:"local"`
	SessionSecret string             `yaml:"session_secret" env:"SESSION_SECRET" env-default:"miyalefilms-dev-secret"`
	HTTP          HTTPConfig         `yaml:"http"`
	PortfolioAPI  PortfolioAPIConfig `yaml:"portfolio_api"`
	WhatsApp      WhatsAppConfig     `yaml:"whatsapp"`
	Contact       ContactConfig      `yaml:"contact"`
}

type HTTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// PortfolioAPIConfig points at the content backend. BaseURL may be left
// empty: the site then runs in a degraded mode where pages that need content
// explain the missing configuration instead of rendering data.
type PortfolioAPIConfig struct {
	BaseURL  string        `yaml:"base_url" env:"PORTFOLIO_API_BASE"`
	Timeout  time.Duration `yaml:"timeout" env-default:"10s"`
	CacheTTL time.Duration `yaml:"cache_ttl" env-default:"0s"`
}

type WhatsAppConfig struct {
	Number string `yaml:"number" env:"WHATSAPP_NUMBER" env-default:"254724269201"`
}

type ContactConfig struct {
	Phone string `yaml:"phone" env-default:"+254724269201"`
	Email string `yaml:"email" env-default:"davidomuga@gmail.com"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
