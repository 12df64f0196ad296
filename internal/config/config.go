package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

// Таймзона для дат без явного смещения, выставляется из APP_TIMEZONE
var TimeZone = time.Local

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"America/Sao_Paulo"`
		LogLevel string      `env:"APP_LOG_LEVEL" envDefault:"info"`
	}

	HTTP struct {
		Port           string  `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host           string  `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
		RateLimitRPS   float64 `env:"HTTP_RATE_LIMIT_RPS" envDefault:"10"`
		RateLimitBurst int     `env:"HTTP_RATE_LIMIT_BURST" envDefault:"20"`
	}

	Scheduler struct {
		URL     string        `env:"SCHEDULER_URL" envDefault:"http://agendamento-consultas:3000/agendamentos"`
		Timeout time.Duration `env:"SCHEDULER_TIMEOUT" envDefault:"10s"`
	}

	Directory struct {
		URL     string        `env:"DIRECTORY_URL" envDefault:"https://api.mockaroo.com/api/generate.json"`
		Schema  string        `env:"DIRECTORY_SCHEMA" envDefault:"Doctor"`
		APIKey  string        `env:"API_KEY"`
		Timeout time.Duration `env:"DIRECTORY_TIMEOUT" envDefault:"10s"`
	}

	Slots struct {
		DurationMinutes int `env:"SLOTS_DURATION_MINUTES" envDefault:"60"`
		HorizonDays     int `env:"SLOTS_HORIZON_DAYS" envDefault:"5"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS"`
		BasicClients       []ConfigBasicClient
	}

	RabbitMQ struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED"`
		URL      string `env:"RABBITMQ_URL"`
		Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"directory"`
		Queue    string `env:"RABBITMQ_QUEUE" envDefault:"appointments-gateway.directory"`
		Bind     string `env:"RABBITMQ_BIND" envDefault:"*.appointments-gateway.#"`
	}

	Cache struct {
		Enabled     bool          `env:"CACHE_ENABLED"`
		DoctorsSize int           `env:"CACHE_DOCTORS_SIZE" envDefault:"1000"`
		DoctorsTTL  time.Duration `env:"CACHE_DOCTORS_TTL" envDefault:"30m"`
	}
}

func NewConfig() (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, err
	}
	TimeZone = loc

	cfg.Auth.BasicClients = ParseBasicClients(cfg.Auth.BasicClientsString)

	// Кэш без инвалидации через RabbitMQ не включаем
	if !cfg.RabbitMQ.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

// Разбор строки вида "user:pass,user2:pass2", некорректные пары пропускаются
func ParseBasicClients(s string) []ConfigBasicClient {
	clients := []ConfigBasicClient{}
	if s == "" {
		return clients
	}

	for _, pair := range strings.Split(s, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) == 2 && parts[0] != "" {
			clients = append(clients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	return clients
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}

func (c *Config) SlotDuration() time.Duration {
	return time.Duration(c.Slots.DurationMinutes) * time.Minute
}
