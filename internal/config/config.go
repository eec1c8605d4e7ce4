package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	DBDriver    string
	DatabaseURL string

	KafkaBrokers []string

	RabbitMQURL   string
	RabbitMQQueue string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string
}

func LoadConfig() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}
	return Load()
}

// Load reads the process environment only.
func Load() *Config {
	return load(os.Getenv)
}

func load(getenv func(string) string) *Config {
	e := env(getenv)
	return &Config{
		ServiceName: e.str("SERVICE_NAME", "shop_api"),
		ServerPort:  e.port("SERVER_PORT", 8080),
		LogLevel:    e.str("LOG_LEVEL", "info"),

		DBDriver:    strings.ToLower(e.str("DB_DRIVER", DriverSQLite)),
		DatabaseURL: e.str("DATABASE_URL", "file:database.db"),

		KafkaBrokers: e.list("KAFKA_BROKERS"),

		RabbitMQURL:   e.str("RABBITMQ_URL", ""),
		RabbitMQQueue: e.str("RABBITMQ_QUEUE", "warehouse_orders"),

		ESURL:      e.str("ES_URL", ""),
		ESUser:     e.str("ES_USER", ""),
		ESPassword: e.str("ES_PASSWORD", ""),
		ESIndex:    e.str("ES_INDEX", "products"),
	}
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.ServerPort)
}

// env reads trimmed values; empty means unset.
type env func(string) string

func (e env) str(key, def string) string {
	if v := strings.TrimSpace(e(key)); v != "" {
		return v
	}
	return def
}

// port falls back to def for anything that is not a valid TCP port.
func (e env) port(key string, def int) int {
	n, err := strconv.Atoi(e.str(key, ""))
	if err != nil || n < 1 || n > 65535 {
		return def
	}
	return n
}

// list splits a comma separated value and drops empty entries. Unset is nil.
func (e env) list(key string) []string {
	var out []string
	for _, p := range strings.Split(e(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
