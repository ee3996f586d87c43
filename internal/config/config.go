package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read once at startup. Every knob the process needs lives here;
// nothing else reads the environment directly.
type Config struct {
	Port string `env:"PORT" envDefault:"3000"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"bizdash"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	KafkaBroker string `env:"KAFKA_BROKER"`

	JWTSecret string `env:"JWT_SECRET,required"`

	// ProfitFormula selects how net profit is computed: "standard"
	// (revenue minus cost) or "legacy" (the historical double-count kept
	// for comparison against old reports).
	ProfitFormula string `env:"PROFIT_FORMULA" envDefault:"standard"`

	MigrateOnStart bool `env:"MIGRATE_ON_START" envDefault:"true"`
}

// Load reads .env if present, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
