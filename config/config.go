package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Environment string
	Name        string
	Version     string
	Salon       SalonConfig
	HTTP        HTTPConfig
	Postgres    PostgresConfig
	JWT         JWTConfig
	S3          S3Config
	Groq        GroqConfig
	Agenda      AgendaConfig
}

type SalonConfig struct {
	Name string
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxHeaderMB  int
}

type PostgresConfig struct {
	Host               string
	Port               string
	Username           string
	Password           string
	DBName             string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	MaxLifetime        time.Duration
}

type JWTConfig struct {
	SigningKey      string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
}

type GroqConfig struct {
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// AgendaConfig define a janela de atendimento e a granularidade dos slots.
// A janela é semiaberta: o último slot começa antes de CloseTime.
type AgendaConfig struct {
	OpenTime    string
	CloseTime   string
	SlotMinutes int
}

func NewConfig() (*Config, error) {
	httpReadTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	httpWriteTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	postgresMaxLifetime, err := time.ParseDuration(getEnv("POSTGRES_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, err
	}

	jwtAccessTokenTTL, err := time.ParseDuration(getEnv("JWT_ACCESS_TOKEN_TTL", "15m"))
	if err != nil {
		return nil, err
	}

	jwtRefreshTokenTTL, err := time.ParseDuration(getEnv("JWT_REFRESH_TOKEN_TTL", "24h"))
	if err != nil {
		return nil, err
	}

	groqTimeout, err := time.ParseDuration(getEnv("GROQ_TIMEOUT", "60s"))
	if err != nil {
		return nil, err
	}

	agendaOpen := getEnv("AGENDA_OPEN_TIME", "09:00")
	if _, err := time.Parse("15:04", agendaOpen); err != nil {
		return nil, fmt.Errorf("AGENDA_OPEN_TIME inválido (%q): use o formato HH:MM", agendaOpen)
	}

	agendaClose := getEnv("AGENDA_CLOSE_TIME", "19:00")
	if _, err := time.Parse("15:04", agendaClose); err != nil {
		return nil, fmt.Errorf("AGENDA_CLOSE_TIME inválido (%q): use o formato HH:MM", agendaClose)
	}

	agendaSlot := getEnvAsInt("AGENDA_SLOT_MINUTES", 30)
	if agendaSlot <= 0 {
		return nil, fmt.Errorf("AGENDA_SLOT_MINUTES deve ser maior que zero")
	}

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Name:        getEnv("APP_NAME", "nailspro"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		Salon: SalonConfig{
			Name: getEnv("SALON_NAME", "NailsPro Studio"),
		},
		HTTP: HTTPConfig{
			Port:         getEnv("HTTP_PORT", "8080"),
			ReadTimeout:  httpReadTimeout,
			WriteTimeout: httpWriteTimeout,
			MaxHeaderMB:  getEnvAsInt("HTTP_MAX_HEADER_MB", 1),
		},
		Postgres: PostgresConfig{
			Host:               getEnv("POSTGRES_HOST", "localhost"),
			Port:               getEnv("POSTGRES_PORT", "5432"),
			Username:           getEnv("POSTGRES_USER", "postgres"),
			Password:           getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:             getEnv("POSTGRES_DB", "nailspro"),
			SSLMode:            getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConnections:     getEnvAsInt("POSTGRES_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("POSTGRES_MAX_IDLE_CONNECTIONS", 5),
			MaxLifetime:        postgresMaxLifetime,
		},
		JWT: JWTConfig{
			SigningKey:      getEnv("JWT_SIGNING_KEY", "your_secret_key"),
			AccessTokenTTL:  jwtAccessTokenTTL,
			RefreshTokenTTL: jwtRefreshTokenTTL,
		},
		S3: S3Config{
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			Region:          getEnv("S3_REGION", "us-east-1"),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			Bucket:          getEnv("S3_BUCKET", "nailspro"),
			UseSSL:          getEnv("S3_USE_SSL", "true") == "true",
		},
		Groq: GroqConfig{
			APIKey:      getEnv("GROQ_API_KEY", ""),
			Model:       getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
			Temperature: getEnvAsFloat("GROQ_TEMPERATURE", 0.4),
			Timeout:     groqTimeout,
		},
		Agenda: AgendaConfig{
			OpenTime:    agendaOpen,
			CloseTime:   agendaClose,
			SlotMinutes: agendaSlot,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value := 0
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value := 0.0
	_, err := fmt.Sscanf(valueStr, "%f", &value)
	if err != nil {
		return defaultValue
	}

	return value
}
