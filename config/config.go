package config

import (
	"log"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultPort              = "8080"
	DefaultRedisAddr         = "localhost:6379"
	DefaultRedisDB           = 0
	DefaultSessionTTLMinutes = 30
	DefaultDBMaxConns        = 10
	DefaultLogDir            = "."
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "json"
)

type Config struct {
	Env               string
	Port              string
	DBURL             string
	DBMaxConns        int
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	SessionSecret     string
	SessionTTLMinutes int
	CookieSecure      bool
	LogDir            string
	LogLevel          string
	LogFormat         string
}

// Load resolves the configuration from the process environment, falling back
// to config/.env.dev (config/.env.prod when ENV=production) and then to the
// package defaults. The env file never overrides a variable that is set.
func Load() *Config {
	r := newReader(nil)
	environment := r.getEnv("ENV", "development")

	envFile := ".env.dev"
	if environment == "production" {
		envFile = ".env.prod"
	}
	fileValues, err := godotenv.Read(filepath.Join("config", envFile))
	if err != nil {
		log.Printf("No %s file loaded, using environment only", envFile)
	}
	r = newReader(fileValues)

	return &Config{
		Env:               environment,
		Port:              r.getEnv("PORT", DefaultPort),
		DBURL:             r.mustGetEnv("DB_URL"),
		DBMaxConns:        r.getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		RedisAddr:         r.getEnv("REDIS_ADDR", DefaultRedisAddr),
		RedisPassword:     r.getEnv("REDIS_PASSWORD", ""),
		RedisDB:           r.getEnvAsInt("REDIS_DB", DefaultRedisDB),
		SessionSecret:     r.mustGetEnv("SESSION_SECRET"),
		SessionTTLMinutes: r.getEnvAsInt("SESSION_TTL_MINUTES", DefaultSessionTTLMinutes),
		CookieSecure:      r.getEnvAsBool("COOKIE_SECURE", environment == "production"),
		LogDir:            r.getEnv("LOG_DIR", DefaultLogDir),
		LogLevel:          r.getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:         r.getEnv("LOG_FORMAT", DefaultLogFormat),
	}
}

// reader looks keys up in the environment first and in the env file second.
type reader struct {
	v *viper.Viper
}

func newReader(fileValues map[string]string) *reader {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range fileValues {
		v.SetDefault(key, value)
	}
	return &reader{v: v}
}

func (r *reader) getEnv(key string, defaultVal string) string {
	if value := r.v.GetString(key); value != "" {
		return value
	}
	return defaultVal
}

func (r *reader) mustGetEnv(key string) string {
	if value := r.v.GetString(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func (r *reader) getEnvAsInt(key string, defaultVal int) int {
	valStr := r.v.GetString(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func (r *reader) getEnvAsBool(key string, defaultVal bool) bool {
	valStr := r.v.GetString(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}
