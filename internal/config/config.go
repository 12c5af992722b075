package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP configures the operational server (metrics, health and profiling).
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		Username string `env:"DATABASE_USERNAME" env-default:"mca" yaml:"username"`
		Password string `env:"DATABASE_PASSWORD" env-default:"mca" yaml:"password"`
		Host     string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port     int    `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		SslMode  string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"mca" yaml:"name"`
		// MaxOpenConnections caps the pgx pool size
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections is the number of connections the pool keeps warm
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Worker configures the background job runner.
	Worker struct {
		// MaxWorkers is the number of jobs processed concurrently on the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
		// MaxAttempts is how many times a job is tried before it is discarded
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// RefreshUniquePeriod coalesces stats refresh jobs of the same funding
		RefreshUniquePeriod time.Duration `env:"WORKER_REFRESH_UNIQUE_PERIOD" env-default:"30s" yaml:"refreshUniquePeriod"`
		// ReminderCron is the cron expression of the upcoming payback reminder
		ReminderCron string `env:"WORKER_REMINDER_CRON" env-default:"0 13 * * 1-5" yaml:"reminderCron"`
		// ReminderHorizonDays is how many days ahead the reminder looks
		ReminderHorizonDays int `env:"WORKER_REMINDER_HORIZON_DAYS" env-default:"3" yaml:"reminderHorizonDays"`
	} `yaml:"worker"`

	// Schedule configures the business calendar used to generate payback dates.
	Schedule struct {
		// HolidayFromYear and HolidayToYear bound the federal holidays loaded in the calendar
		HolidayFromYear int `env:"SCHEDULE_HOLIDAY_FROM_YEAR" env-default:"2020" yaml:"holidayFromYear"`
		HolidayToYear   int `env:"SCHEDULE_HOLIDAY_TO_YEAR" env-default:"2035" yaml:"holidayToYear"`
		// HolidayFile is an optional yaml file of extra holidays
		HolidayFile string `env:"SCHEDULE_HOLIDAY_FILE" env-default:"" yaml:"holidayFile"`
		// DefaultConvention applies to plans created without a roll convention
		DefaultConvention string `env:"SCHEDULE_DEFAULT_CONVENTION" env-default:"following" yaml:"defaultConvention"`
	} `yaml:"schedule"`

	// Notifier configures outgoing email.
	Notifier struct {
		// Enabled switches between SMTP delivery and logging the messages
		Enabled  bool   `env:"NOTIFIER_ENABLED" env-default:"false" yaml:"enabled"`
		Host     string `env:"NOTIFIER_HOST" env-default:"localhost" yaml:"host"`
		Port     int    `env:"NOTIFIER_PORT" env-default:"587" yaml:"port"`
		Username string `env:"NOTIFIER_USERNAME" env-default:"" yaml:"username"`
		Password string `env:"NOTIFIER_PASSWORD" env-default:"" yaml:"password"`
		From     string `env:"NOTIFIER_FROM" env-default:"collections@localhost" yaml:"from"`
		// CollectionsEmail receives failed payback alerts
		CollectionsEmail string `env:"NOTIFIER_COLLECTIONS_EMAIL" env-default:"collections@localhost" yaml:"collectionsEmail"`
		// RatePerSecond and Burst throttle outgoing messages
		RatePerSecond float64 `env:"NOTIFIER_RATE_PER_SECOND" env-default:"5" yaml:"ratePerSecond"`
		Burst         int     `env:"NOTIFIER_BURST" env-default:"5" yaml:"burst"`
	} `yaml:"notifier"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing work to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
