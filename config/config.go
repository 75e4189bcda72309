package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	Env         string `mapstructure:"ENV"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	MongoDBName string `mapstructure:"MONGO_DB_NAME"`

	// Redis configuration (mail dispatch queue).
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisMailQueueDB int    `mapstructure:"REDIS_MAIL_QUEUE_DB"`

	// Outbound mail provider.
	SMTPHost           string `mapstructure:"SMTP_HOST"`
	SMTPPort           string `mapstructure:"SMTP_PORT"`
	SMTPUser           string `mapstructure:"SMTP_USER"`
	SMTPPass           string `mapstructure:"SMTP_PASS"`
	NotifyEmail        string `mapstructure:"NOTIFY_EMAIL"`
	MailSendTimeoutSec int    `mapstructure:"MAIL_SEND_TIMEOUT_SEC"`

	// Shared token for the operator endpoints.
	AdminToken string `mapstructure:"ADMIN_TOKEN"`

	// Rate limiting.
	ApptRateLimit       int `mapstructure:"APPT_RATE_LIMIT"`
	ApptRateWindowMin   int `mapstructure:"APPT_RATE_WINDOW_MIN"`
	GlobalRateLimit     int `mapstructure:"GLOBAL_RATE_LIMIT"`
	GlobalRateWindowMin int `mapstructure:"GLOBAL_RATE_WINDOW_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB_NAME", "mentesana")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_MAIL_QUEUE_DB", 0)
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", "465")
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASS", "")
	viper.SetDefault("NOTIFY_EMAIL", "")
	viper.SetDefault("MAIL_SEND_TIMEOUT_SEC", 10)
	viper.SetDefault("ADMIN_TOKEN", "")
	viper.SetDefault("APPT_RATE_LIMIT", 5)
	viper.SetDefault("APPT_RATE_WINDOW_MIN", 15)
	viper.SetDefault("GLOBAL_RATE_LIMIT", 100)
	viper.SetDefault("GLOBAL_RATE_WINDOW_MIN", 15)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The notification recipient falls back to the sending account, so the
	// operator mails themselves by default.
	if AppConfig.NotifyEmail == "" {
		AppConfig.NotifyEmail = AppConfig.SMTPUser
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
