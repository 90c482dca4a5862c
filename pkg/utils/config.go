package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Payment   PaymentConfig
	Email     EmailConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string

	// MenuUpdateRequiresAdmin puts PATCH /menu/{id} behind the token+admin gate.
	MenuUpdateRequiresAdmin bool
}

type DatabaseConfig struct {
	URI      string
	Host     string
	User     string
	Password string
	Name     string
	Timeout  time.Duration
}

// ConnectionURI returns DB_URI when set, otherwise builds an Atlas SRV URI.
func (c DatabaseConfig) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		c.User, c.Password, c.Host)
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type PaymentConfig struct {
	SecretKey string
	Currency  string
}

type EmailConfig struct {
	APIKey  string
	Domain  string
	From    string
	ShopURL string
}

type RateLimitConfig struct {
	RedisAddr   string
	MaxRequests int
	Window      time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "bistro-boss")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MENU_UPDATE_REQUIRES_ADMIN", false)
	viper.SetDefault("DB_NAME", "BistroDB")
	viper.SetDefault("DB_TIMEOUT_SECONDS", 10)
	viper.SetDefault("JWT_EXPIRY_MINUTES", 60)
	viper.SetDefault("PAYMENT_CURRENCY", "usd")
	viper.SetDefault("SHOP_URL", "https://bistro-boss-restaurant-mern.web.app/order/salad")
	viper.SetDefault("RATE_LIMIT_MAX", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)

	// .env is optional; deployments usually inject plain environment variables
	if _, err := os.Stat(".env"); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:                    viper.GetString("APP_NAME"),
			Port:                    viper.GetString("PORT"),
			Debug:                   viper.GetBool("DEBUG"),
			LogPath:                 viper.GetString("LOG_PATH"),
			MenuUpdateRequiresAdmin: viper.GetBool("MENU_UPDATE_REQUIRES_ADMIN"),
		},
		Database: DatabaseConfig{
			URI:      viper.GetString("DB_URI"),
			Host:     viper.GetString("DB_HOST"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			Timeout:  time.Duration(viper.GetInt("DB_TIMEOUT_SECONDS")) * time.Second,
		},
		JWT: JWTConfig{
			Secret: viper.GetString("ACCESS_TOKEN_SECRET"),
			Expiry: time.Duration(viper.GetInt("JWT_EXPIRY_MINUTES")) * time.Minute,
		},
		Payment: PaymentConfig{
			SecretKey: viper.GetString("STRIPE_SECRET_KEY"),
			Currency:  viper.GetString("PAYMENT_CURRENCY"),
		},
		Email: EmailConfig{
			APIKey:  viper.GetString("MAIL_GUN_API_KEY"),
			Domain:  viper.GetString("MAIL_GUN_SENDING_DOMAIN"),
			From:    viper.GetString("MAIL_FROM"),
			ShopURL: viper.GetString("SHOP_URL"),
		},
		RateLimit: RateLimitConfig{
			RedisAddr:   viper.GetString("REDIS_ADDR"),
			MaxRequests: viper.GetInt("RATE_LIMIT_MAX"),
			Window:      time.Duration(viper.GetInt("RATE_LIMIT_WINDOW_SECONDS")) * time.Second,
		},
	}

	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}
	if config.Email.From == "" && config.Email.Domain != "" {
		config.Email.From = fmt.Sprintf("Bistro Boss <postmaster@%s>", config.Email.Domain)
	}

	return config, nil
}
