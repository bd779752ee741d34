package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Key           string `yaml:"key"`
	Issuer        string `yaml:"issuer"`
	Audience      string `yaml:"audience"`
	ExpireMinutes int    `yaml:"expire_minutes"`
}

type AuthConfig struct {
	EnforceRoutes   bool   `yaml:"enforce_routes"`
	LoginRateLimit  int    `yaml:"login_rate_limit"`
	LoginRateWindow string `yaml:"login_rate_window"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Auth     AuthConfig     `yaml:"auth"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

// Config is the resolved process-wide configuration. It is built once
// at startup and never mutated afterwards.
type Config struct {
	Port    string
	GinMode string

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTKey      string
	JWTIssuer   string
	JWTAudience string
	TokenTTL    time.Duration

	EnforceRoutes   bool
	LoginRateLimit  int
	LoginRateWindow time.Duration

	TwilioSID   string
	TwilioToken string
	TwilioFrom  string

	CasbinModelPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	path := env("CONFIG_PATH", "config/config.yml")
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Environment overrides for deployment-specific values
	configFile.Database.DSN = env("DATABASE_DSN", configFile.Database.DSN)
	configFile.Redis.Addr = env("REDIS_ADDR", configFile.Redis.Addr)
	configFile.Redis.Password = env("REDIS_PASSWORD", configFile.Redis.Password)
	configFile.JWT.Key = env("JWT_KEY", configFile.JWT.Key)
	configFile.Twilio.AccountSID = env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID)
	configFile.Twilio.AuthToken = env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken)
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT override: %w", err)
		}
		configFile.App.Port = p
	}

	// Missing signing settings must stop the process before it serves
	// any authentication traffic.
	if configFile.JWT.Key == "" {
		return nil, fmt.Errorf("jwt.key is required")
	}
	if configFile.JWT.Issuer == "" || configFile.JWT.Audience == "" {
		return nil, fmt.Errorf("jwt.issuer and jwt.audience are required")
	}
	if configFile.JWT.ExpireMinutes <= 0 {
		return nil, fmt.Errorf("jwt.expire_minutes must be a positive integer")
	}

	window := 15 * time.Minute
	if configFile.Auth.LoginRateWindow != "" {
		window, err = time.ParseDuration(configFile.Auth.LoginRateWindow)
		if err != nil {
			return nil, fmt.Errorf("invalid login rate window: %w", err)
		}
	}

	return &Config{
		Port:            fmt.Sprintf("%d", configFile.App.Port),
		GinMode:         configFile.App.GinMode,
		DSN:             configFile.Database.DSN,
		RedisAddr:       configFile.Redis.Addr,
		RedisPassword:   configFile.Redis.Password,
		RedisDB:         configFile.Redis.DB,
		JWTKey:          configFile.JWT.Key,
		JWTIssuer:       configFile.JWT.Issuer,
		JWTAudience:     configFile.JWT.Audience,
		TokenTTL:        time.Duration(configFile.JWT.ExpireMinutes) * time.Minute,
		EnforceRoutes:   configFile.Auth.EnforceRoutes,
		LoginRateLimit:  configFile.Auth.LoginRateLimit,
		LoginRateWindow: window,
		TwilioSID:       configFile.Twilio.AccountSID,
		TwilioToken:     configFile.Twilio.AuthToken,
		TwilioFrom:      configFile.Twilio.FromNumber,
		CasbinModelPath: configFile.Casbin.ModelPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
