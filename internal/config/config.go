package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Totarae/EazyBank/internal/model"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Режимы хранения данных сервиса
const (
	ModeDatabase = "database"
	ModeFile     = "file"
	ModeMemory   = "memory"
)

// Адреса по умолчанию для каждого приложения
var defaultAddresses = map[string]string{
	"accounts":     "localhost:8080",
	"loans":        "localhost:8090",
	"cards":        "localhost:9000",
	"gateway":      "localhost:8072",
	"configserver": "localhost:8071",
}

// Config хранит конфигурацию приложения
type Config struct {
	Service           string            `json:"-"`
	ServerAddress     string            `json:"server_address"`
	GRPCAddress       string            `json:"grpc_address"`
	DatabaseDSN       string            `json:"database_dsn"`
	FileStoragePath   string            `json:"file_storage_path"`
	EnableHTTPS       bool              `json:"enable_https"`
	TLSCertPath       string            `json:"tls_cert_path"`
	TLSKeyPath        string            `json:"tls_key_path"`
	Mode              string            `json:"-"`
	LogLevel          string            `json:"log_level"`
	LogFormat         string            `json:"log_format"`
	BuildVersion      string            `json:"build_version"`
	Profile           string            `json:"profile"`
	ConfigServerURL   string            `json:"config_server_url"`
	ConfigDir         string            `json:"config_dir"`
	AccountsURL       string            `json:"accounts_url"`
	LoansURL          string            `json:"loans_url"`
	CardsURL          string            `json:"cards_url"`
	DownstreamTimeout time.Duration     `json:"downstream_timeout"`
	Contact           model.ContactInfo `json:"contact"`
}

func setDefaults(v *viper.Viper, service string) {
	v.SetDefault("server_address", defaultAddresses[service])
	v.SetDefault("grpc_address", "")
	v.SetDefault("database_dsn", "")
	v.SetDefault("file_storage_path", "")
	v.SetDefault("enable_https", false)
	v.SetDefault("tls_cert_path", "cert.pem")
	v.SetDefault("tls_key_path", "key.pem")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("build_version", "1.0")
	v.SetDefault("profile", "default")
	v.SetDefault("config_server_url", "")
	v.SetDefault("config_dir", "configs")
	v.SetDefault("accounts_url", "http://"+defaultAddresses["accounts"])
	v.SetDefault("loans_url", "http://"+defaultAddresses["loans"])
	v.SetDefault("cards_url", "http://"+defaultAddresses["cards"])
	v.SetDefault("downstream_timeout", 3*time.Second)

	v.SetDefault("contact.message", fmt.Sprintf("Welcome to the EazyBank %s related local APIs", service))
	v.SetDefault("contact.name", "")
	v.SetDefault("contact.email", "")
	v.SetDefault("contact.on_call_support", []string{})
	v.SetDefault("contact.address", "")
}

// NewConfig собирает конфигурацию приложения service.
// Приоритет: флаги > переменные окружения > config server > JSON/YAML-файл > значения по умолчанию.
func NewConfig(service string, args []string, logger *zap.Logger) (*Config, error) {
	// .env не переопределяет уже заданные переменные окружения
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded .env file")
	}

	v := viper.New()
	setDefaults(v, service)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Определяем флаги, но НЕ задаем в них значения по умолчанию
	fs := flag.NewFlagSet(service, flag.ContinueOnError)
	serverAddress := fs.String("a", "", "server address")
	grpcAddress := fs.String("g", "", "gRPC health address")
	databaseDSN := fs.String("d", "", "PostgreSQL DSN")
	fileStoragePath := fs.String("f", "", "file storage path (JSON lines journal)")
	enableHTTPS := fs.Bool("s", false, "enable HTTPS")
	tlsCertPath := fs.String("cert", "", "path to TLS certificate")
	tlsKeyPath := fs.String("key", "", "path to TLS key")
	configPath := fs.String("c", "", "path to JSON or YAML config file")
	fs.StringVar(configPath, "config", "", "path to JSON or YAML config file")
	configServer := fs.String("config-server", "", "config server base URL")
	profile := fs.String("profile", "", "config profile")
	configDir := fs.String("dir", "", "directory with application configs (configserver)")
	accountsURL := fs.String("accounts", "", "accounts service base URL")
	loansURL := fs.String("loans", "", "loans service base URL")
	cardsURL := fs.String("cards", "", "cards service base URL")
	timeout := fs.Duration("timeout", 0, "downstream call timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if *configPath == "" {
		*configPath = os.Getenv("CONFIG")
	}
	if *configPath != "" {
		v.SetConfigFile(*configPath)
		if err := v.MergeInConfig(); err != nil {
			logger.Warn("Failed to read config file", zap.String("path", *configPath), zap.Error(err))
		}
	}

	if *profile != "" {
		v.Set("profile", *profile)
	}
	if *configServer != "" {
		v.Set("config_server_url", *configServer)
	}
	if remote := v.GetString("config_server_url"); remote != "" {
		if err := mergeRemote(v, remote, service, v.GetString("profile")); err != nil {
			logger.Warn("Config server unavailable, using local configuration",
				zap.String("url", remote), zap.Error(err))
		}
	}

	// Если флаг передан — он важнее всего остального
	override := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	override("server_address", *serverAddress)
	override("grpc_address", *grpcAddress)
	override("database_dsn", *databaseDSN)
	override("file_storage_path", *fileStoragePath)
	override("tls_cert_path", *tlsCertPath)
	override("tls_key_path", *tlsKeyPath)
	override("config_dir", *configDir)
	override("accounts_url", *accountsURL)
	override("loans_url", *loansURL)
	override("cards_url", *cardsURL)
	if *enableHTTPS {
		v.Set("enable_https", true)
	}
	if *timeout > 0 {
		v.Set("downstream_timeout", *timeout)
	}

	cfg := &Config{
		Service:           service,
		ServerAddress:     v.GetString("server_address"),
		GRPCAddress:       v.GetString("grpc_address"),
		DatabaseDSN:       v.GetString("database_dsn"),
		FileStoragePath:   v.GetString("file_storage_path"),
		EnableHTTPS:       v.GetBool("enable_https"),
		TLSCertPath:       v.GetString("tls_cert_path"),
		TLSKeyPath:        v.GetString("tls_key_path"),
		LogLevel:          v.GetString("log_level"),
		LogFormat:         v.GetString("log_format"),
		BuildVersion:      v.GetString("build_version"),
		Profile:           v.GetString("profile"),
		ConfigServerURL:   v.GetString("config_server_url"),
		ConfigDir:         v.GetString("config_dir"),
		AccountsURL:       v.GetString("accounts_url"),
		LoansURL:          v.GetString("loans_url"),
		CardsURL:          v.GetString("cards_url"),
		DownstreamTimeout: v.GetDuration("downstream_timeout"),
	}
	cfg.Contact = model.ContactInfo{
		Message:       v.GetString("contact.message"),
		Name:          v.GetString("contact.name"),
		Email:         v.GetString("contact.email"),
		OnCallSupport: v.GetStringSlice("contact.on_call_support"),
		Address:       v.GetString("contact.address"),
	}

	// Определяем режим работы
	switch {
	case cfg.DatabaseDSN != "":
		cfg.Mode = ModeDatabase
	case cfg.FileStoragePath != "":
		cfg.Mode = ModeFile
	default:
		cfg.Mode = ModeMemory
	}

	logger.Info("Configuration initialized",
		zap.String("service", cfg.Service),
		zap.String("address", cfg.ServerAddress),
		zap.String("mode", cfg.Mode),
		zap.String("profile", cfg.Profile),
		zap.Bool("https", cfg.EnableHTTPS),
		zap.Duration("downstream_timeout", cfg.DownstreamTimeout),
	)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return fmt.Errorf("server address must not be empty")
	}
	if cfg.EnableHTTPS && (cfg.TLSCertPath == "" || cfg.TLSKeyPath == "") {
		return fmt.Errorf("https requires both tls_cert_path and tls_key_path")
	}

	switch cfg.Service {
	case "accounts":
		if cfg.DownstreamTimeout <= 0 {
			return fmt.Errorf("downstream timeout must be positive, got %s", cfg.DownstreamTimeout)
		}
		return validateURLs(map[string]string{"loans_url": cfg.LoansURL, "cards_url": cfg.CardsURL})
	case "gateway":
		if cfg.DownstreamTimeout <= 0 {
			return fmt.Errorf("downstream timeout must be positive, got %s", cfg.DownstreamTimeout)
		}
		return validateURLs(map[string]string{
			"accounts_url": cfg.AccountsURL,
			"loans_url":    cfg.LoansURL,
			"cards_url":    cfg.CardsURL,
		})
	case "configserver":
		if cfg.ConfigDir == "" {
			return fmt.Errorf("config dir must not be empty")
		}
	}
	return nil
}

func validateURLs(urls map[string]string) error {
	for key, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
		}
	}
	return nil
}
