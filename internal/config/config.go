package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Portal        Portal        `mapstructure:",squash"`
	OrderSync     OrderSync     `mapstructure:",squash"`
	VendorRanking VendorRanking `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
	AutoMigrate  bool   `mapstructure:"database_auto_migrate"`
	SeedDemo     bool   `mapstructure:"database_seed_demo"`
}

// Portal é a API de pedidos do portal B2B
type Portal struct {
	URL         string        `mapstructure:"portal_url"`
	AccessToken string        `mapstructure:"portal_access_token"`
	Timeout     time.Duration `mapstructure:"portal_timeout"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"environment"`
}

type OrderSync struct {
	CronSchedule string `mapstructure:"order_sync_cron"`
	LookbackDays int    `mapstructure:"order_sync_lookback_days"`
	Enabled      bool   `mapstructure:"order_sync_enabled"`
}

type VendorRanking struct {
	CronSchedule string `mapstructure:"vendor_ranking_cron"`
	SyncEnabled  bool   `mapstructure:"vendor_ranking_sync_enabled"`
}

func (a App) IsDevelopment() bool {
	return a.Environment == "" || a.Environment == "development"
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cosmetics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)
	viper.SetDefault("DATABASE_SEED_DEMO", false) // ONLY LOCAL

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("PORTAL_URL", "http://localhost:3000/api")
	viper.SetDefault("PORTAL_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("PORTAL_TIMEOUT", "30s")

	viper.SetDefault("ORDER_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("ORDER_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("ORDER_SYNC_ENABLED", false)

	viper.SetDefault("VENDOR_RANKING_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("VENDOR_RANKING_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("ENVIRONMENT", "development")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return Load()
}

// Load decodifica o estado atual do viper na Config
func Load() (*Config, error) {
	config := &Config{}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.OrderSync.LookbackDays <= 0 {
		return nil, fmt.Errorf("config: ORDER_SYNC_LOOKBACK_DAYS deve ser maior que zero")
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
