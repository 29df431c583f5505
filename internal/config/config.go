package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Collector    Collector    `mapstructure:",squash"`
	QuoteRefresh QuoteRefresh `mapstructure:",squash"`
	Upload       Upload       `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Collector configura o acesso à fonte externa de cotações (AwesomeAPI)
type Collector struct {
	URL   string `mapstructure:"collector_url"`
	Pairs string `mapstructure:"collector_pairs"`
}

// QuoteRefresh configura a tarefa periódica de atualização de cotações
type QuoteRefresh struct {
	IntervalSeconds   int  `mapstructure:"quote_refresh_interval_seconds"`
	MaxRetries        int  `mapstructure:"quote_refresh_max_retries"`
	RetryDelaySeconds int  `mapstructure:"quote_refresh_retry_delay_seconds"`
	RetentionDays     int  `mapstructure:"quote_retention_days"`
	Enabled           bool `mapstructure:"quote_refresh_enabled"`
}

type Upload struct {
	MaxSizeMB int64 `mapstructure:"upload_max_size_mb"`
}

type Analytics struct {
	TopProdutosLimite int `mapstructure:"analytics_top_produtos_limite"`
}

type Auth struct {
	Secret  string `mapstructure:"auth_secret"`
	Enabled bool   `mapstructure:"auth_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/vendas")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("COLLECTOR_URL", "https://economia.awesomeapi.com.br/json/last")
	viper.SetDefault("COLLECTOR_PAIRS", "USD-BRL,EUR-BRL,BTC-BRL")

	// Defaults da tarefa de atualização de cotações
	viper.SetDefault("QUOTE_REFRESH_INTERVAL_SECONDS", 60) // Intervalo entre coletas
	viper.SetDefault("QUOTE_REFRESH_MAX_RETRIES", 3)       // Retentativas após a primeira falha
	viper.SetDefault("QUOTE_REFRESH_RETRY_DELAY_SECONDS", 60)
	viper.SetDefault("QUOTE_RETENTION_DAYS", 90) // Zero desativa a limpeza
	viper.SetDefault("QUOTE_REFRESH_ENABLED", true)

	viper.SetDefault("UPLOAD_MAX_SIZE_MB", 16)

	viper.SetDefault("ANALYTICS_TOP_PRODUTOS_LIMITE", 10)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
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

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
