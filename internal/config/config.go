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

const (
	SourceCSV      = "csv"
	SourceXLSX     = "xlsx"
	SourcePostgres = "postgres"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	DataSource    DataSource    `mapstructure:",squash"`
	Dashboard     Dashboard     `mapstructure:",squash"`
	DatasetReload DatasetReload `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// DataSource define de onde as tabelas de vendas e feriados são lidas
type DataSource struct {
	Driver       string `mapstructure:"data_source"`
	SalesPath    string `mapstructure:"sales_path"`
	HolidaysPath string `mapstructure:"holidays_path"`
}

type Dashboard struct {
	TopN              int `mapstructure:"dashboard_top_n"`
	HolidayWindowDays int `mapstructure:"dashboard_holiday_window_days"`
}

type DatasetReload struct {
	CronSchedule string `mapstructure:"dataset_reload_cron"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8050)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8050")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATA_SOURCE", SourceCSV)
	viper.SetDefault("SALES_PATH", "data/sales.csv")
	viper.SetDefault("HOLIDAYS_PATH", "data/holidays_events.csv")

	viper.SetDefault("DASHBOARD_TOP_N", 10)               // Top 10 produtos e feriados
	viper.SetDefault("DASHBOARD_HOLIDAY_WINDOW_DAYS", 10) // Vendas dos 10 dias antes do feriado

	viper.SetDefault("DATASET_RELOAD_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("DATASET_RELOAD_ENABLED", false)    // Recarga apenas na inicialização

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if err := config.Validate(); err != nil {
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

// Validate verifica combinações de configuração que impedem a inicialização
func (c *Config) Validate() error {
	switch c.DataSource.Driver {
	case SourceCSV, SourceXLSX:
		if c.DataSource.SalesPath == "" || c.DataSource.HolidaysPath == "" {
			return fmt.Errorf("config: SALES_PATH e HOLIDAYS_PATH são obrigatórios para a fonte %q", c.DataSource.Driver)
		}
	case SourcePostgres:
	default:
		return fmt.Errorf("config: DATA_SOURCE inválido: %q (valores aceitos: csv, xlsx, postgres)", c.DataSource.Driver)
	}

	if c.Dashboard.TopN <= 0 {
		return fmt.Errorf("config: DASHBOARD_TOP_N deve ser positivo, recebido %d", c.Dashboard.TopN)
	}

	if c.Dashboard.HolidayWindowDays < 0 {
		return fmt.Errorf("config: DASHBOARD_HOLIDAY_WINDOW_DAYS não pode ser negativo, recebido %d", c.Dashboard.HolidayWindowDays)
	}

	return nil
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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

