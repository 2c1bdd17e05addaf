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
	App       App      `mapstructure:",squash"`
	Server    Server   `mapstructure:",squash"`
	Database  Database `mapstructure:",squash"`
	Auth      Auth     `mapstructure:",squash"`
	Report    Report   `mapstructure:",squash"`
	Award     Award    `mapstructure:",squash"`
	SecretKey string   `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

type Auth struct {
	TokenExpireHours int `mapstructure:"auth_token_expire_hours"`
}

type Report struct {
	// Límite de registros por consulta de rango al generar un reporte.
	FetchLimit   int    `mapstructure:"report_fetch_limit"`
	CloseCron    string `mapstructure:"report_close_cron"`
	CloseEnabled bool   `mapstructure:"report_close_enabled"`
}

type Award struct {
	// Valor desde el cual un premio de jackpot se considera alto.
	HighValueThreshold int `mapstructure:"award_high_value_threshold"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/casino")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_EXPIRE_HOURS", 24)

	viper.SetDefault("REPORT_FETCH_LIMIT", 1000)
	viper.SetDefault("REPORT_CLOSE_CRON", "0 1 * * *") // Todos los días a la 1 de la mañana
	viper.SetDefault("REPORT_CLOSE_ENABLED", false)

	viper.SetDefault("AWARD_HIGH_VALUE_THRESHOLD", 10000)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primero cargar el archivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
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

// loadEnvFile carga el archivo .env desde las ubicaciones conocidas.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No se pudo obtener el directorio actual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Archivo .env cargado desde:", location)
			return
		}
	}

	logrus.Warn("No se pudo cargar el archivo .env de ninguna ubicación conocida")
}
