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

// Backends de datos soportados para el motor de validación.
const (
	BackendPostgres = "postgres"
	BackendCache    = "cache"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	PlanificacionSync PlanificacionSync `mapstructure:",squash"`
	Uploads           Uploads           `mapstructure:",squash"`
	SecretKey         string            `mapstructure:"secret_key"`
	DataBackend       string            `mapstructure:"data_backend"`
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

type Auth struct {
	// CodigosSupervisor son hashes bcrypt de los códigos de acceso,
	// separados por coma en la variable de entorno.
	CodigosSupervisor []string      `mapstructure:"auth_codigos_supervisor"`
	DuracionToken     time.Duration `mapstructure:"auth_duracion_token"`
}

type PlanificacionSync struct {
	CronSchedule    string `mapstructure:"planificacion_sync_cron"`
	SheetURL        string `mapstructure:"planificacion_sheet_url"`
	ArchivoRespaldo string `mapstructure:"planificacion_archivo_respaldo"`
	Enabled         bool   `mapstructure:"planificacion_sync_enabled"`
}

type Uploads struct {
	Dir string `mapstructure:"uploads_dir"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/bajas")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("AUTH_CODIGOS_SUPERVISOR", "")
	viper.SetDefault("AUTH_DURACION_TOKEN", "24h")

	// Dos corridas diarias: antes de la jornada y al cierre
	viper.SetDefault("PLANIFICACION_SYNC_CRON", "0 6,19 * * *")
	viper.SetDefault("PLANIFICACION_SHEET_URL", "")
	viper.SetDefault("PLANIFICACION_ARCHIVO_RESPALDO", "")
	viper.SetDefault("PLANIFICACION_SYNC_ENABLED", true)

	viper.SetDefault("UPLOADS_DIR", "uploads")

	viper.SetDefault("DATA_BACKEND", BackendPostgres)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primero cargar el archivo .env usando godotenv
	loadEnvFile() // SOLO LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
	} else {
		logrus.Info("Archivo .env leído por Viper con éxito")
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

	if config.DataBackend != BackendPostgres && config.DataBackend != BackendCache {
		return nil, fmt.Errorf("DATA_BACKEND inválido: %q (se espera %s o %s)",
			config.DataBackend, BackendPostgres, BackendCache)
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

// Función auxiliar para cargar el archivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No fue posible obtener el directorio actual:", err)
		return
	}

	// Probar varias ubicaciones posibles para el archivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Archivo .env cargado con éxito desde:", location)
			return
		}
	}

	logrus.Warn("No fue posible cargar el archivo .env desde ninguna ubicación conocida")
}
