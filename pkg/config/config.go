package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	Auth    AuthConfig
	Log     LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// IsDevelopment true si el entorno es development.
func (c AppConfig) IsDevelopment() bool { return c.Env == "development" }

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string

	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration // tope por petición propagado al contexto de la BD
	BodyLimitMB    int
	SwaggerFile    string // vacío = /docs deshabilitado
	AllowOrigins   string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BodyLimit en bytes.
func (c HTTPConfig) BodyLimit() int { return c.BodyLimitMB * 1024 * 1024 }

// StorageConfig almacenamiento de archivos subidos (logos, imágenes, avatares).
type StorageConfig struct {
	RootDir     string
	MaxUploadMB int
	PublicURL   string // prefijo con el que se sirven los archivos (ej. /files)
}

// MaxUploadBytes tamaño máximo de un archivo subido.
func (c StorageConfig) MaxUploadBytes() int64 { return int64(c.MaxUploadMB) * 1024 * 1024 }

// AuthConfig parámetros de registro y contraseñas.
type AuthConfig struct {
	PasswordPepper string
	DefaultRoleID  string // rol asignado en el auto-registro; vacío = registro deshabilitado
}

// LogConfig nivel y destino del log. File vacío = solo stdout.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, STORAGE_ROOT_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia ya cargada. Valida lo obligatorio.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "ecommerce-admin"),
		},
		DB: DBConfig{
			DatabaseURL:       getString(v, "DATABASE_URL", ""),
			Host:              getString(v, "DB_HOST", "localhost"),
			Port:              getInt(v, "DB_PORT", 5432),
			User:              getString(v, "DB_USER", "postgres"),
			Password:          getString(v, "DB_PASSWORD", ""),
			DBName:            getString(v, "DB_NAME", "ecommerce_admin"),
			SSLMode:           getString(v, "DB_SSLMODE", "disable"),
			MaxConns:          int32(getInt(v, "DB_MAX_CONNS", 10)),
			MinConns:          int32(getInt(v, "DB_MIN_CONNS", 2)),
			MaxConnLifetime:   getDuration(v, "DB_MAX_CONN_LIFETIME", time.Hour),
			MaxConnIdleTime:   getDuration(v, "DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
			HealthCheckPeriod: getDuration(v, "DB_HEALTH_CHECK_PERIOD", time.Minute),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "ecommerce-admin"),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 8080),
			ReadTimeout:    getDuration(v, "HTTP_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDuration(v, "HTTP_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    getDuration(v, "HTTP_IDLE_TIMEOUT", 60*time.Second),
			RequestTimeout: getDuration(v, "HTTP_REQUEST_TIMEOUT", 10*time.Second),
			BodyLimitMB:    getInt(v, "HTTP_BODY_LIMIT_MB", 8),
			SwaggerFile:    getString(v, "HTTP_SWAGGER_FILE", ""),
			AllowOrigins:   getString(v, "HTTP_ALLOW_ORIGINS", "*"),
		},
		Storage: StorageConfig{
			RootDir:     getString(v, "STORAGE_ROOT_DIR", "./uploads"),
			MaxUploadMB: getInt(v, "STORAGE_MAX_UPLOAD_MB", 5),
			PublicURL:   getString(v, "STORAGE_PUBLIC_URL", "/files"),
		},
		Auth: AuthConfig{
			PasswordPepper: getString(v, "AUTH_PASSWORD_PEPPER", ""),
			DefaultRoleID:  getString(v, "AUTH_DEFAULT_ROLE_ID", ""),
		},
		Log: LogConfig{
			Level:      getString(v, "LOG_LEVEL", "info"),
			File:       getString(v, "LOG_FILE", ""),
			MaxSizeMB:  getInt(v, "LOG_MAX_SIZE_MB", 50),
			MaxBackups: getInt(v, "LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getInt(v, "LOG_MAX_AGE_DAYS", 28),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET es obligatorio")
	}
	if c.Auth.PasswordPepper == "" {
		return fmt.Errorf("config: AUTH_PASSWORD_PEPPER es obligatorio")
	}
	if c.DB.MinConns > c.DB.MaxConns {
		return fmt.Errorf("config: DB_MIN_CONNS (%d) mayor que DB_MAX_CONNS (%d)", c.DB.MinConns, c.DB.MaxConns)
	}
	if c.Storage.MaxUploadMB <= 0 {
		return fmt.Errorf("config: STORAGE_MAX_UPLOAD_MB debe ser positivo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getDuration acepta "15s", "2m" o un entero en segundos.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := strings.TrimSpace(v.GetString(key))
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
