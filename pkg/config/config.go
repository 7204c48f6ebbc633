package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración del BFF (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Backend BackendConfig
	Redis   RedisConfig
	Dolar   DolarConfig
	Ventas  VentasConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host               string
	Port               int
	CORSOrigins        string // lista separada por comas; "*" en desarrollo
	LoginRatePerMinute int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración del token de sesión que el BFF entrega al navegador.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// BackendConfig API REST de origen (sistema de registro).
type BackendConfig struct {
	URL            string // ej. http://localhost:3000
	TimeoutSeconds int
}

// Timeout devuelve el timeout por petición como time.Duration.
func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RedisConfig si Addr está vacío se usan los stores en memoria.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled indica si hay Redis configurado.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// DolarConfig proveedor externo del valor del dólar.
type DolarConfig struct {
	URL        string
	TTLMinutes int // ventana de frescura
}

// TTL devuelve la ventana de frescura.
func (c DolarConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// VentasConfig parámetros del análisis de ventas.
type VentasConfig struct {
	IVA                decimal.Decimal // tasa para derivar el monto neto (0.19 = 19%)
	SnapshotTTLSeconds int
}

// SnapshotTTL tiempo que se reutilizan las ventas ya normalizadas de un almacén.
func (c VentasConfig) SnapshotTTL() time.Duration {
	return time.Duration(c.SnapshotTTLSeconds) * time.Second
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_URL, JWT_SECRET, REDIS_ADDR, etc.
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

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	iva, err := decimal.NewFromString(getString(v, "IVA_RATE", "0.19"))
	if err != nil || iva.IsNegative() {
		return nil, fmt.Errorf("config: IVA_RATE inválido: %q", getString(v, "IVA_RATE", ""))
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "negocify-bff"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:               getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:               getInt(v, "HTTP_PORT", 8080),
			CORSOrigins:        getString(v, "CORS_ORIGINS", "*"),
			LoginRatePerMinute: getInt(v, "LOGIN_RATE_PER_MINUTE", 10),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "negocify-bff"),
		},
		Backend: BackendConfig{
			URL:            strings.TrimRight(getString(v, "BACKEND_URL", "http://localhost:3000"), "/"),
			TimeoutSeconds: getInt(v, "BACKEND_TIMEOUT_SECONDS", 15),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Dolar: DolarConfig{
			URL:        getString(v, "DOLAR_URL", "https://mindicador.cl/api/dolar"),
			TTLMinutes: getInt(v, "DOLAR_TTL_MINUTES", 60),
		},
		Ventas: VentasConfig{
			IVA:                iva,
			SnapshotTTLSeconds: getInt(v, "SNAPSHOT_TTL_SECONDS", 30),
		},
	}

	return cfg, nil
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
			n, err := strconv.Atoi(v.GetString(key))
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
