package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Modos de operación del core. El modo se lee una sola vez al construir
// los stores y el gateway (inyección explícita), nunca de forma ambiental
// en cada llamada.
const (
	ModeMock = "mock"
	ModeLive = "live"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env / config.env).
type Config struct {
	App     AppConfig
	API     APIConfig
	JWT     JWTConfig
	Store   StoreConfig
	Session SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
	Mode string // mock | live
}

// IsMock indica si el core opera contra los datos semilla en memoria.
func (c AppConfig) IsMock() bool {
	return c.Mode != ModeLive
}

// APIConfig configuración del gateway remoto (modo live).
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// JWTConfig configuración de los tokens de demostración (modo mock).
// En modo live el token lo emite el backend y el core lo trata como opaco.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StoreConfig ajustes compartidos por los entity stores.
type StoreConfig struct {
	PerPage    int
	TaxPercent int // IVA aplicado cuando la factura tiene TaxEnabled
}

// SessionConfig configuración del almacenamiento durable de sesión.
type SessionConfig struct {
	DBPath string // ruta del sqlite local; ":memory:" en tests
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, APP_MODE, API_BASE_URL, JWT_SECRET, SESSION_DB_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
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

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "printdesk"),
			Mode: getString(v, "APP_MODE", ModeMock),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:8080/api"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 15),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", "printdesk-demo-secret"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "printdesk"),
		},
		Store: StoreConfig{
			PerPage:    getInt(v, "STORE_PER_PAGE", 10),
			TaxPercent: getInt(v, "STORE_TAX_PERCENT", 19),
		},
		Session: SessionConfig{
			DBPath: getString(v, "SESSION_DB_PATH", "printdesk-session.db"),
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
