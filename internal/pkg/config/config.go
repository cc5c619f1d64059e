package config

import (
	"time"

	"vending-machine/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets)
// - default: Values common across all environments (timezone, denominations, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Admin   AdminConfig
	Machine MachineConfig
	Display DisplayConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"8h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type AdminConfig struct {
	// bcrypt hash of the maintenance password
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type MachineConfig struct {
	Denominations     []int64 `envconfig:"MACHINE_DENOMINATIONS" default:"1,2,5,10,20,50,100,200,500,1000,2000,5000"`
	Currency          string  `envconfig:"MACHINE_CURRENCY" default:"EUR"`
	SeedDemo          bool    `envconfig:"MACHINE_SEED_DEMO" default:"true"`
	LowStockThreshold int     `envconfig:"MACHINE_LOW_STOCK_THRESHOLD" default:"3"`
	LowCoinThreshold  int     `envconfig:"MACHINE_LOW_COIN_THRESHOLD" default:"5"`
	SupplierEnabled   bool    `envconfig:"MACHINE_SUPPLIER_ENABLED" default:"true"`
}

type DisplayConfig struct {
	// target currency code -> units per one machine currency unit
	Rates map[string]string `envconfig:"DISPLAY_RATES" default:"USD:1.08,GBP:0.86"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, errs.Wrap(err, "failed to process env config")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Machine: MachineConfig{
			Denominations:     []int64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000},
			Currency:          "EUR",
			LowStockThreshold: 3,
			LowCoinThreshold:  5,
			SupplierEnabled:   true,
		},
		Display: DisplayConfig{
			Rates: map[string]string{"USD": "1.08"},
		},
	}
}
