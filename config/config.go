package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/princinho/storefront/utils"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	AllowedOrigins []string

	CatalogSource string // static, mongo, gcs or r2
	CatalogObject string
	MongoURI      string
	DatabaseName  string
	SeedCatalog   bool
	// ExportCatalogPath, when set, makes the process write the loaded
	// catalog as a snapshot file and exit.
	ExportCatalogPath string

	GCSBucket       string
	CredentialsFile string
	R2              utils.R2Config

	SessionSecret string
	SessionTTL    time.Duration
	SweepInterval time.Duration

	ShippingFlat decimal.Decimal
	TaxRate      decimal.Decimal
	PriceMax     float64

	DefaultLimit int
	MaxLimit     int
}

// LoadDotEnv loads .env into the process environment if present. It reports
// whether a file was loaded.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// FromEnv reads the configuration from the environment, falling back to
// defaults for anything unset or malformed.
func FromEnv() Config {
	origins := make([]string, 0)
	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	seed, _ := utils.ParseBoolQuery(os.Getenv("SEED_CATALOG"))

	cfg := Config{
		Port:           utils.EnvDefault("PORT", "8080"),
		GinMode:        utils.EnvDefault("GIN_MODE", "release"),
		LogLevel:       utils.EnvDefault("LOG_LEVEL", "info"),
		AllowedOrigins: origins,

		CatalogSource: strings.ToLower(utils.EnvDefault("CATALOG_SOURCE", "static")),
		CatalogObject: utils.EnvDefault("CATALOG_OBJECT", "catalog/catalog.json"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		DatabaseName:  utils.EnvDefault("DATABASE_NAME", "storefront"),
		SeedCatalog:   seed != nil && *seed,

		ExportCatalogPath: os.Getenv("EXPORT_CATALOG_PATH"),

		GCSBucket:       os.Getenv("GCS_BUCKET"),
		CredentialsFile: os.Getenv("CREDENTIALS_FILE_LOCATION"),
		R2: utils.R2Config{
			Bucket:          os.Getenv("R2_BUCKET"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
			Endpoint:        os.Getenv("R2_ENDPOINT"),
		},

		SessionSecret: os.Getenv("CART_SESSION_SECRET"),
		SessionTTL:    time.Duration(utils.EnvIntDefault("CART_SESSION_TTL_HOURS", 24)) * time.Hour,
		SweepInterval: time.Duration(utils.EnvIntDefault("CART_SWEEP_INTERVAL_MINUTES", 10)) * time.Minute,

		ShippingFlat: decimal.NewFromFloat(utils.EnvFloatDefault("SHIPPING_FLAT_RATE", 10)),
		TaxRate:      decimal.NewFromFloat(utils.EnvFloatDefault("TAX_RATE", 0.1)),
		PriceMax:     utils.EnvFloatDefault("PRICE_RANGE_MAX", 1000),

		DefaultLimit: utils.EnvIntDefault("DEFAULT_READ_QUERY_LIMIT", 20),
		MaxLimit:     utils.EnvIntDefault("READ_QUERY_MAX_LIMIT", 100),
	}
	if cfg.DefaultLimit > cfg.MaxLimit {
		cfg.DefaultLimit = cfg.MaxLimit
	}
	return cfg
}
