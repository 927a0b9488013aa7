package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultPort              = "8080"
	defaultJWTSecret         = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer         = "pos-payments"
	defaultRateLimit         = "120-M"
	defaultBaseCurrency      = "CRC"
	defaultReferenceCurrency = "USD"
	defaultExchangeRates     = "USD:520,EUR:565"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	JWTIssuer          string
	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter format, e.g. "120-M"

	// Payments
	BaseCurrency      string
	ReferenceCurrency string
	ExchangeRates     map[string]decimal.Decimal // seed rates, base units per foreign unit
	CommissionRates   map[string]decimal.Decimal // method code -> fraction
	DisabledMethods   []string
	Denominations     []decimal.Decimal // nil means the built-in set
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("BASE_CURRENCY", defaultBaseCurrency)
	v.SetDefault("REFERENCE_CURRENCY", defaultReferenceCurrency)
	v.SetDefault("EXCHANGE_RATES", defaultExchangeRates)
	v.SetDefault("COMMISSION_RATES", "")
	v.SetDefault("DISABLED_METHODS", "")
	v.SetDefault("DENOMINATIONS", "")

	cfg := &Config{
		DatabaseURL:   v.GetString("PGSQL_URL"),
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		JWTIssuer:     v.GetString("JWT_ISSUER"),
		RateLimit:     v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.IsProduction && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.DisabledMethods = splitList(v.GetString("DISABLED_METHODS"))

	cfg.BaseCurrency = strings.ToUpper(strings.TrimSpace(v.GetString("BASE_CURRENCY")))
	if len(cfg.BaseCurrency) != 3 {
		log.Printf("Warning: Invalid value for BASE_CURRENCY ('%s'). Defaulting to %s.\n", cfg.BaseCurrency, defaultBaseCurrency)
		cfg.BaseCurrency = defaultBaseCurrency
	}
	cfg.ReferenceCurrency = strings.ToUpper(strings.TrimSpace(v.GetString("REFERENCE_CURRENCY")))
	if len(cfg.ReferenceCurrency) != 3 {
		log.Printf("Warning: Invalid value for REFERENCE_CURRENCY ('%s'). Defaulting to %s.\n", cfg.ReferenceCurrency, defaultReferenceCurrency)
		cfg.ReferenceCurrency = defaultReferenceCurrency
	}

	rates, err := ParsePairs(v.GetString("EXCHANGE_RATES"), true)
	if err != nil {
		log.Printf("Warning: Invalid value for EXCHANGE_RATES (%v). Defaulting to %s.\n", err, defaultExchangeRates)
		rates, _ = ParsePairs(defaultExchangeRates, true)
	}
	cfg.ExchangeRates = rates

	// No fallback for commissions: they change settlement amounts.
	commissions, err := ParsePairs(v.GetString("COMMISSION_RATES"), false)
	if err != nil {
		return nil, fmt.Errorf("invalid COMMISSION_RATES: %w", err)
	}
	cfg.CommissionRates = commissions

	denominations, err := ParseDecimalList(v.GetString("DENOMINATIONS"))
	if err != nil {
		log.Printf("Warning: Invalid value for DENOMINATIONS (%v). Using built-in denominations.\n", err)
		denominations = nil
	}
	cfg.Denominations = denominations

	return cfg, nil
}

// ParsePairs parses "KEY:value,KEY:value" into a map. Keys are upper-cased
// when upperKeys is set and lower-cased otherwise. Values must not be negative.
func ParsePairs(s string, upperKeys bool) (map[string]decimal.Decimal, error) {
	pairs := make(map[string]decimal.Decimal)
	for _, item := range splitList(s) {
		key, value, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("entry %q is not KEY:value", item)
		}
		key = strings.TrimSpace(key)
		if upperKeys {
			key = strings.ToUpper(key)
		} else {
			key = strings.ToLower(key)
		}
		if key == "" {
			return nil, fmt.Errorf("entry %q has an empty key", item)
		}
		d, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", item, err)
		}
		if d.IsNegative() {
			return nil, fmt.Errorf("entry %q must not be negative", item)
		}
		pairs[key] = d
	}
	return pairs, nil
}

// ParseDecimalList parses "20000,10000,5" into positive decimals. An empty
// string yields nil.
func ParseDecimalList(s string) ([]decimal.Decimal, error) {
	items := splitList(s)
	if len(items) == 0 {
		return nil, nil
	}
	values := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		d, err := decimal.NewFromString(item)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", item, err)
		}
		if !d.IsPositive() {
			return nil, fmt.Errorf("value %q must be positive", item)
		}
		values = append(values, d)
	}
	return values, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
