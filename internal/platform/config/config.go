package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const dateLayout = "2006-01-02"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Report operator credentials; the password is stored as a bcrypt hash.
	ReportUsername     string
	ReportPasswordHash string

	// DepositsAccountCode is the GL account the reconciliation report covers.
	DepositsAccountCode string
	// CutoverDate is when automated deposit-to-credit-memo conversion began.
	CutoverDate time.Time
	// DefaultAsOf is the report cutoff used when the request carries none.
	DefaultAsOf time.Time
	// DetailRowLimit caps deposit detail query rows.
	DetailRowLimit int
	// VarianceTolerance is the materiality threshold for the variance flag.
	VarianceTolerance decimal.Decimal

	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "deposit-recon-backend")
	viper.SetDefault("REPORT_USERNAME", "finance")
	viper.SetDefault("REPORT_PASSWORD_HASH", "")
	viper.SetDefault("DEPOSITS_ACCOUNT_CODE", "2050")
	viper.SetDefault("CUTOVER_DATE", "2022-04-01")
	viper.SetDefault("REPORT_DEFAULT_AS_OF", "2025-06-30")
	viper.SetDefault("DETAIL_ROW_LIMIT", 5000)
	viper.SetDefault("VARIANCE_TOLERANCE", "0.01")
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 8 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.ReportUsername = viper.GetString("REPORT_USERNAME")
	cfg.ReportPasswordHash = viper.GetString("REPORT_PASSWORD_HASH")
	if cfg.ReportPasswordHash == "" {
		log.Println("Warning: REPORT_PASSWORD_HASH not set. Login will reject all credentials.")
	}

	cfg.DepositsAccountCode = viper.GetString("DEPOSITS_ACCOUNT_CODE")

	cutoverStr := viper.GetString("CUTOVER_DATE")
	cutover, err := time.Parse(dateLayout, cutoverStr)
	if err != nil {
		cutover, _ = time.Parse(dateLayout, "2022-04-01")
		log.Printf("Warning: Invalid value for CUTOVER_DATE ('%s'). Defaulting to %s.\n", cutoverStr, cutover.Format(dateLayout))
	}
	cfg.CutoverDate = cutover

	asOfStr := viper.GetString("REPORT_DEFAULT_AS_OF")
	asOf, err := time.Parse(dateLayout, asOfStr)
	if err != nil {
		asOf, _ = time.Parse(dateLayout, "2025-06-30")
		log.Printf("Warning: Invalid value for REPORT_DEFAULT_AS_OF ('%s'). Defaulting to %s.\n", asOfStr, asOf.Format(dateLayout))
	}
	cfg.DefaultAsOf = asOf

	cfg.DetailRowLimit = viper.GetInt("DETAIL_ROW_LIMIT")
	if cfg.DetailRowLimit <= 0 {
		cfg.DetailRowLimit = 5000
		log.Println("Warning: DETAIL_ROW_LIMIT must be positive. Defaulting to 5000.")
	}

	toleranceStr := viper.GetString("VARIANCE_TOLERANCE")
	tolerance, err := decimal.NewFromString(toleranceStr)
	if err != nil || tolerance.IsNegative() {
		tolerance = decimal.RequireFromString("0.01")
		log.Printf("Warning: Invalid value for VARIANCE_TOLERANCE ('%s'). Defaulting to %s.\n", toleranceStr, tolerance.String())
	}
	cfg.VarianceTolerance = tolerance

	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	return cfg, nil
}
