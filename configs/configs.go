// Package configs provides application configuration loaded from environment variables.
// Defaults reproduce the fixed AAPL export, so an empty environment is a valid setup.
package configs

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all application configuration.
// Load it once at startup using AppLoad().
type AppConfig struct {
	// Symbol is the provider ticker to download (e.g., "AAPL").
	Symbol string

	// MaxRows is the number of most recent trading days to keep.
	MaxRows int

	// LogLevel is a logrus level name: debug, info, warn, error.
	LogLevel string

	// Yahoo contains settings for the Yahoo Finance driver.
	Yahoo YahooConfig

	// Output contains settings for the CSV writer.
	Output OutputConfig

	// Fundamentals contains the share counts and valuation ratios used by the transformer.
	Fundamentals FundamentalsConfig
}

// YahooConfig holds Yahoo Finance chart API settings.
type YahooConfig struct {
	// BaseURL is the API host, without trailing slash.
	BaseURL string

	// AutoAdjust scales OHLC prices by adjusted close / close.
	AutoAdjust bool

	// RequestsPerSecond feeds the HTTP rate limiter.
	RequestsPerSecond float64

	// RequestTimeoutSeconds bounds a single HTTP call. 0 disables the timeout.
	RequestTimeoutSeconds int
}

// OutputConfig holds file output settings.
type OutputConfig struct {
	// Path is the CSV file to write, relative to the working directory.
	Path string

	// DataDir is created at startup if missing.
	// The CSV is not written into it.
	DataDir string

	// PreviewRows is how many leading rows to print after saving.
	PreviewRows int
}

// FundamentalsConfig holds the constant share counts and valuation ratios.
type FundamentalsConfig struct {
	// TSCode is the vendor identifier written in every row.
	TSCode string

	TotalShare int64
	FloatShare int64
	FreeShare  int64

	PE float64
	PB float64
	PS float64
}

// getFundamentalsConfig loads share counts and ratios from environment.
// FREE_SHARE follows FLOAT_SHARE unless set explicitly.
func getFundamentalsConfig() FundamentalsConfig {
	floatShare := getEnvInt64("FLOAT_SHARE", 16_000_000_000)

	return FundamentalsConfig{
		TSCode:     getEnv("TS_CODE", "AAPL.US"),
		TotalShare: getEnvInt64("TOTAL_SHARE", 16_500_000_000),
		FloatShare: floatShare,
		FreeShare:  getEnvInt64("FREE_SHARE", floatShare),
		PE:         getEnvFloat("PE", 30.0),
		PB:         getEnvFloat("PB", 7.5),
		PS:         getEnvFloat("PS", 7.2),
	}
}

// AppLoad loads all application configuration from environment variables.
// It attempts to load a .env file first (for local development).
func AppLoad() *AppConfig {
	_ = godotenv.Load() // Ignore error - .env is optional

	maxRows := getEnvInt("MAX_ROWS", 3681)
	if maxRows <= 0 {
		maxRows = 3681
	}

	previewRows := getEnvInt("PREVIEW_ROWS", 5)
	if previewRows < 0 {
		previewRows = 5
	}

	return &AppConfig{
		Symbol:   strings.ToUpper(getEnv("SYMBOL", "AAPL")),
		MaxRows:  maxRows,
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Yahoo: YahooConfig{
			BaseURL:               strings.TrimSuffix(getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"), "/"),
			AutoAdjust:            getEnvBool("YAHOO_AUTO_ADJUST", true),
			RequestsPerSecond:     getEnvFloat("REQUESTS_PER_SECOND", 1),
			RequestTimeoutSeconds: getEnvInt("REQUEST_TIMEOUT_SECONDS", 30),
		},
		Output: OutputConfig{
			Path:        getEnv("OUTPUT_PATH", "apple_stock_data.csv"),
			DataDir:     getEnv("DATA_DIR", "stock_data"),
			PreviewRows: previewRows,
		},
		Fundamentals: getFundamentalsConfig(),
	}
}

// getEnv returns the environment variable value or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as int or a default.
func getEnvInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
