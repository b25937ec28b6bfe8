package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	HTTPAddr string

	OTLPEndpoint string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int
	DBConnMaxIdleTime int

	// PrinterDevice is the character device the composed stream is
	// written to, e.g. /dev/usb/lp0 or a virtual serial port.
	PrinterDevice string

	// Station literals printed on every receipt.
	StationSiteCode string
	StationName     string
	StationAddress  string
	StationFallback string

	// LogoPath points at the raster logo; LogoWidthDots is the target
	// bitmap width in printer dots.
	LogoPath      string
	LogoWidthDots int
}

var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(NewPriceTableHolder),
)

func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: skipping .env: %v", err)
	}

	return Config{
		AppName:     getenv("APP_SERVICE", "pompabon"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),

		HTTPAddr: getenv("HTTP_ADDR", ":8080"),

		OTLPEndpoint: getenv("OTLP_ENDPOINT", "localhost:4317"),

		DBType:            getenv("DATABASE_TYPE", "sqlite"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "pompabon"),
		DBUser:            getenv("DATABASE_USER", "pompabon"),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 2),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 10),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 3600),
		DBConnMaxIdleTime: getenvInt("DATABASE_CONN_MAX_IDLE_TIME", 600),

		PrinterDevice: getenv("PRINTER_DEVICE", "/dev/usb/lp0"),

		StationSiteCode: getenv("STATION_SITE_CODE", "SPBU 34.17101"),
		StationName:     getenv("STATION_NAME", "PT. SUMBER REZEKI DESA"),
		StationAddress:  getenv("STATION_ADDRESS", "Jl. Raya Desa No. 1"),
		StationFallback: getenv("STATION_FALLBACK_HEADER", "PERTAMINA"),

		LogoPath:      getenv("LOGO_PATH", "assets/logo.png"),
		LogoWidthDots: getenvInt("LOGO_WIDTH_DOTS", 200),
	}
}

func (c Config) Debug() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
