package invoice

import (
	"os"
	"strconv"
)

// Config holds environment-driven settings for numbering, archiving, and
// layout policy.
type Config struct {
	CounterPath    string
	CounterSeed    int
	ArchiveDir     string
	AuditLogPath   string
	MaxLines       int
	DefaultTaxRate float64
	RepeatHeader   bool
}

func LoadConfig() Config {
	return Config{
		CounterPath:    getenv("INVOICE_COUNTER_PATH", "invoice_number.txt"),
		CounterSeed:    getInt("INVOICE_COUNTER_SEED", DefaultCounterSeed),
		ArchiveDir:     getenv("INVOICE_ARCHIVE_DIR", ""),
		AuditLogPath:   getenv("INVOICE_AUDIT_LOG", ""),
		MaxLines:       getInt("MAX_INVOICE_LINES", 500),
		DefaultTaxRate: getFloat("DEFAULT_TAX_RATE", 7.0),
		RepeatHeader:   getBool("PDF_REPEAT_HEADER", false),
	}
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
