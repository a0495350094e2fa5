package catalog

import (
	"os"
	"strconv"
)

// Config holds environment-driven settings for the inventory source and the
// persisted quantity map.
type Config struct {
	InventoryPath   string
	QuantitiesPath  string
	DefaultUpcharge float64
}

func LoadConfig() Config {
	return Config{
		InventoryPath:   getenv("INVENTORY_PATH", "inventory.tsv"),
		QuantitiesPath:  getenv("QUANTITIES_PATH", "quantities.json"),
		DefaultUpcharge: getFloat("DEFAULT_UPCHARGE_RATE", 20.0),
	}
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
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
