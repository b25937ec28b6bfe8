package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// FuelPrice binds one product to its unit price per liter.
type FuelPrice struct {
	Product   string  `mapstructure:"product" json:"product"`
	UnitPrice float64 `mapstructure:"unitPrice" json:"unit_price"`
}

// PriceTable is the station's current per-liter price list.
type PriceTable struct {
	Prices []FuelPrice `mapstructure:"prices" json:"prices"`
}

// UnitPriceFor returns the configured price for a product, or ok=false
// when the product is not in the table.
func (t PriceTable) UnitPriceFor(product string) (float64, bool) {
	for _, p := range t.Prices {
		if strings.EqualFold(p.Product, product) {
			return p.UnitPrice, true
		}
	}
	return 0, false
}

func DefaultPriceTable() PriceTable {
	return PriceTable{
		Prices: []FuelPrice{
			{Product: "Pertalite", UnitPrice: 10000},
			{Product: "Pertamax", UnitPrice: 12200},
			{Product: "Pertamax Turbo", UnitPrice: 13450},
			{Product: "Dexlite", UnitPrice: 12970},
			{Product: "Pertamina Dex", UnitPrice: 13300},
		},
	}
}

// PriceTableHolder serves the current price table and hot-reloads it
// when the config file changes on disk.
type PriceTableHolder struct {
	current atomic.Value // holds PriceTable
}

func NewPriceTableHolder() (*PriceTableHolder, error) {
	v := viper.New()

	v.SetConfigName("prices")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/pompabon/config") // Volume-mounted config
	v.AddConfigPath("/etc/pompabon")            // System config
	v.AddConfigPath(".")                        // Current directory (dev mode)

	// env hanya untuk override path (optional)
	v.SetEnvPrefix("POMPABON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// if config file not found, use defaults
		v.SetDefault("prices", DefaultPriceTable().Prices)
	}

	var table PriceTable
	if err := v.Unmarshal(&table); err != nil {
		return nil, err
	}
	if err := validatePriceTable(table); err != nil {
		return nil, err
	}

	holder := &PriceTableHolder{}
	holder.current.Store(table)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated PriceTable
		if err := v.Unmarshal(&updated); err != nil {
			log.Printf("[price-table] reload failed: %v", err)
			return
		}
		if err := validatePriceTable(updated); err != nil {
			log.Printf("[price-table] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[price-table] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticPriceTableHolder wraps a fixed table with no file watching.
// Used by tests and one-shot tooling.
func NewStaticPriceTableHolder(table PriceTable) *PriceTableHolder {
	holder := &PriceTableHolder{}
	holder.current.Store(table)
	return holder
}

func (h *PriceTableHolder) Get() PriceTable {
	return h.current.Load().(PriceTable)
}

func validatePriceTable(table PriceTable) error {
	if len(table.Prices) == 0 {
		return errors.New("prices cannot be empty")
	}
	for _, p := range table.Prices {
		if strings.TrimSpace(p.Product) == "" {
			return errors.New("price entry missing product name")
		}
		if p.UnitPrice <= 0 {
			return errors.New("unit price must be positive")
		}
	}
	return nil
}
