package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/freightdesk/tariff/internal/pricing/calc"
	"github.com/fsnotify/fsnotify"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// PricingConfig holds the tunable pricing constants. Values live in
// pricing.yml and hot-reload on change.
type PricingConfig struct {
	DefaultCurrency    string  `mapstructure:"defaultCurrency"`
	VolumetricDivisor  float64 `mapstructure:"volumetricDivisor"`
	LabellingFlat      float64 `mapstructure:"labellingFlat"`
	LabellingUnitRate  float64 `mapstructure:"labellingUnitRate"`
	LabellingThreshold float64 `mapstructure:"labellingThreshold"`
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		DefaultCurrency:    "AED",
		VolumetricDivisor:  6000,
		LabellingFlat:      36,
		LabellingUnitRate:  0.36,
		LabellingThreshold: 100,
	}
}

type PricingConfigHolder struct {
	current atomic.Value // holds PricingConfig
}

func NewPricingConfigHolder() (*PricingConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("pricing")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/tariff/config")
	v.AddConfigPath("/etc/tariff")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TARIFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultPricingConfig()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		v.SetDefault("pricing.defaultCurrency", defaults.DefaultCurrency)
		v.SetDefault("pricing.volumetricDivisor", defaults.VolumetricDivisor)
		v.SetDefault("pricing.labellingFlat", defaults.LabellingFlat)
		v.SetDefault("pricing.labellingUnitRate", defaults.LabellingUnitRate)
		v.SetDefault("pricing.labellingThreshold", defaults.LabellingThreshold)
	}

	var cfg PricingConfig
	if err := v.UnmarshalKey("pricing", &cfg); err != nil {
		return nil, err
	}
	if err := validatePricingConfig(cfg); err != nil {
		return nil, err
	}

	holder := &PricingConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated PricingConfig
		if err := v.UnmarshalKey("pricing", &updated); err != nil {
			log.Printf("[pricing-config] reload failed: %v", err)
			return
		}
		if err := validatePricingConfig(updated); err != nil {
			log.Printf("[pricing-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[pricing-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *PricingConfigHolder) Get() PricingConfig {
	return h.current.Load().(PricingConfig)
}

// Rules converts the current config into calculation rules.
func (h *PricingConfigHolder) Rules() calc.Rules {
	cfg := h.Get()
	return calc.Rules{
		VolumetricDivisor:  decimal.NewFromFloat(cfg.VolumetricDivisor),
		LabellingFlat:      decimal.NewFromFloat(cfg.LabellingFlat),
		LabellingUnitRate:  decimal.NewFromFloat(cfg.LabellingUnitRate),
		LabellingThreshold: decimal.NewFromFloat(cfg.LabellingThreshold),
	}
}

// Currency returns the fallback currency for new pricings.
func (h *PricingConfigHolder) Currency() string {
	if c := strings.TrimSpace(h.Get().DefaultCurrency); c != "" {
		return c
	}
	return "AED"
}

func validatePricingConfig(cfg PricingConfig) error {
	if cfg.VolumetricDivisor <= 0 {
		return errors.New("pricing.volumetricDivisor must be positive")
	}
	if cfg.LabellingThreshold <= 0 {
		return errors.New("pricing.labellingThreshold must be positive")
	}
	if cfg.LabellingFlat < 0 || cfg.LabellingUnitRate < 0 {
		return errors.New("pricing.labelling rates cannot be negative")
	}
	return nil
}
