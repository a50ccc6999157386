package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Invoicer"`
	}

	Preview struct {
		Host  string `envconfig:"PREVIEW_HOST" default:"127.0.0.1"`
		Port  int    `envconfig:"PREVIEW_PORT" default:"8417"`
		Theme string `envconfig:"PREVIEW_THEME" default:"classic"`
	}

	Invoice struct {
		Currency string  `envconfig:"INVOICE_CURRENCY" default:"USD"`
		TaxRate  float64 `envconfig:"INVOICE_TAX_RATE" default:"10"`
		UPIID    string  `envconfig:"INVOICE_UPI_ID" default:""`
		// QRImage is the default payment QR reference; removing a custom QR
		// reverts to this, never to nothing.
		QRImage string `envconfig:"INVOICE_QR_IMAGE" default:"qr-code.jpg"`
		Notes   string `envconfig:"INVOICE_NOTES" default:"Payment due within 14 days. Thank you for your business!"`
	}

	Locale struct {
		Tag string `envconfig:"LOCALE_TAG" default:"en-US"`
	}
}

func (c *Config) PreviewAddr() string {
	return fmt.Sprintf("%s:%d", c.Preview.Host, c.Preview.Port)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
