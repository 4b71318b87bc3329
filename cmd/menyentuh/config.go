package main

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/spf13/cobra"

	"github.com/menyentuh/website/internal/server/routes"
)

// cliConfig holds defaults for flags that are not passed explicitly
type cliConfig struct {
	ServerURL      string `env:"MENYENTUH_SERVER" envDefault:"http://localhost:8080"`
	WhatsAppNumber string `env:"WHATSAPP_NUMBER"`
	Lang           string `env:"MENYENTUH_LANG" envDefault:"nl"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
}

func loadCLIConfig() (*cliConfig, error) {
	cfg := &cliConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

func serverURL(cmd *cobra.Command) string {
	var server string
	if f := cmd.Flag("server"); f != nil {
		server = f.Value.String()
	}
	if server == "" {
		server = cliCfg.ServerURL
	}
	return strings.TrimSuffix(server, "/")
}

func contactEndpoint(cmd *cobra.Command) string {
	return serverURL(cmd) + routes.ContactPath
}
