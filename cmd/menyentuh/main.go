package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/menyentuh/website/internal/api/dto/common"
	"github.com/menyentuh/website/internal/logging"
	"github.com/menyentuh/website/internal/version"
	"github.com/menyentuh/website/internal/webform"
)

var (
	logger *logging.Logger
	cliCfg *cliConfig
)

func initLogger() {
	cfg, err := loadCLIConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	cliCfg = cfg

	logging.Configure(logging.DefaultConfig(cfg.LogLevel, "~/.menyentuh/cli.log"))
	logger = logging.GetLogger()
}

var rootCmd = &cobra.Command{
	Use:   "menyentuh",
	Short: "Menyentuh CLI - contact form client",
	Long: `Menyentuh CLI sends contact form submissions to the Menyentuh website
and builds pre-filled WhatsApp links, using the same validation as the site.`,
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Send a contact form submission",
	Long: `Validate the form fields and post them to the contact endpoint of a running server.

Example:
  menyentuh submit --name "Sari" --email sari@example.com --subject Massage --message "Hallo!"
  menyentuh submit --server https://menyentuh.nl --lang en ...`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ctrl := webform.NewController(webform.Config{
			Endpoint: contactEndpoint(cmd),
			Lang:     langFromFlags(cmd),
		}, newTerminalView())

		if err := ctrl.Submit(ctx, formFromFlags(cmd)); err != nil {
			logger.Debug("Submit failed: %v", err)
			os.Exit(1)
		}
	},
}

var whatsAppCmd = &cobra.Command{
	Use:   "whatsapp",
	Short: "Print a pre-filled WhatsApp link for the form",
	Run: func(cmd *cobra.Command, args []string) {
		number, _ := cmd.Flags().GetString("number")
		if number == "" {
			number = cliCfg.WhatsAppNumber
		}

		ctrl := webform.NewController(webform.Config{
			WhatsAppNumber: number,
			Lang:           langFromFlags(cmd),
		}, newTerminalView())

		link, err := ctrl.WhatsApp(formFromFlags(cmd))
		if err != nil {
			if errors.Is(err, webform.ErrNoWhatsAppNumber) {
				logger.Error("No WhatsApp number: pass --number or set WHATSAPP_NUMBER")
			}
			os.Exit(1)
		}
		fmt.Println(link)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Info("Menyentuh CLI version: %s", version.Info())
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the health of a running server",
	Run: func(cmd *cobra.Command, args []string) {
		url := serverURL(cmd) + "/health"
		client := &http.Client{Timeout: 10 * time.Second}

		resp, err := client.Get(url)
		if err != nil {
			logger.Error("Server unreachable: %v", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		var health common.HealthResponse
		if err := json.NewDecoder(resp.Body).Decode(&health); err != nil || resp.StatusCode != http.StatusOK {
			logger.Error("Unexpected health response (HTTP %d)", resp.StatusCode)
			os.Exit(1)
		}

		logger.Info("=== Menyentuh Server Status ===")
		logger.Info("  Server: %s", serverURL(cmd))
		logger.Info("  Status: %s", health.Status)
		logger.Info("  Version: %s", health.Version)
		if health.MailConfigured {
			logger.Info("  Mail: ✅ configured")
		} else {
			logger.Warn("  Mail: ❌ RESEND_API_KEY missing, submissions will fail")
		}

		if version.IsUpdateAvailable(version.Version, health.Version) {
			logger.Info("  Note: the server runs %s, this CLI is %s", health.Version, version.Version)
		}
	},
}

func init() {
	// Initialize logger first
	initLogger()

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(whatsAppCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)

	rootCmd.PersistentFlags().String("server", "", "Server base URL (default: $MENYENTUH_SERVER or http://localhost:8080)")

	addFormFlags(submitCmd)
	addFormFlags(whatsAppCmd)
	whatsAppCmd.Flags().String("number", "", "WhatsApp number in international format (default: $WHATSAPP_NUMBER)")

	logger.Debug("CLI commands and flags initialized")
}

func main() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}
