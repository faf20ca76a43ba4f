package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/contact-qa/docs"
	"github.com/johnquangdev/contact-qa/pkg/config"
)

// @title           Contact QA API
// @version         1.0
// @description     Call-center quality assessment: draft forms, AI assisted assessments and transcript review.

// @contact.name   API Support

// @BasePath  /v1

// @securityDefinitions.apikey SessionToken
// @in header
// @name X-Session-Token
// @description Browser session token. Issued on the first request and echoed back on every response.

// rootCmd is the contact-qa entry point
var rootCmd = &cobra.Command{
	Use:   "contact-qa",
	Short: "Contact quality assessment API",
	Long: `Contact QA serves the assessment dashboard API.

Available subcommands:
  serve   - Run the HTTP API
  migrate - Apply or roll back the database schema`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds a development logger outside production
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// bootstrap loads configuration and the logger shared by every command
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger, nil
}
