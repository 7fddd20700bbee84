package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gamescope/nexctl/config"
	"github.com/gamescope/nexctl/hit2"
	"github.com/gamescope/nexctl/maplestory"
	"github.com/gamescope/nexctl/nexon"
)

var (
	cfgFile     string
	cfg         *config.Config
	logger      zerolog.Logger
	apiClient   *nexon.Client
	hit2Client  *hit2.Client
	mapleClient *maplestory.Client

	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records build metadata injected by the linker.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nexctl",
	Short: "A CLI for querying Nexon Open API game data",
	Long: `nexctl is a CLI tool for looking up character and ranking data from the
Nexon Open API (MapleStory, HIT2). It wraps a typed client library that
validates API responses against per-endpoint schemas.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create the API client
	clientOpts := []nexon.Option{
		nexon.WithTimeout(cfg.Nexon.Timeout),
		nexon.WithMaxRetries(cfg.Nexon.MaxRetries),
		nexon.WithUserAgent("nexctl/" + version),
	}
	if cfg.Nexon.StrictValidation {
		clientOpts = append(clientOpts, nexon.WithStrictValidation())
	}

	apiClient, err = nexon.NewClient(cfg.Nexon.BaseURL, cfg.Nexon.APIKey, logger, clientOpts...)
	if err != nil {
		return fmt.Errorf("failed to create Nexon client: %w", err)
	}

	hit2Client = hit2.NewClient(apiClient, logger)
	mapleClient = maplestory.NewClient(apiClient, logger)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when writing to a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
