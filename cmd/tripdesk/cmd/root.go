package cmd

import (
	"fmt"
	"os"
	"time"

	"tripdesk/internal/api"
	"tripdesk/internal/config"
	"tripdesk/internal/logger"
	"tripdesk/internal/token"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the config file (set via --config flag)
	cfgFile string

	// cfg holds the loaded configuration
	cfg *config.Config

	// log is the logger instance
	log *logger.Logger

	// cmdStartTime tracks when command execution started
	cmdStartTime time.Time

	// cmdRequestID tags every log line of this invocation
	cmdRequestID string

	// Global flags
	apiURL      string
	verboseMode bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tripdesk",
	Short: "tripdesk is an admin client for the travel-booking platform",
	Long: `tripdesk is a terminal client for the travel-booking platform.
It manages cities, airports, flights, hotels, rooms, roles and users
through the platform's REST API, either interactively (tripdesk tui)
or from scripts (tripdesk list ...).`,
	TraverseChildren: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}

		var err error
		log, err = newCommandLogger(cmd)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cmdStartTime = time.Now()
		cmdRequestID = uuid.NewString()
		log.Debug("command started",
			"command", cmd.Name(),
			"args", args,
			"request_id", cmdRequestID,
		)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if log == nil {
			return nil
		}
		log.Debug("command completed",
			"command", cmd.Name(),
			"duration_ms", time.Since(cmdStartTime).Milliseconds(),
			"request_id", cmdRequestID,
		)
		return log.Close()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(onInitialize)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/tripdesk/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "override the API base URL")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "verbose output (debug logging)")

	viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api-url"))
}

// onInitialize is called before any command runs
func onInitialize() {
	if cfgFile == "" {
		if path, err := config.GenerateConfigIfNotExists(); err == nil && path != "" {
			fmt.Fprintf(os.Stderr, "Created default config at: %s\n", path)
		}
	}
}

// loadConfig loads the configuration and applies flag overrides
func loadConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("api-url") {
		cfg.API.BaseURL = apiURL
	}
	if verboseMode {
		cfg.Log.Level = "debug"
	}
	return cfg.Validate()
}

// newCommandLogger builds the logger for the invocation. The tui
// command owns the terminal, so its log output is forced into the
// configured file (or dropped) instead of stderr.
func newCommandLogger(cmd *cobra.Command) (*logger.Logger, error) {
	logCfg := cfg.Log
	if cmd.Name() == "tui" {
		if logCfg.FilePath == "" {
			return logger.Discard(), nil
		}
		logCfg.Output = logCfg.FilePath
	}
	return logger.New(logCfg)
}

// newClient builds the API client from the loaded config, reading the
// bearer token lazily so a login during the process takes effect.
func newClient() (*api.Client, *token.Store, error) {
	store, err := token.NewStore(cfg.API.TokenPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open token store: %w", err)
	}
	client, err := api.New(api.Options{
		BaseURL:     cfg.API.BaseURL,
		Timeout:     cfg.API.Timeout,
		RateLimit:   cfg.API.RateLimit,
		RateBurst:   cfg.API.RateBurst,
		TokenSource: api.TokenFunc(store.Load),
		Logger:      log.Logger,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, store, nil
}

// Config returns the current configuration (for use by subcommands)
func Config() *config.Config {
	return cfg
}

// Log returns the logger instance (for use by subcommands)
func Log() *logger.Logger {
	return log
}
