package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/rapport"
)

var (
	verbose    bool
	dataPath   string
	adapter    string
	configPath string
)

// rootCmd starts the interactive shell when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "rapport",
	Short: "Keep track of your contacts and the meetings you have with them",
	Long: `Rapport is a command-line address book for contacts and meetings.
Run it without arguments for an interactive shell, or use "rapport exec" for one-off commands.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		runShell(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Data file or directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&adapter, "adapter", "", "Storage adapter: fs or sqlite (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: rapport.yaml at the project root)")
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*rapport.Config, error) {
	path := configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		root := wd
		if found, err := rapport.FindRoot(wd); err == nil {
			root = found
		}
		path = filepath.Join(root, "rapport.yaml")
	}

	cfg, err := rapport.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if dataPath != "" {
		cfg.DataFile = dataPath
	}
	if adapter != "" {
		cfg.Adapter = adapter
	}
	slog.Debug("configuration loaded", "file", cfg.File, "data", cfg.DataFile, "adapter", cfg.Adapter)
	return cfg, nil
}

// openManager loads the config and opens the address book it points to.
func openManager(extra ...rapport.Option) (*rapport.Manager, *rapport.Config) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("Failed to load configuration", err)
	}

	opts := append(cfg.Options(), rapport.WithAutoInit(true), rapport.WithLogger(slog.Default()))
	opts = append(opts, extra...)

	mgr, err := rapport.New(cfg.DataFile, opts...)
	if err != nil {
		fatal("Failed to open address book", err)
	}
	return mgr, cfg
}
