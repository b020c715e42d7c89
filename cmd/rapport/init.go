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
	initVersioning bool
	initFormat     string
)

// initCmd creates rapport.yaml and the data store in the current directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a rapport project in the current directory",
	Long: `Create rapport.yaml, the .rapport directory and an empty data store in the
current directory. With --versioning every change is committed to Git.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		cfgFile := filepath.Join(cwd, "rapport.yaml")
		if _, err := os.Stat(cfgFile); err == nil {
			fatal("Cannot initialize", fmt.Errorf("%s already exists", cfgFile))
		}
		if err := os.MkdirAll(filepath.Join(cwd, ".rapport"), 0755); err != nil {
			fatal("Failed to create .rapport", err)
		}

		cfg := &rapport.Config{
			DataFile:   filepath.Join("data", "addressbook."+initFormat),
			Adapter:    "fs",
			Versioning: initVersioning,
		}
		if adapter != "" {
			cfg.Adapter = adapter
		}
		if cfg.Adapter == "sqlite" {
			cfg.DataFile = filepath.Join("data", "rapport.db")
			cfg.Versioning = false
		}
		if dataPath != "" {
			cfg.DataFile = dataPath
		}
		if err := cfg.Save(cfgFile); err != nil {
			fatal("Failed to write config", err)
		}

		dataFile := cfg.DataFile
		if !filepath.IsAbs(dataFile) {
			dataFile = filepath.Join(cwd, dataFile)
		}
		mgr, err := rapport.New(dataFile, append(cfg.Options(),
			rapport.WithAutoInit(true), rapport.WithLogger(slog.Default()))...)
		if err != nil {
			fatal("Failed to initialize storage", err)
		}
		defer mgr.Close()

		fmt.Fprintln(cmd.OutOrStdout(), "Initialized empty Rapport project in", cwd)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initVersioning, "versioning", false, "Commit every change to Git")
	initCmd.Flags().StringVar(&initFormat, "format", "json", "Data file format: json or yaml")
}
