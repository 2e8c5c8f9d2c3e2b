/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/suparena/ddbcompat/client"
)

// CLI flags that override config file and environment values
var (
	cfgFile     string
	url         string
	aws         bool
	runVerySlow bool
	logLevel    string
	logFormat   string
	reportPath  string
)

var rootCmd = &cobra.Command{
	Use:   "ddbcompat",
	Short: "DynamoDB API compatibility checker",
	Long: `ddbcompat runs a catalog of behavioral checks against a DynamoDB-style
endpoint and reports where the target diverges from DynamoDB semantics.

By default it targets a local emulator at http://localhost:4566 with
dummy credentials. Pass --aws to run against real DynamoDB using the
ambient AWS credential chain.

Example:
  ddbcompat run --url http://localhost:8000
  ddbcompat run --aws --run-very-slow`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (optional)")
	rootCmd.PersistentFlags().StringVar(&url, "url", "",
		"Endpoint to check (default http://localhost:4566)")
	rootCmd.PersistentFlags().BoolVar(&aws, "aws", false,
		"Target real DynamoDB instead of an emulator")
	rootCmd.PersistentFlags().BoolVar(&runVerySlow, "run-very-slow", false,
		"Run checks marked very slow")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"Log format (json, text)")
	rootCmd.PersistentFlags().StringVar(&reportPath, "report", "",
		"Write the JSON run report to this file")
}

// loadConfig resolves the effective configuration: config file when
// given, environment otherwise, with flags overriding either.
func loadConfig() (client.Config, error) {
	var cfg client.Config
	var err error
	if cfgFile != "" {
		cfg, err = client.FromFile(cfgFile)
	} else {
		cfg, err = client.FromEnv()
	}
	if err != nil {
		return client.Config{}, err
	}
	if url != "" {
		cfg.Endpoint = url
	}
	if aws {
		cfg.AWS = true
	}
	if err := cfg.Validate(); err != nil {
		return client.Config{}, err
	}
	return cfg, nil
}
