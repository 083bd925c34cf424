// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the writer-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amulya/writer-engine/internal/secrets"
	"github.com/amulya/writer-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, otherwise the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the writer-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "writer-engine",
	Short: "Multi-format AI writing engine",
	Long: `writer-engine generates written content (essays, reports, summaries,
explanations, audits, articles, and social posts) through a staged pipeline:
gather background facts, summarize, derive insights, compose prose, and
optionally render the result as a paginated PDF.

Run the HTTP surface with "serve" or generate a single piece with "write".`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./writer-engine.yaml or ~/.config/writer-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("writer-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "writer-engine"))
		}
	}

	viper.SetEnvPrefix("WRITER_ENGINE")
	viper.AutomaticEnv()

	viper.SetDefault("generation.model", "claude-sonnet-4-5-20250929")
	viper.SetDefault("generation.max_tokens", 2000)
	viper.SetDefault("generation.timeout", time.Minute)
	viper.SetDefault("generation.max_snippets", 5)
	viper.SetDefault("server.addr", ":8001")
	viper.SetDefault("server.allowed_origin", "*")
	viper.SetDefault("server.shutdown_grace", 10*time.Second)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// engineConfig assembles the full configuration from viper and loaded
// secrets. The anthropic-api-key secret backs the API key unless the config
// or environment overrides it.
func engineConfig() types.EngineConfig {
	return types.EngineConfig{
		Server: types.ServerConfig{
			Addr:          viper.GetString("server.addr"),
			AllowedOrigin: viper.GetString("server.allowed_origin"),
			ShutdownGrace: viper.GetDuration("server.shutdown_grace"),
		},
		Generation: types.GenerationConfig{
			AIConfig: types.AIConfig{
				Model:     viper.GetString("generation.model"),
				APIKey:    secretDefault("anthropic-api-key", viper.GetString("generation.api_key")),
				MaxTokens: viper.GetInt("generation.max_tokens"),
				Timeout:   viper.GetDuration("generation.timeout"),
			},
			MaxSnippets: viper.GetInt("generation.max_snippets"),
		},
		Page: types.PageSetup{
			PageWidth:   viper.GetFloat64("page.page_width"),
			PageHeight:  viper.GetFloat64("page.page_height"),
			MarginInset: viper.GetFloat64("page.margin_inset"),
			LineHeight:  viper.GetFloat64("page.line_height"),
			TitleGap:    viper.GetFloat64("page.title_gap"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
