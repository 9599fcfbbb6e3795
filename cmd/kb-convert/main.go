// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the kb-convert CLI, which rewrites
// Markdown knowledge-base documents into delimited persona/topic/subtopic
// records.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the kb-convert CLI.
var rootCmd = &cobra.Command{
	Use:   "kb-convert",
	Short: "Convert Markdown knowledge-base documents into record blocks",
	Long: `kb-convert reads knowledge-base documents written as Markdown sections
(## topic, ### subtopic, labeled sub-sections) and rewrites each file as a
sequence of delimited records with persona, topic, subtopic, content and the
optional tips, nudge, habit strategy, follow-up question, intent patterns and
keywords.

Files are overwritten in place. Files that yield no sections, or that already
hold converted records, are left untouched.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./kb-convert.yaml or ~/.config/kb-convert/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("kb-convert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "kb-convert"))
		}
	}

	viper.SetEnvPrefix("KB_CONVERT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
