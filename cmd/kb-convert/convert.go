// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/kb-convert/internal/convert"
	"github.com/pdiddy/kb-convert/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Rewrite knowledge-base Markdown files as record blocks",
	Long: `Convert extracts every section of each file and overwrites the file with
the rendered records. With no arguments the files listed under convert.files
in the config (resolved against --knowledge-dir) are converted.

Missing files, files without recognizable sections, and files that are
already converted are reported and skipped.`,
	RunE: runConvert,
}

func init() {
	addConvertFlags(convertCmd.Flags())
	convertCmd.Flags().String("output-suffix", "", "write <name><suffix> next to each source instead of overwriting it")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := convertConfig(cmd)
	if err != nil {
		return err
	}

	paths := inputPaths(cfg, args)
	if len(paths) == 0 {
		return fmt.Errorf("no input files: pass file paths or set convert.files in the config")
	}

	_, err = convert.ConvertPaths(paths, cfg, cmd.OutOrStdout())
	return err
}

// --- shared helpers ---

// configKeys maps viper keys to the flags that override them.
var configKeys = map[string]string{
	"convert.knowledge_dir":   "knowledge-dir",
	"convert.default_persona": "default-persona",
	"convert.output_suffix":   "output-suffix",
}

func addConvertFlags(fs *pflag.FlagSet) {
	fs.String("knowledge-dir", types.DefaultKnowledgeDir, "base directory for configured file names")
	fs.String("default-persona", types.DefaultPersona, "persona for sections without a **Persona:** label")
}

// convertConfig binds the command's flags to viper and builds the config.
// Flags win over the config file, which wins over the defaults.
func convertConfig(cmd *cobra.Command) (types.ConvertConfig, error) {
	for key, name := range configKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return types.ConvertConfig{}, fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}

	cfg := types.DefaultConvertConfig()
	if v := viper.GetString("convert.knowledge_dir"); v != "" {
		cfg.KnowledgeDir = v
	}
	if files := viper.GetStringSlice("convert.files"); len(files) > 0 {
		cfg.Files = files
	}
	if v := viper.GetString("convert.default_persona"); v != "" {
		cfg.DefaultPersona = v
	}
	cfg.OutputSuffix = viper.GetString("convert.output_suffix")
	return cfg, nil
}

// inputPaths returns the command-line paths as given, or the configured
// files resolved against the knowledge directory.
func inputPaths(cfg types.ConvertConfig, args []string) []string {
	if len(args) > 0 {
		return args
	}
	return convert.InputPaths(cfg)
}
