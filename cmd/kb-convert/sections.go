// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/kb-convert/internal/convert"
	"github.com/pdiddy/kb-convert/pkg/types"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections [files...]",
	Short: "List the sections a conversion would emit, without writing",
	Long: `Sections extracts each file and prints the persona, topic and subtopic of
every section that would be converted, plus the number of sections that would
be skipped. Nothing is written.`,
	RunE: runSections,
}

func init() {
	addConvertFlags(sectionsCmd.Flags())
	sectionsCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(sectionsCmd)
}

// fileSections is the listing for one input file.
type fileSections struct {
	File     string           `json:"file"`
	Sections []types.Metadata `json:"sections"`
	Skipped  int              `json:"skipped"`
	Status   string           `json:"status,omitempty"`
}

func runSections(cmd *cobra.Command, args []string) error {
	cfg, err := convertConfig(cmd)
	if err != nil {
		return err
	}

	var listings []fileSections
	for _, p := range inputPaths(cfg, args) {
		fl, err := listSections(p, cfg)
		if err != nil {
			return err
		}
		listings = append(listings, fl)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSectionsOutput(cmd.OutOrStdout(), listings, jsonOutput)
}

func listSections(path string, cfg types.ConvertConfig) (fileSections, error) {
	fl := fileSections{File: path, Sections: []types.Metadata{}}

	res, err := convert.Inspect(path, cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fl.Status = string(convert.StatusMissing)
		return fl, nil
	case errors.Is(err, convert.ErrAlreadyConverted):
		fl.Status = string(convert.StatusAlreadyConverted)
		return fl, nil
	case err != nil:
		return fl, err
	}

	for _, rec := range res.Records {
		fl.Sections = append(fl.Sections, rec.Metadata)
	}
	fl.Skipped = res.Skipped
	return fl, nil
}

func formatSectionsOutput(w io.Writer, listings []fileSections, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listings)
	}

	for _, fl := range listings {
		fmt.Fprintf(w, "%s\n", filepath.Base(fl.File))
		if fl.Status != "" {
			fmt.Fprintf(w, "  (%s)\n\n", fl.Status)
			continue
		}

		fmt.Fprintf(w, "  %-4s  %-16s  %-30s  %s\n", "#", "Persona", "Topic", "Subtopic")
		fmt.Fprintf(w, "  %s\n", strings.Repeat("-", 80))
		for i, m := range fl.Sections {
			fmt.Fprintf(w, "  %-4d  %-16s  %-30s  %s\n", i+1, truncate(m.Persona, 16), truncate(m.Topic, 30), m.Subtopic)
		}
		fmt.Fprintf(w, "\n  %d sections, %d skipped\n\n", len(fl.Sections), fl.Skipped)
	}
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

