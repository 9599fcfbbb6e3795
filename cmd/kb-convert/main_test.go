// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/kb-convert/pkg/types"
)

const doc = "## Sleep\n### Night Sweats\n### **Content**\nTry cooling sheets.\n"

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestInputPaths(t *testing.T) {
	cfg := types.ConvertConfig{KnowledgeDir: "kb", Files: []string{"a.md", "b.md"}}

	assert.Equal(t, []string{"x.md"}, inputPaths(cfg, []string{"x.md"}))
	assert.Equal(t, []string{filepath.Join("kb", "a.md"), filepath.Join("kb", "b.md")}, inputPaths(cfg, nil))
}

func TestConvertConfig_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := convertConfig(sectionsCmd)
	require.NoError(t, err)

	assert.Equal(t, types.DefaultKnowledgeDir, cfg.KnowledgeDir)
	assert.Equal(t, types.DefaultPersona, cfg.DefaultPersona)
	assert.Equal(t, types.DefaultFiles, cfg.Files)
	assert.Empty(t, cfg.OutputSuffix)
}

func TestConvertConfig_FromViper(t *testing.T) {
	resetViper(t)
	viper.Set("convert.files", []string{"One.md"})
	viper.Set("convert.default_persona", "andropause")

	cfg, err := convertConfig(sectionsCmd)
	require.NoError(t, err)

	assert.Equal(t, []string{"One.md"}, cfg.Files)
	assert.Equal(t, "andropause", cfg.DefaultPersona)
}

func TestRootCmd_Convert(t *testing.T) {
	resetViper(t)
	path := filepath.Join(t.TempDir(), "Sleep.md")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"convert", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "persona: \"menopause\"\ntopic: \"Sleep\"\nsubtopic: \"Night Sweats\"\n")
	assert.Contains(t, out.String(), "conversion complete")
}

func TestFormatSectionsOutput(t *testing.T) {
	listings := []fileSections{
		{
			File:     "kb/Sleep.md",
			Sections: []types.Metadata{{Persona: "menopause", Topic: "Sleep", Subtopic: "Night Sweats"}},
			Skipped:  2,
		},
		{File: "kb/Gone.md", Sections: []types.Metadata{}, Status: "missing"},
	}

	var text bytes.Buffer
	require.NoError(t, formatSectionsOutput(&text, listings, false))
	assert.Contains(t, text.String(), "Sleep.md\n")
	assert.Contains(t, text.String(), "Night Sweats")
	assert.Contains(t, text.String(), "1 sections, 2 skipped")
	assert.Contains(t, text.String(), "(missing)")

	var js bytes.Buffer
	require.NoError(t, formatSectionsOutput(&js, listings, true))
	var decoded []fileSections
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, listings, decoded)
}

func TestListSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Sleep.md")
	require.NoError(t, os.WriteFile(path, []byte(doc+"\n## Loose\nno sub-heading\n"), 0o644))

	fl, err := listSections(path, types.DefaultConvertConfig())
	require.NoError(t, err)
	assert.Equal(t, []types.Metadata{{Persona: "menopause", Topic: "Sleep", Subtopic: "Night Sweats"}}, fl.Sections)
	assert.Equal(t, 1, fl.Skipped)

	fl, err = listSections(filepath.Join(dir, "missing.md"), types.DefaultConvertConfig())
	require.NoError(t, err)
	assert.Equal(t, "missing", fl.Status)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
