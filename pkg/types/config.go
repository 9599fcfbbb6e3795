// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultPersona is used when a heading-derived section carries no
// **Persona:** label.
const DefaultPersona = "menopause"

// DefaultKnowledgeDir is the directory relative input names resolve against.
const DefaultKnowledgeDir = "knowledge-base"

// DefaultFiles lists the knowledge-base documents converted when no paths
// are given on the command line or in the config file.
var DefaultFiles = []string{
	"Metabolic Changes & Weight Gain.md",
	"Sleep Disturbances.md",
}

// ConvertConfig holds settings for the convert stage.
type ConvertConfig struct {
	// KnowledgeDir is the base directory for relative input paths.
	KnowledgeDir string `json:"knowledge_dir" yaml:"knowledge_dir" mapstructure:"knowledge_dir"`

	// Files lists the documents to convert, absolute or relative to KnowledgeDir.
	Files []string `json:"files" yaml:"files" mapstructure:"files"`

	// DefaultPersona is the persona assigned to sections that resolve their
	// topic and subtopic from headings and carry no explicit persona label.
	DefaultPersona string `json:"default_persona" yaml:"default_persona" mapstructure:"default_persona"`

	// OutputSuffix, when set, writes each result next to its source as
	// <name without extension><suffix> instead of overwriting the source.
	OutputSuffix string `json:"output_suffix,omitempty" yaml:"output_suffix,omitempty" mapstructure:"output_suffix"`
}

// DefaultConvertConfig returns a ConvertConfig populated with defaults.
func DefaultConvertConfig() ConvertConfig {
	files := make([]string, len(DefaultFiles))
	copy(files, DefaultFiles)
	return ConvertConfig{
		KnowledgeDir:   DefaultKnowledgeDir,
		Files:          files,
		DefaultPersona: DefaultPersona,
	}
}
