// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"
)

var closingDelimiterRe = regexp.MustCompile(`(?m)^---[ \t]*$`)

// recordKeys are the keys every rendered block carries.
var recordKeys = []string{"persona", "topic", "subtopic", "content_text"}

// IsConverted reports whether document already looks like rendered output:
// it opens with a "---" line and its first block decodes as a YAML mapping
// that carries persona, topic, subtopic and content_text. Markdown with
// persona/topic/subtopic frontmatter is not a rendered block.
func IsConverted(document string) bool {
	doc := strings.TrimLeft(strings.ReplaceAll(document, "\r\n", "\n"), " \t\n")
	if !strings.HasPrefix(doc, delimiter) {
		return false
	}

	block := doc[len(delimiter):]
	if loc := closingDelimiterRe.FindStringIndex(block); loc != nil {
		block = block[:loc[0]]
	}

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(block), &fields); err != nil {
		return false
	}
	for _, k := range recordKeys {
		if _, ok := fields[k]; !ok {
			return false
		}
	}
	return true
}
