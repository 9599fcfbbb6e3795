// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

const sectionPrefix = "## "

// sectionHeadingRe matches the level-2 heading marker that starts a section.
var sectionHeadingRe = regexp.MustCompile(`(?m)^##[ \t]+`)

// Segment splits a document into sections on level-2 heading lines. Each
// returned section is re-prefixed with "## " so it still starts with its own
// heading line. Text before the first heading is dropped unless it already
// starts with a level-3 heading. Blank fragments are dropped and order is
// preserved.
func Segment(document string) []string {
	locs := sectionHeadingRe.FindAllStringIndex(document, -1)

	fragments := make([]string, 0, len(locs)+1)
	prev := 0
	for _, loc := range locs {
		fragments = append(fragments, document[prev:loc[0]])
		prev = loc[1]
	}
	fragments = append(fragments, document[prev:])

	var sections []string
	for i, frag := range fragments {
		trimmed := strings.TrimSpace(frag)
		if trimmed == "" {
			continue
		}
		// fragments[0] is whatever precedes the first heading.
		if i == 0 && !strings.HasPrefix(trimmed, "###") {
			continue
		}
		sections = append(sections, sectionPrefix+frag)
	}
	return sections
}
