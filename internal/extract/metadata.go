// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/kb-convert/pkg/types"
)

var (
	personaLabelRe  = regexp.MustCompile(`\*\*Persona:\*\*[ \t]*([^\r\n]+)`)
	topicLabelRe    = regexp.MustCompile(`\*\*Topic:\*\*[ \t]*([^\r\n]+)`)
	subtopicLabelRe = regexp.MustCompile(`\*\*Subtopic:\*\*[ \t]*([^\r\n]+)`)

	topicHeadingRe    = regexp.MustCompile(`(?m)^##[ \t]+(.+)$`)
	subtopicHeadingRe = regexp.MustCompile(`(?m)^###[ \t]+(.+)$`)
)

// Resolver recovers a section's metadata under one authoring convention.
type Resolver interface {
	Resolve(section string) (types.Metadata, bool)
}

// Resolvers tries each resolver in order and returns the first success.
type Resolvers []Resolver

// Resolve returns the metadata from the first resolver that succeeds.
func (rs Resolvers) Resolve(section string) (types.Metadata, bool) {
	for _, r := range rs {
		if meta, ok := r.Resolve(section); ok {
			return meta, true
		}
	}
	return types.Metadata{}, false
}

// DefaultResolvers returns the label convention followed by the heading
// convention, with defaultPersona as the heading fallback persona.
func DefaultResolvers(defaultPersona string) Resolvers {
	return Resolvers{
		LabelResolver{},
		HeadingResolver{DefaultPersona: defaultPersona},
	}
}

// LabelResolver reads the explicit **Persona:**, **Topic:** and
// **Subtopic:** labels. All three must be present.
type LabelResolver struct{}

// Resolve implements Resolver.
func (LabelResolver) Resolve(section string) (types.Metadata, bool) {
	persona, ok := firstMatch(personaLabelRe, section)
	if !ok {
		return types.Metadata{}, false
	}
	topic, ok := firstMatch(topicLabelRe, section)
	if !ok {
		return types.Metadata{}, false
	}
	subtopic, ok := firstMatch(subtopicLabelRe, section)
	if !ok {
		return types.Metadata{}, false
	}
	return types.Metadata{Persona: persona, Topic: topic, Subtopic: subtopic}, true
}

// HeadingResolver derives the topic from the section's level-2 heading and
// the subtopic from its first level-3 heading. The persona comes from a
// **Persona:** label when one exists, otherwise DefaultPersona.
type HeadingResolver struct {
	DefaultPersona string
}

// Resolve implements Resolver.
func (h HeadingResolver) Resolve(section string) (types.Metadata, bool) {
	topic, ok := firstMatch(topicHeadingRe, section)
	if !ok {
		return types.Metadata{}, false
	}
	subtopic, ok := firstMatch(subtopicHeadingRe, section)
	if !ok {
		return types.Metadata{}, false
	}

	persona, ok := firstMatch(personaLabelRe, section)
	if !ok {
		persona = h.DefaultPersona
		if persona == "" {
			persona = types.DefaultPersona
		}
	}
	return types.Metadata{Persona: persona, Topic: topic, Subtopic: subtopic}, true
}

// firstMatch returns the trimmed first capture group of re in s. Blank
// captures count as no match.
func firstMatch(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	return v, v != ""
}
