// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns a Markdown knowledge-base document into typed
// records. A document is a flat list of level-2 sections; each section
// carries persona/topic/subtopic metadata and a set of level-3 sub-sections
// (content, action tips, motivation nudge, habit strategy, follow-up
// question, intent patterns, keywords).
//
// Extraction never fails: a sub-section is either found or absent, and a
// section whose metadata cannot be resolved is skipped and counted.
package extract

import (
	"strings"

	"github.com/pdiddy/kb-convert/pkg/types"
)

// Result holds the records extracted from one document.
type Result struct {
	// Records lists the retained sections in document order.
	Records []types.Record

	// Skipped counts sections dropped because no resolver could recover
	// their topic and subtopic.
	Skipped int
}

// ExtractDocument segments the document and extracts one record per section
// whose metadata the resolvers can recover.
func ExtractDocument(document string, resolvers Resolvers) Result {
	document = strings.ReplaceAll(document, "\r\n", "\n")

	var res Result
	for _, sec := range Segment(document) {
		rec, ok := ExtractSection(sec, resolvers)
		if !ok {
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res
}

// ExtractSection resolves the section's metadata and extracts every known
// sub-section. It returns false when the metadata cannot be resolved.
func ExtractSection(section string, resolvers Resolvers) (types.Record, bool) {
	meta, ok := resolvers.Resolve(section)
	if !ok {
		return types.Record{}, false
	}

	rec := types.Record{Metadata: meta}

	if span, ok := FindSpan(section, ContentHeading); ok {
		rec.ContentText = ParseContent(span)
	}
	if span, ok := FindSpan(section, ActionTipsHeading); ok {
		rec.ActionTips = ParseActionTips(span)
	}
	if span, ok := FindSpan(section, MotivationNudgeHeading); ok {
		rec.MotivationNudge = ParseMotivationNudge(span)
	}
	if span, ok := FindSpan(section, HabitStrategyHeading); ok {
		rec.HabitStrategy = ParseHabitStrategy(span)
	}
	if span, ok := FindSpan(section, FollowUpQuestionHeading); ok {
		rec.FollowUpQuestion = ParseFollowUpQuestion(span)
	}
	if span, ok := FindSpan(section, IntentPatternsHeading); ok {
		rec.IntentPatterns = ParseIntentPatterns(span)
	}
	if span, ok := FindSpan(section, KeywordsHeading); ok {
		rec.Keywords = ParseKeywords(span)
	}

	return rec, true
}
