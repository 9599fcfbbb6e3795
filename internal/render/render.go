// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render serializes extracted records into the delimited block
// format read by the knowledge-base loader. Each record is one block opened
// and closed by a "---" line, with keys in a fixed order and absent optional
// fields omitted.
package render

import (
	"strings"

	"github.com/pdiddy/kb-convert/pkg/types"
)

const (
	delimiter    = "---\n"
	blockIndent  = "  "
	listItemMark = "  - "
)

// scalarEscaper escapes backslashes and double quotes and collapses
// newlines so every scalar fits on one double-quoted line.
var scalarEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\r\n", " ",
	"\n", " ",
)

// Document renders all records in order.
func Document(records []types.Record) string {
	var b strings.Builder
	for _, rec := range records {
		writeRecord(&b, rec)
	}
	return b.String()
}

// Record renders a single record block, including its trailing blank line.
func Record(rec types.Record) string {
	var b strings.Builder
	writeRecord(&b, rec)
	return b.String()
}

func writeRecord(b *strings.Builder, rec types.Record) {
	b.WriteString(delimiter)
	writeScalar(b, "", "persona", rec.Persona)
	writeScalar(b, "", "topic", rec.Topic)
	writeScalar(b, "", "subtopic", rec.Subtopic)

	b.WriteString("\ncontent_text: |\n")
	if rec.ContentText == "" {
		b.WriteString("\n")
	} else {
		for _, line := range strings.Split(rec.ContentText, "\n") {
			b.WriteString(blockIndent + line + "\n")
		}
	}

	writeList(b, "action_tips", rec.ActionTips)

	if rec.MotivationNudge != "" {
		b.WriteString("\n")
		writeScalar(b, "", "motivation_nudge", rec.MotivationNudge)
	}

	if hs := rec.HabitStrategy; hs != nil && (hs.Principle != "" || hs.Explanation != "") {
		b.WriteString("\nhabit_strategy:\n")
		writeScalar(b, blockIndent, "principle", hs.Principle)
		writeScalar(b, blockIndent, "explanation", hs.Explanation)
		writeScalar(b, blockIndent, "example", hs.Example)
		writeScalar(b, blockIndent, "habit_tip", hs.HabitTip)
	}

	if rec.FollowUpQuestion != "" {
		b.WriteString("\n")
		writeScalar(b, "", "follow_up_question", rec.FollowUpQuestion)
	}

	writeList(b, "intent_patterns", rec.IntentPatterns)
	writeList(b, "keywords", rec.Keywords)

	b.WriteString(delimiter + "\n")
}

// writeScalar writes `key: "value"` and skips empty values.
func writeScalar(b *strings.Builder, indent, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(indent + key + ": " + Quote(value) + "\n")
}

func writeList(b *strings.Builder, key string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + key + ":\n")
	for _, item := range items {
		b.WriteString(listItemMark + Quote(item) + "\n")
	}
}

// Quote returns s as a double-quoted scalar.
func Quote(s string) string {
	return `"` + scalarEscaper.Replace(s) + `"`
}
