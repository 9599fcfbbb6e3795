// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSpan(t *testing.T) {
	tests := []struct {
		name    string
		section string
		heading Heading
		want    string
		wantOK  bool
	}{
		{
			name:    "bold heading up to next sub-heading",
			section: "## T\n### **Content**\nline one\nline two\n### **Action Tips**\n- tip\n",
			heading: ContentHeading,
			want:    "line one\nline two",
			wantOK:  true,
		},
		{
			name:    "plain heading without emphasis",
			section: "## T\n### Content\nbody\n",
			heading: ContentHeading,
			want:    "body\n",
			wantOK:  true,
		},
		{
			name:    "stops at rule line",
			section: "## T\n### **Motivation Nudge**\nYou can do it.\n---\ntrailing\n",
			heading: MotivationNudgeHeading,
			want:    "You can do it.",
			wantOK:  true,
		},
		{
			name:    "singular spelling",
			section: "## T\n### **Action Tip**\n- one\n",
			heading: ActionTipsHeading,
			want:    "- one\n",
			wantOK:  true,
		},
		{
			name:    "plural spelling",
			section: "## T\n### **Follow-Up Questions**\n- q?\n",
			heading: FollowUpQuestionHeading,
			want:    "- q?\n",
			wantOK:  true,
		},
		{
			name:    "habit strategy with qualifier",
			section: "## T\n### **Habit Strategy (Atomic Habits)**\n**Principle:** p\n",
			heading: HabitStrategyHeading,
			want:    "**Principle:** p\n",
			wantOK:  true,
		},
		{
			name:    "empty body before next heading is absent",
			section: "## T\n### **Keywords**\n### **Intent Patterns**\n- something\n",
			heading: KeywordsHeading,
			wantOK:  false,
		},
		{
			name:    "whitespace-only body is absent",
			section: "## T\n### **Keywords**\n\n   \n---\n",
			heading: KeywordsHeading,
			wantOK:  false,
		},
		{
			name:    "missing heading",
			section: "## T\n### **Content**\ntext\n",
			heading: KeywordsHeading,
			wantOK:  false,
		},
		{
			name:    "label must fill the heading",
			section: "## T\n### **Keywords & Triggers**\n- a\n",
			heading: KeywordsHeading,
			wantOK:  false,
		},
		{
			name:    "level-4 heading does not end the span",
			section: "## T\n### **Content**\nintro\n#### Detail\nmore\n",
			heading: ContentHeading,
			want:    "intro\n#### Detail\nmore\n",
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindSpan(tt.section, tt.heading)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHeading_EmphasisMarkers(t *testing.T) {
	for _, line := range []string{
		"### Content",
		"### **Content**",
		"### __Content__",
		"### *Content*",
		"### _Content_",
	} {
		t.Run(line, func(t *testing.T) {
			assert.True(t, ContentHeading.Match(line))
		})
	}
	assert.False(t, ContentHeading.Match("### ***Content"))
}

func TestNewHeading_CustomLabel(t *testing.T) {
	h := NewHeading(`Red Flags?`)

	assert.True(t, h.Match("### **Red Flags**"))
	assert.True(t, h.Match("### Red Flag  "))
	assert.False(t, h.Match("## Red Flags"))
	assert.False(t, h.Match("### red flags"))
}
