// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Metadata identifies a knowledge-base section. All three fields are
// required on every emitted record.
type Metadata struct {
	// Persona is the audience the section is written for (e.g. "menopause").
	Persona string `json:"persona" yaml:"persona"`

	// Topic is the top-level subject, usually the level-2 heading.
	Topic string `json:"topic" yaml:"topic"`

	// Subtopic narrows the topic, usually the first level-3 heading.
	Subtopic string `json:"subtopic" yaml:"subtopic"`
}

// HabitStrategy is the structured payload of a "Habit Strategy" sub-section.
// A strategy is only kept when Principle or Explanation is set.
type HabitStrategy struct {
	Principle   string `json:"principle,omitempty" yaml:"principle,omitempty"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	Example     string `json:"example,omitempty" yaml:"example,omitempty"`
	HabitTip    string `json:"habit_tip,omitempty" yaml:"habit_tip,omitempty"`
}

// Record is one extracted section, ready for serialization. Optional fields
// are left at their zero value when the sub-section is absent.
type Record struct {
	Metadata `yaml:",inline"`

	ContentText      string         `json:"content_text" yaml:"content_text"`
	ActionTips       []string       `json:"action_tips,omitempty" yaml:"action_tips,omitempty"`
	MotivationNudge  string         `json:"motivation_nudge,omitempty" yaml:"motivation_nudge,omitempty"`
	HabitStrategy    *HabitStrategy `json:"habit_strategy,omitempty" yaml:"habit_strategy,omitempty"`
	FollowUpQuestion string         `json:"follow_up_question,omitempty" yaml:"follow_up_question,omitempty"`
	IntentPatterns   []string       `json:"intent_patterns,omitempty" yaml:"intent_patterns,omitempty"`
	Keywords         []string       `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}
