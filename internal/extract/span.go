// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// Heading matches the level-3 heading line that opens one kind of
// sub-section. The label may be wrapped in emphasis markers (**, __, * or _).
type Heading struct {
	re *regexp.Regexp
}

// NewHeading builds a Heading for a label regular expression such as
// `Action Tips?`. The label must fill the whole heading line.
func NewHeading(label string) Heading {
	return Heading{re: regexp.MustCompile(`^###[ \t]+` + emphasisMark + `(?:` + label + `)` + emphasisMark + `[ \t]*$`)}
}

const emphasisMark = `(?:\*\*|__|\*|_)?`

// Match reports whether line opens this sub-section.
func (h Heading) Match(line string) bool {
	return h.re.MatchString(line)
}

// Sub-section headings. Singular and plural spellings are both accepted;
// Habit Strategy may carry a trailing qualifier.
var (
	ContentHeading          = NewHeading(`Content`)
	ActionTipsHeading       = NewHeading(`Action Tips?`)
	MotivationNudgeHeading  = NewHeading(`Motivation Nudge`)
	HabitStrategyHeading    = NewHeading(`Habit Strategy.*?`)
	FollowUpQuestionHeading = NewHeading(`Follow-Up Questions?`)
	IntentPatternsHeading   = NewHeading(`Intent Patterns?`)
	KeywordsHeading         = NewHeading(`Keywords?`)
)

var (
	subheadingRe = regexp.MustCompile(`^###[ \t]`)
	ruleLineRe   = regexp.MustCompile(`^---[ \t]*$`)
)

// FindSpan returns the body of the first sub-section opened by h: the lines
// after the heading up to the next level-3 heading, a "---" rule line, or
// the end of the section. A missing heading or a blank body is reported as
// absent.
func FindSpan(section string, h Heading) (string, bool) {
	lines := strings.Split(section, "\n")
	for i, line := range lines {
		if !h.Match(line) {
			continue
		}
		end := i + 1
		for end < len(lines) && !isSpanBoundary(lines[end]) {
			end++
		}
		body := strings.Join(lines[i+1:end], "\n")
		if strings.TrimSpace(body) == "" {
			return "", false
		}
		return body, true
	}
	return "", false
}

func isSpanBoundary(line string) bool {
	return subheadingRe.MatchString(line) || ruleLineRe.MatchString(line)
}
