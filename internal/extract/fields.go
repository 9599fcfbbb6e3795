// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/kb-convert/pkg/types"
)

// minIntentPatternLen is the shortest intent pattern kept, in runes.
const minIntentPatternLen = 3

var (
	boldRe         = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	trailingRuleRe = regexp.MustCompile(`\n*---[ \t]*\n*$`)
	bulletRe       = regexp.MustCompile(`^[-•]\s*`)
	separatorRe    = regexp.MustCompile(`^-{2,}$`)

	// intentHeaderRe matches category lines such as "- PRIMARY INTENTS".
	intentHeaderRe = regexp.MustCompile(`^[-•]\s*[A-Z\s]+INTENTS?`)
	intentNoteRe   = regexp.MustCompile(`\s*\[\+.*?\]\s*$`)

	sharedNoteRe = regexp.MustCompile(`\s*\[shared.*?\]\s*$`)
	routeNoteRe  = regexp.MustCompile(`\s*\[→.*?\]\s*$`)

	// keywordHeaderRe matches a category line that is bold from end to end.
	keywordHeaderRe = regexp.MustCompile(`^\*\*[^*]+\*\*:?$`)

	principleRe   = regexp.MustCompile(`\*\*(?:Strategy|Principle):\*\*[ \t]*([^\n]+)`)
	explanationRe = regexp.MustCompile(`\*\*Explanation:\*\*[ \t]*([^\n]+)`)
	exampleRe     = regexp.MustCompile(`\*\*Example:\*\*[ \t]*([^\n]+)`)
	habitTipRe    = regexp.MustCompile(`\*\*Habit Tip:\*\*[ \t]*([^\n]+)`)
)

// ParseContent returns the trimmed content body without a trailing rule.
func ParseContent(span string) string {
	return stripTrailingRule(strings.TrimSpace(span))
}

// ParseActionTips returns the bullet entries of an Action Tips span with
// bullets and bold markers removed.
func ParseActionTips(span string) []string {
	var tips []string
	for _, line := range bulletLines(span) {
		tip := stripEmphasis(strings.TrimSpace(stripBullet(line)))
		if tip != "" {
			tips = append(tips, tip)
		}
	}
	return tips
}

// ParseMotivationNudge returns the nudge text with bold markers removed.
func ParseMotivationNudge(span string) string {
	return stripEmphasis(stripTrailingRule(strings.TrimSpace(span)))
}

// ParseHabitStrategy reads the labeled strategy fields. It returns nil unless
// the principle or the explanation is present.
func ParseHabitStrategy(span string) *types.HabitStrategy {
	hs := types.HabitStrategy{
		Principle:   labeledValue(principleRe, span),
		Explanation: labeledValue(explanationRe, span),
		Example:     labeledValue(exampleRe, span),
		HabitTip:    labeledValue(habitTipRe, span),
	}
	if hs.Principle == "" && hs.Explanation == "" {
		return nil
	}
	return &hs
}

// ParseFollowUpQuestion returns a single question. When the body is a
// bulleted list only the first bullet is kept.
func ParseFollowUpQuestion(span string) string {
	text := stripTrailingRule(strings.TrimSpace(span))
	if !isBullet(text) {
		return stripEmphasis(text)
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !isBullet(line) || separatorRe.MatchString(line) {
			continue
		}
		return stripEmphasis(strings.TrimSpace(stripBullet(line)))
	}
	return ""
}

// ParseIntentPatterns returns the bullet entries of an Intent Patterns span.
// All-caps "...INTENTS" category lines are skipped, trailing "[+...]" notes
// are removed, and entries shorter than three characters are dropped.
func ParseIntentPatterns(span string) []string {
	var patterns []string
	for _, line := range bulletLines(span) {
		if intentHeaderRe.MatchString(line) {
			continue
		}
		p := strings.TrimSpace(stripBullet(line))
		p = strings.TrimSpace(intentNoteRe.ReplaceAllString(p, ""))
		if utf8.RuneCountInString(p) >= minIntentPatternLen {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// ParseKeywords returns the bullet entries of a Keywords span. Lines that are
// bold from end to end are category headers and are skipped. Trailing
// "[shared...]" and "[→...]" notes and inline bold markers are removed.
func ParseKeywords(span string) []string {
	var keywords []string
	for _, line := range bulletLines(span) {
		k := strings.TrimSpace(stripBullet(line))
		k = strings.TrimSpace(sharedNoteRe.ReplaceAllString(k, ""))
		k = strings.TrimSpace(routeNoteRe.ReplaceAllString(k, ""))
		if k == "" || keywordHeaderRe.MatchString(k) {
			continue
		}
		keywords = append(keywords, stripEmphasis(k))
	}
	return keywords
}

// bulletLines returns the trimmed list entries of span, leaving out bare
// separators and checkbox bullets.
func bulletLines(span string) []string {
	var out []string
	for _, line := range strings.Split(span, "\n") {
		line = strings.TrimSpace(line)
		if !isBullet(line) || separatorRe.MatchString(line) {
			continue
		}
		if strings.HasPrefix(stripBullet(line), "[") {
			continue
		}
		out = append(out, line)
	}
	return out
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•")
}

func stripBullet(line string) string {
	return bulletRe.ReplaceAllString(line, "")
}

func stripEmphasis(s string) string {
	return boldRe.ReplaceAllString(s, "$1")
}

func stripTrailingRule(s string) string {
	return strings.TrimSpace(trailingRuleRe.ReplaceAllString(s, ""))
}

func labeledValue(re *regexp.Regexp, s string) string {
	v, _ := firstMatch(re, s)
	return v
}
