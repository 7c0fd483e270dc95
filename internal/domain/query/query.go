// Package query splits a free-text search query into a positive clause and
// an optional negative clause ("style A but not feature B").
package query

import (
	"regexp"
	"strings"
)

// negativeTriggers are the phrases that introduce a negative clause, in
// match-priority order. Each trigger only matches at the start of the query
// or after a space, and must be followed by a space, so that occurrences
// inside other words are ignored.
var negativeTriggers = []string{
	"but not",
	"without",
	"and not",
	"except",
	"do not have",
	"don't have",
	"not including",
	"excluding",
}

var triggerPattern = compileTriggerPattern()

func compileTriggerPattern() *regexp.Regexp {
	quoted := make([]string, len(negativeTriggers))
	for i, t := range negativeTriggers {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?i)(?:^| )(?:` + strings.Join(quoted, "|") + `) `)
}

// Parsed is the positive/negative split of one query. Ephemeral, one per
// request.
type Parsed struct {
	positive string
	negative string
}

// Parse splits raw query text on the left-most negative trigger. The text
// before the trigger becomes the positive clause and the text after it the
// negative clause, both trimmed. With no trigger present the whole query is
// the positive clause. Pure string operation, deterministic.
func Parse(raw string) Parsed {
	loc := triggerPattern.FindStringIndex(raw)
	if loc == nil {
		return Parsed{positive: strings.TrimSpace(raw)}
	}
	return Parsed{
		positive: strings.TrimSpace(raw[:loc[0]]),
		negative: strings.TrimSpace(raw[loc[1]:]),
	}
}

// Positive returns the desired-intent clause. Empty for a query that
// consists only of a trigger phrase and a negative clause.
func (p *Parsed) Positive() string { return p.positive }

// Negative returns the excluded-intent clause, or "" if no trigger matched.
func (p *Parsed) Negative() string { return p.negative }

// HasNegative reports whether a negative clause was extracted.
func (p *Parsed) HasNegative() bool { return p.negative != "" }
