package hooks

import (
	"fmt"
	"regexp"
)

// Severity classifies what a matching rule does to a command.
type Severity int

const (
	// SeverityBlock forbids execution of a matching command.
	SeverityBlock Severity = iota
	// SeverityWarn allows a matching command but reports a warning.
	SeverityWarn
)

func (s Severity) String() string {
	switch s {
	case SeverityBlock:
		return "block"
	case SeverityWarn:
		return "warn"
	default:
		return "unknown"
	}
}

// Rule represents a pattern that a command string is checked against.
type Rule interface {
	// Name returns the unique identifier for this rule.
	Name() string

	// Description returns a human-readable description of what this rule does.
	Description() string

	// Pattern returns the regular expression source of this rule.
	Pattern() string

	// Severity returns whether a match blocks or warns.
	Severity() Severity

	// Match reports whether the command contains a match for the rule's pattern.
	Match(command string) bool
}

// patternRule matches a case-insensitive regular expression anywhere in a command.
type patternRule struct {
	name        string
	description string
	pattern     string
	severity    Severity
	re          *regexp.Regexp
}

// NewPatternRule creates a rule from a regular expression.
// The expression is always matched case-insensitively.
func NewPatternRule(name, description, pattern string, severity Severity) (Rule, error) {
	if name == "" {
		return nil, fmt.Errorf("rule name is required")
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern for rule %s: %w", name, err)
	}

	return &patternRule{
		name:        name,
		description: description,
		pattern:     pattern,
		severity:    severity,
		re:          re,
	}, nil
}

// MustPatternRule is like NewPatternRule but panics if the rule is invalid.
// It is meant for rule sets that are fixed at compile time.
func MustPatternRule(name, description, pattern string, severity Severity) Rule {
	rule, err := NewPatternRule(name, description, pattern, severity)
	if err != nil {
		panic(err)
	}
	return rule
}

func (r *patternRule) Name() string {
	return r.name
}

func (r *patternRule) Description() string {
	return r.description
}

func (r *patternRule) Pattern() string {
	return r.pattern
}

func (r *patternRule) Severity() Severity {
	return r.severity
}

func (r *patternRule) Match(command string) bool {
	return r.re.MatchString(command)
}
