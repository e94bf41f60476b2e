package hooks

import "fmt"

// Action is the outcome of evaluating a command.
type Action int

const (
	// ActionAllow lets the command run silently.
	ActionAllow Action = iota
	// ActionBlock stops the command from running.
	ActionBlock
	// ActionWarn lets the command run but reports a warning.
	ActionWarn
)

func (a Action) String() string {
	switch a {
	case ActionAllow:
		return "allow"
	case ActionBlock:
		return "block"
	case ActionWarn:
		return "warn"
	default:
		return "unknown"
	}
}

// Decision represents the result of evaluating a command against the rules.
type Decision struct {
	// Action is what the host should do with the command.
	Action Action

	// RuleName identifies which rule produced this decision.
	// Empty when the command is allowed without any match.
	RuleName string

	// Pattern is the pattern of the matching rule.
	Pattern string

	// Message provides additional context about the decision.
	// For blocked decisions, this names the pattern that triggered.
	// For warnings, this includes the full command.
	Message string
}

// NewAllowedDecision creates a decision that allows the command.
func NewAllowedDecision() *Decision {
	return &Decision{
		Action:   ActionAllow,
		RuleName: "",
		Pattern:  "",
		Message:  "",
	}
}

// NewBlockedDecision creates a decision that blocks the command because of rule.
func NewBlockedDecision(rule Rule) *Decision {
	return &Decision{
		Action:   ActionBlock,
		RuleName: rule.Name(),
		Pattern:  rule.Pattern(),
		Message:  fmt.Sprintf("Dangerous command pattern detected: %s", rule.Pattern()),
	}
}

// NewWarnDecision creates a decision that allows command with a warning from rule.
func NewWarnDecision(rule Rule, command string) *Decision {
	return &Decision{
		Action:   ActionWarn,
		RuleName: rule.Name(),
		Pattern:  rule.Pattern(),
		Message:  fmt.Sprintf("Potentially destructive command: %s", command),
	}
}

// Allowed reports whether the command may run, with or without a warning.
func (d *Decision) Allowed() bool {
	return d.Action != ActionBlock
}

// Blocked reports whether the command must not run.
func (d *Decision) Blocked() bool {
	return d.Action == ActionBlock
}
