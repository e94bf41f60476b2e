package hooks

//go:generate mockgen -source=engine.go -destination=mock_gate.go -package=hooks

// CommandGate classifies a command string as allowed, blocked or warned.
type CommandGate interface {
	// Evaluate returns the decision for command.
	Evaluate(command string) *Decision

	// BlockRules returns the block rules in evaluation order.
	BlockRules() []Rule

	// WarnRules returns the warn rules in evaluation order.
	WarnRules() []Rule
}

// commandGate implements CommandGate over two fixed rule lists.
type commandGate struct {
	blockRules []Rule
	warnRules  []Rule
}

// NewCommandGate creates a gate that checks blockRules, then warnRules.
// The slices are copied, so later changes by the caller do not affect the gate.
func NewCommandGate(blockRules, warnRules []Rule) CommandGate {
	return &commandGate{
		blockRules: append([]Rule(nil), blockRules...),
		warnRules:  append([]Rule(nil), warnRules...),
	}
}

// Evaluate checks every block rule before any warn rule.
// The first matching rule decides; a command matching nothing is allowed.
func (g *commandGate) Evaluate(command string) *Decision {
	for _, rule := range g.blockRules {
		if rule.Match(command) {
			return NewBlockedDecision(rule)
		}
	}

	for _, rule := range g.warnRules {
		if rule.Match(command) {
			return NewWarnDecision(rule, command)
		}
	}

	return NewAllowedDecision()
}

func (g *commandGate) BlockRules() []Rule {
	return append([]Rule(nil), g.blockRules...)
}

func (g *commandGate) WarnRules() []Rule {
	return append([]Rule(nil), g.warnRules...)
}
