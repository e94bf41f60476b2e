package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/michael-freling/claude-command-gate/internal/hooks"
	"github.com/spf13/cobra"
)

const (
	exitCodeAllow = 0
	exitCodeError = 1
	exitCodeBlock = 2
)

// exitError carries a non-zero exit code from a command to main.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	os.Exit(run(newRootCmd(hooks.NewDefaultCommandGate())))
}

// run executes cmd and maps its result to a process exit code.
func run(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return exitCodeAllow
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return exitCodeError
}

func newRootCmd(gate hooks.CommandGate) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "command-gate",
		Short: "Claude Code hook that blocks or warns on dangerous shell commands",
		Long: `A CLI tool that checks Bash commands from Claude Code against block and warn patterns before they run.

The hook entry point is pre-tool-use only: it reads the hook payload from stdin and takes no flags.
check and rules are for inspecting the rules by hand.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newPreToolUseCmd(gate))
	rootCmd.AddCommand(newCheckCmd(gate))
	rootCmd.AddCommand(newRulesCmd(gate))

	return rootCmd
}

func newPreToolUseCmd(gate hooks.CommandGate) *cobra.Command {
	return &cobra.Command{
		Use:           "pre-tool-use",
		Short:         "Check a Bash command before tool execution",
		Long:          `Reads tool input from stdin as JSON and checks tool_input.command. Returns exit code 0 to allow, exit code 2 to block. Invalid input is allowed with an error on stderr.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			decision, err := evaluateToolInput(gate, cmd.InOrStdin())
			if err != nil {
				// fail open
				fmt.Fprintf(cmd.ErrOrStderr(), "command-gate error: %v\n", err)
				return nil
			}

			return reportDecision(cmd.ErrOrStderr(), decision)
		},
	}
}

func newCheckCmd(gate hooks.CommandGate) *cobra.Command {
	return &cobra.Command{
		Use:           "check <command>",
		Short:         "Check a command given as an argument",
		Long:          `Checks a single command string, quoted as one argument, with the same rules and exit codes as pre-tool-use.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportDecision(cmd.ErrOrStderr(), gate.Evaluate(args[0]))
		},
	}
}

// evaluateToolInput parses the hook payload and evaluates its command.
// Parse errors and panics are both returned as errors.
func evaluateToolInput(gate hooks.CommandGate, reader io.Reader) (decision *hooks.Decision, err error) {
	defer func() {
		if r := recover(); r != nil {
			decision = nil
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	toolInput, err := hooks.ParseToolInput(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tool input: %w", err)
	}

	command, err := toolInput.Command()
	if err != nil {
		return nil, fmt.Errorf("failed to read command: %w", err)
	}

	decision = gate.Evaluate(command)
	if decision == nil {
		return nil, fmt.Errorf("no decision for command")
	}

	return decision, nil
}

// reportDecision writes the decision diagnostics to w.
// A blocked decision is returned as an exitError with exit code 2.
func reportDecision(w io.Writer, decision *hooks.Decision) error {
	switch decision.Action {
	case hooks.ActionBlock:
		fmt.Fprintf(w, "BLOCKED by rule %s: %s\n", decision.RuleName, decision.Message)
		return &exitError{code: exitCodeBlock}
	case hooks.ActionWarn:
		fmt.Fprintf(w, "WARNING by rule %s: %s\n", decision.RuleName, decision.Message)
	}

	return nil
}
