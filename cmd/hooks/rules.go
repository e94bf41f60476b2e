package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/michael-freling/claude-command-gate/internal/hooks"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

// ruleView is the printable form of a rule.
type ruleView struct {
	Name        string `json:"name" yaml:"name"`
	Severity    string `json:"severity" yaml:"severity"`
	Pattern     string `json:"pattern" yaml:"pattern"`
	Description string `json:"description" yaml:"description"`
}

func newRulesCmd(gate hooks.CommandGate) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:           "rules",
		Short:         "List block and warn rules in evaluation order",
		Long:          `Lists the block rules followed by the warn rules, in the order they are evaluated.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			views := ruleViews(gate)
			return writeRules(cmd.OutOrStdout(), views, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, yaml or json")

	return cmd
}

func ruleViews(gate hooks.CommandGate) []ruleView {
	rules := append(gate.BlockRules(), gate.WarnRules()...)
	views := make([]ruleView, 0, len(rules))
	for _, rule := range rules {
		views = append(views, ruleView{
			Name:        rule.Name(),
			Severity:    rule.Severity().String(),
			Pattern:     rule.Pattern(),
			Description: rule.Description(),
		})
	}
	return views
}

func writeRules(w io.Writer, views []ruleView, output string) error {
	switch output {
	case outputText:
		for _, v := range views {
			if _, err := fmt.Fprintf(w, "%-5s  %-16s  %s\n", v.Severity, v.Name, v.Pattern); err != nil {
				return fmt.Errorf("failed to write rules: %w", err)
			}
		}
		return nil
	case outputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(views); err != nil {
			return fmt.Errorf("failed to encode rules as YAML: %w", err)
		}
		return encoder.Close()
	case outputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(views); err != nil {
			return fmt.Errorf("failed to encode rules as JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", output)
	}
}
