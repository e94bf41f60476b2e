package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		want     string
	}{
		{name: "block", severity: SeverityBlock, want: "block"},
		{name: "warn", severity: SeverityWarn, want: "warn"},
		{name: "unknown", severity: Severity(42), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.severity.String())
		})
	}
}

func TestNewPatternRule(t *testing.T) {
	tests := []struct {
		name     string
		ruleName string
		pattern  string
		wantErr  bool
	}{
		{
			name:     "valid pattern",
			ruleName: "test-rule",
			pattern:  `rm\s+-rf`,
		},
		{
			name:     "invalid pattern",
			ruleName: "test-rule",
			pattern:  `rm\s+(`,
			wantErr:  true,
		},
		{
			name:     "empty name",
			ruleName: "",
			pattern:  `rm`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPatternRule(tt.ruleName, "test description", tt.pattern, SeverityWarn)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.ruleName, got.Name())
			assert.Equal(t, "test description", got.Description())
			assert.Equal(t, tt.pattern, got.Pattern())
			assert.Equal(t, SeverityWarn, got.Severity())
		})
	}
}

func TestMustPatternRule_PanicsOnInvalidPattern(t *testing.T) {
	assert.Panics(t, func() {
		MustPatternRule("broken", "", `[`, SeverityBlock)
	})
}

func TestPatternRule_Match(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		command string
		want    bool
	}{
		{
			name:    "matches exact text",
			pattern: `drop\s+table`,
			command: "drop table users",
			want:    true,
		},
		{
			name:    "matches case-insensitively",
			pattern: `drop\s+table`,
			command: "DROP TABLE users",
			want:    true,
		},
		{
			name:    "matches anywhere in the command",
			pattern: `drop\s+table`,
			command: `psql -c "DROP TABLE users"`,
			want:    true,
		},
		{
			name:    "matches across a newline separated script",
			pattern: `drop\s+table`,
			command: "echo start\ndrop table users",
			want:    true,
		},
		{
			name:    "does not match other text",
			pattern: `drop\s+table`,
			command: "select * from users",
			want:    false,
		},
		{
			name:    "does not match empty command",
			pattern: `drop\s+table`,
			command: "",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := MustPatternRule("test-rule", "", tt.pattern, SeverityWarn)
			assert.Equal(t, tt.want, rule.Match(tt.command))
		})
	}
}
