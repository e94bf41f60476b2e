package hooks

// DefaultBlockRules returns the rules whose match forbids execution, in evaluation order.
func DefaultBlockRules() []Rule {
	return []Rule{
		MustPatternRule("rm-rf-root", "Blocks recursive force delete of the root directory", `rm\s+-rf\s+/`, SeverityBlock),
		MustPatternRule("rm-rf-home", "Blocks recursive force delete of the home directory", `rm\s+-rf\s+~`, SeverityBlock),
		MustPatternRule("rm-rf-wildcard", "Blocks recursive force delete of a wildcard path", `rm\s+-rf\s+\*`, SeverityBlock),
		MustPatternRule("sudo-rm", "Blocks deleting files with elevated privileges", `sudo\s+rm`, SeverityBlock),
		MustPatternRule("chmod-777", "Blocks making files world-writable", `chmod\s+777`, SeverityBlock),
		MustPatternRule("curl-pipe-shell", "Blocks piping a curl download into bash", `curl.*\|\s*bash`, SeverityBlock),
		MustPatternRule("wget-pipe-shell", "Blocks piping a wget download into bash", `wget.*\|\s*bash`, SeverityBlock),
		MustPatternRule("raw-device-write", "Blocks redirecting output to a raw block device", `>\s*/dev/sd`, SeverityBlock),
		MustPatternRule("mkfs", "Blocks formatting a filesystem", `mkfs\.`, SeverityBlock),
		MustPatternRule("dd-raw-write", "Blocks low-level disk copies with dd", `dd\s+if=`, SeverityBlock),
	}
}

// DefaultWarnRules returns the rules whose match is allowed with a warning, in evaluation order.
func DefaultWarnRules() []Rule {
	return []Rule{
		MustPatternRule("git-force-push", "Warns on force pushing with git", `git\s+push\s+--force`, SeverityWarn),
		MustPatternRule("git-hard-reset", "Warns on hard resetting with git", `git\s+reset\s+--hard`, SeverityWarn),
		MustPatternRule("drop-database", "Warns on dropping a database", `drop\s+database`, SeverityWarn),
		MustPatternRule("drop-table", "Warns on dropping a table", `drop\s+table`, SeverityWarn),
	}
}

// NewDefaultCommandGate creates a gate with the default block and warn rules.
func NewDefaultCommandGate() CommandGate {
	return NewCommandGate(DefaultBlockRules(), DefaultWarnRules())
}
