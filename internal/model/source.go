package model

// Path represents a file system path.
type Path string

// SourceUnit is one Python file under analysis. Units are transient: parsed
// once, traversed once, then discarded.
type SourceUnit struct {
	Path    Path
	Content []byte
	Tree    *SyntaxTree
}

// SkipReason explains why a unit was excluded from a run.
type SkipReason string

// Available SkipReason values.
const (
	// SkipParseFailure marks a unit the grammar could not parse.
	SkipParseFailure SkipReason = "parse_failure"
	// SkipUnreadable marks a unit that could not be read from disk.
	SkipUnreadable SkipReason = "unreadable_unit"
)

// SkippedUnit records a file the run could not analyze. Skips are surfaced
// alongside diagnostics rather than swallowed: one malformed file must never
// hide the rest of a batch.
type SkippedUnit struct {
	Path   Path       `yaml:"path"`
	Reason SkipReason `yaml:"reason"`
	Detail string     `yaml:"detail,omitempty"`
}
