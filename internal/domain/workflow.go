package domain

import (
	"context"
	"fmt"
	"regexp"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/codeflash-sh/codeflash/internal/adapter"
	m "github.com/codeflash-sh/codeflash/internal/model"
)

// AnalyzeArgs holds the inputs of one analysis invocation.
type AnalyzeArgs struct {
	// Paths are the file or directory roots to analyze.
	Paths []m.Path
	// Goal selects the active rule subset.
	Goal m.Goal
	// Threads caps the number of units analyzed concurrently. Values below
	// one run the analysis sequentially.
	Threads int
	// Exclude holds regular expressions; files whose path matches any of
	// them are dropped from the run.
	Exclude []string
}

// Workflow defines the analysis operations exposed to the CLI layer.
type Workflow interface {
	// Analyze resolves the file set, walks every parseable unit with the
	// goal's rules and returns the aggregated run. Per-unit read or parse
	// failures become SkippedUnit entries; only configuration-level
	// problems (bad path, bad exclude pattern) return an error.
	Analyze(ctx context.Context, args AnalyzeArgs) (m.AnalysisRun, error)

	// Apply inspects a run for diagnostics that are safe to rewrite
	// automatically. It never mutates source files.
	Apply(run m.AnalysisRun) ApplyOutcome
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	pyAdapter adapter.PythonFileAdapter
	registry  *Registry
	walker    *Walker
	agg       *Aggregator
	logger    hclog.Logger
}

// NewWorkflow creates a Workflow instance with the provided adapters and
// rule registry.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, pyAdapter adapter.PythonFileAdapter, registry *Registry, logger hclog.Logger) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		pyAdapter: pyAdapter,
		registry:  registry,
		walker:    NewWalker(),
		agg:       NewAggregator(),
		logger:    logger,
	}
}

// Analyze runs the full pipeline: resolve → walk (per unit, per rule) →
// aggregate. Units are independent, so they are processed by a bounded
// worker pool; results land in per-unit slots and meet only in the
// aggregator, which keeps the output order independent of scheduling.
func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) (m.AnalysisRun, error) {
	ruleSet := w.registry.ForGoal(args.Goal)

	paths, err := w.fsAdapter.Get(args.Paths)
	if err != nil {
		return m.AnalysisRun{}, err
	}

	paths, err = filterExcluded(paths, args.Exclude)
	if err != nil {
		return m.AnalysisRun{}, err
	}

	w.logger.Debug("resolved file set", "files", len(paths), "goal", args.Goal, "rules", len(ruleSet))

	threads := args.Threads
	if threads < 1 {
		threads = 1
	}

	unitDiags := make([][]m.Diagnostic, len(paths))
	unitSkips := make([]*m.SkippedUnit, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, path := range paths {
		g.Go(func() error {
			// Cancellation is honored at unit boundaries only; a unit in
			// flight always completes.
			if err := ctx.Err(); err != nil {
				return err
			}

			unitDiags[i], unitSkips[i] = w.analyzeUnit(ctx, path, ruleSet)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return m.AnalysisRun{}, err
	}

	var skipped []m.SkippedUnit

	for _, skip := range unitSkips {
		if skip != nil {
			skipped = append(skipped, *skip)
		}
	}

	return w.agg.Aggregate(args.Goal, unitDiags, skipped), nil
}

// analyzeUnit reads, parses and walks a single file. Failures are returned
// as a skip outcome, never as an error: one bad file must not stop a batch.
func (w *workflow) analyzeUnit(ctx context.Context, path m.Path, ruleSet []Rule) ([]m.Diagnostic, *m.SkippedUnit) {
	content, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		w.logger.Debug("skipping unreadable unit", "path", path, "error", err)

		return nil, &m.SkippedUnit{Path: path, Reason: m.SkipUnreadable, Detail: err.Error()}
	}

	tree, err := w.pyAdapter.Parse(ctx, path, content)
	if err != nil {
		w.logger.Debug("skipping unparseable unit", "path", path, "error", err)

		return nil, &m.SkippedUnit{Path: path, Reason: m.SkipParseFailure, Detail: err.Error()}
	}

	unit := m.SourceUnit{Path: path, Content: content, Tree: tree}

	return w.walker.Walk(unit, ruleSet), nil
}

func filterExcluded(paths []m.Path, patterns []string) ([]m.Path, error) {
	if len(patterns) == 0 {
		return paths, nil
	}

	regexps := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		regexps = append(regexps, re)
	}

	var kept []m.Path

	for _, path := range paths {
		excluded := false

		for _, re := range regexps {
			if re.MatchString(string(path)) {
				excluded = true
				break
			}
		}

		if !excluded {
			kept = append(kept, path)
		}
	}

	return kept, nil
}
