package adapter

import (
	"context"
	"errors"
	"fmt"

	m "github.com/codeflash-sh/codeflash/internal/model"
)

// ErrPRNotSupported is returned by builds without a hosting-service
// integration. The flag exists so callers get an honest error instead of a
// silent no-op.
var ErrPRNotSupported = errors.New("pull request creation is not supported in this build")

// PullRequestAdapter is the boundary for publishing an analysis run as a
// pull request on a code-hosting service. The analysis engine never
// implements this itself.
type PullRequestAdapter interface {
	CreatePullRequest(ctx context.Context, repo string, run m.AnalysisRun) (string, error)
}

// UnsupportedPRAdapter is the default PullRequestAdapter.
type UnsupportedPRAdapter struct{}

// NewUnsupportedPRAdapter constructs the default PR adapter.
func NewUnsupportedPRAdapter() *UnsupportedPRAdapter {
	return &UnsupportedPRAdapter{}
}

// CreatePullRequest always fails with ErrPRNotSupported.
func (a *UnsupportedPRAdapter) CreatePullRequest(_ context.Context, repo string, _ m.AnalysisRun) (string, error) {
	return "", fmt.Errorf("cannot create pull request for %s: %w", repo, ErrPRNotSupported)
}
