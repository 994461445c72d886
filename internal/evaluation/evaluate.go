// Package evaluation orchestrates scoring runs of resumes against a role's
// criteria set.
package evaluation

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rolemark/rolemark/internal/scoring"
	"github.com/rolemark/rolemark/internal/types"
)

// Candidate bounds for a batch evaluation run.
const (
	MinCandidates = 2
	MaxCandidates = 10
)

// Options controls evaluation preconditions. Weight-sum enforcement is a
// caller policy, not an aggregator property, so it lives here as an explicit
// flag rather than inside the scoring core.
type Options struct {
	// EnforceWeightSum rejects the run when the role's criteria weights do
	// not sum to exactly 100.
	EnforceWeightSum bool
}

// Candidate is one resume entering an evaluation run.
type Candidate struct {
	ResumeID uuid.UUID
	Text     string
	Signals  []types.Signal
}

// CandidateResult pairs a resume with its computed breakdown.
type CandidateResult struct {
	ResumeID  uuid.UUID
	Breakdown *types.ScoreBreakdown
}

// WeightSum returns the total weight across a criteria set.
func WeightSum(criteria []types.Criterion) int {
	sum := 0
	for _, c := range criteria {
		sum += c.Weight
	}
	return sum
}

// Evaluate scores one resume against a criteria set. With no criteria
// configured it returns a zero breakdown rather than an error.
func Evaluate(resumeText string, signals []types.Signal, criteria []types.Criterion, opts Options) (*types.ScoreBreakdown, error) {
	if opts.EnforceWeightSum {
		if sum := WeightSum(criteria); sum != 100 {
			return nil, fmt.Errorf("criteria weights must sum to 100, got %d", sum)
		}
	}
	return scoring.ScoreResume(resumeText, signals, criteria)
}

// EvaluateBatch scores between 2 and 10 candidates against the same criteria
// set, fanning out one goroutine per resume. Each candidate only reads its
// own signals and the shared criteria, so no synchronization beyond the
// errgroup is needed, and results stay in the caller's candidate order.
func EvaluateBatch(ctx context.Context, criteria []types.Criterion, candidates []Candidate, opts Options) ([]CandidateResult, error) {
	if len(candidates) < MinCandidates || len(candidates) > MaxCandidates {
		return nil, fmt.Errorf("evaluation must include %d-%d resumes, got %d", MinCandidates, MaxCandidates, len(candidates))
	}
	if opts.EnforceWeightSum {
		if sum := WeightSum(criteria); sum != 100 {
			return nil, fmt.Errorf("criteria weights must sum to 100, got %d", sum)
		}
	}

	results := make([]CandidateResult, len(candidates))
	g, gCtx := errgroup.WithContext(ctx)
	for i, candidate := range candidates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			breakdown, err := scoring.ScoreResume(candidate.Text, candidate.Signals, criteria)
			if err != nil {
				return fmt.Errorf("scoring resume %s: %w", candidate.ResumeID, err)
			}
			results[i] = CandidateResult{ResumeID: candidate.ResumeID, Breakdown: breakdown}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Rank orders candidate results by total score descending. The sort is
// stable: ties keep the incoming order, which is a listing concern rather
// than a scoring one.
func Rank(results []CandidateResult) []CandidateResult {
	ranked := make([]CandidateResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Breakdown.TotalScore > ranked[j].Breakdown.TotalScore
	})
	return ranked
}
