package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rolemark/rolemark/internal/types"
)

const (
	// deltaSignificance is the minimum per-criterion score difference worth
	// citing in an explanation.
	deltaSignificance = 0.001
	// maxCitedCriteria caps how many criteria an explanation names.
	maxCitedCriteria = 2
)

// criterionDelta pairs a criterion with the score difference between two
// candidates on it.
type criterionDelta struct {
	name       string
	leftScore  float64
	rightScore float64
	delta      float64
}

// Explain renders a short natural-language justification for why one of two
// scored candidates outranked the other. Both breakdowns must come from the
// same ordered criteria set.
func Explain(left, right *types.ScoreBreakdown) string {
	deltas := make([]criterionDelta, 0, len(left.CriterionScores))
	for i := range left.CriterionScores {
		if i >= len(right.CriterionScores) {
			break
		}
		l, r := left.CriterionScores[i], right.CriterionScores[i]
		deltas = append(deltas, criterionDelta{
			name:       l.Name,
			leftScore:  l.Score,
			rightScore: r.Score,
			delta:      l.Score - r.Score,
		})
	}

	sort.SliceStable(deltas, func(i, j int) bool {
		return math.Abs(deltas[i].delta) > math.Abs(deltas[j].delta)
	})

	var sb strings.Builder
	switch {
	case left.TotalScore > right.TotalScore:
		sb.WriteString("Resume A scored higher due to: ")
	case right.TotalScore > left.TotalScore:
		sb.WriteString("Resume B scored higher due to: ")
	default:
		return "Both resumes scored equally."
	}

	var reasons []string
	for i := 0; i < len(deltas) && i < maxCitedCriteria; i++ {
		d := deltas[i]
		if math.Abs(d.delta) <= deltaSignificance {
			continue
		}
		reasons = append(reasons, fmt.Sprintf("%s (A: %.2f, B: %.2f, delta: %.2f)",
			d.name, d.leftScore, d.rightScore, d.delta))
	}

	if len(reasons) == 0 {
		sb.WriteString("minimal differences across criteria.")
	} else {
		sb.WriteString(strings.Join(reasons, "; "))
	}

	return sb.String()
}
