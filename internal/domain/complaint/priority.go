package complaint

import (
	"fmt"
	"math"

	vo "civicdesk/internal/domain/complaint/valueobjects"
)

// PriorityBreakdown retains the individual sub-scores behind a priority
// score for audit and display. Sub-scores are in [0,100]; the multiplier
// comes from the fixed category table.
type PriorityBreakdown struct {
	ComplaintCountScore float64 `json:"complaint_count_score"`
	TimePendingScore    float64 `json:"time_pending_score"`
	AreaWeightScore     float64 `json:"area_weight_score"`
	CategoryMultiplier  float64 `json:"category_multiplier"`
}

// Assessment is the scorer's full output. Degraded is set when the neutral
// fallback was applied; callers are expected to log that.
type Assessment struct {
	Score     int
	Breakdown PriorityBreakdown
	Severity  vo.Severity
	Reasoning string
	Degraded  bool
}

// ScoreInput carries the scorer's inputs. Nil pointer fields mean "not
// supplied": HoursPending defaults to 0 and AreaWeight to 50 (neutral),
// while a missing SameLocationCount has no default and triggers the
// neutral fallback.
type ScoreInput struct {
	Category          vo.Category
	Location          string
	SameLocationCount *int
	HoursPending      *float64
	AreaWeight        *float64
}

const (
	neutralScore     = 50
	defaultReasoning = "Default priority assessment: insufficient data for a detailed evaluation"
)

// Scorer computes a complaint's priority from contextual counts supplied by
// the storage layer. It is a pure function over its inputs and holds no
// state.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate derives the weighted priority score.
//
// The order of operations in the final step is load-bearing: the raw
// weighted score is multiplied by the category multiplier, rounded to the
// nearest integer, and only then clamped to 100. Reordering changes
// results at the boundary.
func (s *Scorer) Calculate(in ScoreInput) Assessment {
	if in.SameLocationCount == nil || *in.SameLocationCount < 0 {
		return s.neutralAssessment()
	}

	hoursPending := 0.0
	if in.HoursPending != nil {
		if *in.HoursPending < 0 {
			return s.neutralAssessment()
		}
		hoursPending = *in.HoursPending
	}

	areaWeight := float64(neutralScore)
	if in.AreaWeight != nil {
		areaWeight = *in.AreaWeight
	}

	countScore := math.Min(float64(*in.SameLocationCount)*10+50, 100)
	timeScore := math.Min(hoursPending*2+50, 100)

	multiplier := 1.0
	if in.Category.IsValid() {
		multiplier = in.Category.Multiplier()
	}

	rawScore := countScore*0.4 + timeScore*0.3 + areaWeight*0.3

	finalScore := int(math.Round(rawScore * multiplier))
	if finalScore > 100 {
		finalScore = 100
	}
	if finalScore < 0 {
		finalScore = 0
	}

	category := in.Category
	if !category.IsValid() {
		category = vo.CategoryOther
	}

	return Assessment{
		Score: finalScore,
		Breakdown: PriorityBreakdown{
			ComplaintCountScore: countScore,
			TimePendingScore:    timeScore,
			AreaWeightScore:     areaWeight,
			CategoryMultiplier:  multiplier,
		},
		Severity: vo.SeverityForScore(finalScore),
		Reasoning: fmt.Sprintf(
			"Priority %d: %d other complaint(s) reported near %q, category %s (multiplier %.1fx)",
			finalScore, *in.SameLocationCount, in.Location, category, multiplier,
		),
	}
}

// neutralAssessment is the fail-closed fallback: complaint intake must
// never be blocked by a scoring failure.
func (s *Scorer) neutralAssessment() Assessment {
	return Assessment{
		Score: neutralScore,
		Breakdown: PriorityBreakdown{
			ComplaintCountScore: neutralScore,
			TimePendingScore:    neutralScore,
			AreaWeightScore:     neutralScore,
			CategoryMultiplier:  1.0,
		},
		Severity:  vo.SeverityForScore(neutralScore),
		Reasoning: defaultReasoning,
		Degraded:  true,
	}
}
