package reports

import "github.com/yigit/egresados/internal/app/models"

// Profile completion weights
const (
	WeightBasic      = 33
	WeightAcademic   = 33
	WeightEmployment = 34
)

// Contact statuses
const (
	StatusUpdated  = "Actualizado"
	StatusPartial  = "Parcial"
	StatusOutdated = "Desactualizado"
)

// ContactStatuses lists the statuses in display order.
var ContactStatuses = []string{StatusUpdated, StatusPartial, StatusOutdated}

// CompletionBuckets lists the completion ranges in display order.
var CompletionBuckets = []string{"0-25%", "26-50%", "51-75%", "76-100%"}

// ProfileCompletion scores which record groups a graduate has filled in.
func ProfileCompletion(g models.Graduate) int {
	score := 0
	if g.Basic != nil {
		score += WeightBasic
	}
	if len(g.Academic) > 0 {
		score += WeightAcademic
	}
	if len(g.Employment) > 0 {
		score += WeightEmployment
	}
	return score
}

// ContactStatus maps a completion percentage to a status.
func ContactStatus(completion int) string {
	switch {
	case completion >= 70:
		return StatusUpdated
	case completion >= 30:
		return StatusPartial
	default:
		return StatusOutdated
	}
}

// CompletionBucket maps a completion percentage to its range label.
func CompletionBucket(completion int) string {
	switch {
	case completion <= 25:
		return CompletionBuckets[0]
	case completion <= 50:
		return CompletionBuckets[1]
	case completion <= 75:
		return CompletionBuckets[2]
	default:
		return CompletionBuckets[3]
	}
}
