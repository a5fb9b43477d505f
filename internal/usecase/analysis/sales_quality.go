package analysis

import (
	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// Fixed score mapping kept for response compatibility with older clients
var salesQualityScores = map[string]int{
	entities.LabelHigh:   8,
	entities.LabelMedium: 5,
	entities.LabelLow:    2,
}

// ComputeSalesQuality maps sales signals onto the quality ladder. The
// disqualification override comes first and is absolute: a stated no-intent
// or deferral forces Low no matter what else was said on the call.
func ComputeSalesQuality(s SalesSignals) entities.QualityVerdict {
	if s.Disqualified() {
		drivers := make([]string, 0, 2)
		if s.NoIntent() {
			drivers = append(drivers, "Disqualified: no intent to switch")
		}
		if s.Deferred() {
			drivers = append(drivers, "Disqualified: decision deferred")
		}
		return entities.QualityVerdict{
			Label:   entities.LabelLow,
			Score:   salesQualityScores[entities.LabelLow],
			Drivers: drivers,
		}
	}

	if s.HardCommitment() {
		drivers := []string{"Hard commitment locked"}
		if s.DecisionMaker() {
			drivers = append(drivers, "Decision maker engaged")
		}
		if s.ValueAcknowledged() {
			drivers = append(drivers, "Value articulated")
		}
		return entities.QualityVerdict{
			Label:   entities.LabelHigh,
			Score:   salesQualityScores[entities.LabelHigh],
			Drivers: drivers,
		}
	}

	if s.DecisionMaker() || s.NextStep() {
		drivers := make([]string, 0, 2)
		if s.DecisionMaker() {
			drivers = append(drivers, "Decision maker engaged")
		}
		if s.NextStep() {
			drivers = append(drivers, "Next step agreed")
		}
		return entities.QualityVerdict{
			Label:   entities.LabelMedium,
			Score:   salesQualityScores[entities.LabelMedium],
			Drivers: drivers,
		}
	}

	return entities.QualityVerdict{
		Label:   entities.LabelLow,
		Score:   salesQualityScores[entities.LabelLow],
		Drivers: []string{"No commitment signals"},
	}
}
