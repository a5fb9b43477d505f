package analysis

import (
	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// Project risk weights and thresholds
const (
	riskPointsIssues     = 3
	riskPointsRisks      = 3
	riskPointsDependency = 4

	riskHighThreshold   = 7
	riskMediumThreshold = 4
)

// ComputeMeetingQuality maps the frozen bundle to a quality label. Quality
// depends on ownership and the strict execution decision, nothing else:
// sentiment, issues and risks must never move this label.
func ComputeMeetingQuality(b SignalBundle) entities.QualityVerdict {
	switch {
	case b.Ownership() && b.ExecutionDecision():
		return entities.QualityVerdict{Label: entities.LabelHigh}
	case b.Ownership() || b.ExecutionDecision():
		return entities.QualityVerdict{Label: entities.LabelMedium}
	default:
		return entities.QualityVerdict{Label: entities.LabelLow}
	}
}

// ComputeProjectRisk scores project danger additively, independent of the
// quality verdict. Uncontrolled dependencies weigh heaviest.
func (a *Analyzer) ComputeProjectRisk(b SignalBundle, items []entities.ActionItem) entities.RiskVerdict {
	score := 0
	drivers := make([]string, 0)

	if b.IssuesPresent() {
		score += riskPointsIssues
		drivers = append(drivers, "Unresolved issues raised")
	}
	if b.RisksPresent() {
		score += riskPointsRisks
		drivers = append(drivers, "Risks flagged")
	}
	if !a.DependenciesControlled(items) {
		score += riskPointsDependency
		drivers = append(drivers, "Dependency without owner or timeline")
	}

	label := entities.LabelLow
	switch {
	case score >= riskHighThreshold:
		label = entities.LabelHigh
	case score >= riskMediumThreshold:
		label = entities.LabelMedium
	}
	return entities.RiskVerdict{Label: label, Score: score, Drivers: drivers}
}

// ComputeMeetingHealth is the priority-ordered health state consumed by the
// sentiment adjuster. Tension points must already have the no-blockers
// override applied.
func (a *Analyzer) ComputeMeetingHealth(tension []entities.TensionPoint, items []entities.ActionItem) string {
	if len(tension) > 0 {
		return entities.HealthBlocked
	}
	if !a.DependenciesControlled(items) {
		return entities.HealthAtRisk
	}
	return entities.HealthOnTrack
}
