package analysis

import (
	"strings"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// Insight caps per mode
const (
	maxMeetingInsights = 2
	maxSalesInsights   = 3
)

// BuildMeetingSummary selects summary sentences from a fixed template set
// keyed by quality, risk and whether execution was discussed at all. Nothing
// is synthesized from raw text, so the summary cannot contradict the bundle.
func (a *Analyzer) BuildMeetingSummary(b SignalBundle, risk entities.RiskVerdict) string {
	parts := []string{"The discussion centered on " + b.Topic() + "."}

	switch {
	case b.Ownership() && b.ExecutionDecision():
		parts = append(parts, "Ownership was assigned and a firm execution decision was reached.")
	case b.Ownership():
		parts = append(parts, "Ownership was assigned, but the group stopped short of a firm execution decision.")
	case b.ExecutionDecision():
		parts = append(parts, "A firm execution decision was reached, though ownership was left open.")
	case b.ExecutionAttempted():
		parts = append(parts, "Ownership was left open and the group stopped short of a firm execution decision.")
	default:
		parts = append(parts, "The session stayed at the strategic level; execution commitments were out of scope.")
	}

	switch risk.Label {
	case entities.LabelHigh:
		parts = append(parts, "Project risk is elevated ("+strings.Join(risk.Drivers, "; ")+").")
	case entities.LabelMedium:
		parts = append(parts, "Some project risk surfaced ("+strings.Join(risk.Drivers, "; ")+").")
	default:
		parts = append(parts, "No material project risk surfaced.")
	}

	return strings.Join(parts, " ")
}

// BuildMeetingInsights assembles the capped, deduplicated insight list in
// strict priority order. When execution was never attempted, execution
// complaints are replaced by a strategic-planning note.
func (a *Analyzer) BuildMeetingInsights(
	b SignalBundle,
	risk entities.RiskVerdict,
	tension []entities.TensionPoint,
	depsControlled bool,
) []entities.KeyInsight {
	insights := make([]entities.KeyInsight, 0, maxMeetingInsights)

	add := func(insightType, text string) {
		if len(insights) >= maxMeetingInsights {
			return
		}
		for _, in := range insights {
			if in.Type == insightType {
				return
			}
		}
		insights = append(insights, entities.KeyInsight{Type: insightType, Text: text})
	}

	if len(tension) > 0 {
		add(entities.InsightEscalation, "Unresolved tension needs escalation before it derails delivery.")
	}

	if b.ExecutionAttempted() {
		executionRisk := !depsControlled || risk.Label == entities.LabelHigh
		if executionRisk {
			add(entities.InsightExecutionRisk, "Execution is exposed: dependencies lack a clear owner or timeline.")
		}
		if !b.ExecutionDecision() && !executionRisk {
			add(entities.InsightDecisionAmbiguity, "Execution was discussed without landing a firm decision.")
		}
		if !b.Ownership() {
			add(entities.InsightOwnershipGap, "Next steps are moving without a named owner.")
		}
	} else {
		add(entities.InsightStrategicPlanning, "Strategic session: direction was explored without execution commitments.")
	}

	if b.Ownership() && b.ExecutionDecision() && risk.Label == entities.LabelLow && len(tension) == 0 {
		add(entities.InsightPositiveMomentum, "Clear ownership and a firm decision with no open risks.")
	}

	return insights
}
