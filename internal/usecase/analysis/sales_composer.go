package analysis

import (
	"strings"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// Sales insight types
const (
	salesInsightDisqualification = "Disqualification"
	salesInsightHardCommitment   = "Hard Commitment"
	salesInsightAuthorityRisk    = "Authority Risk"
	salesInsightObjections       = "Objection Pressure"
	salesInsightBuyingMomentum   = "Buying Momentum"
	salesInsightSharedDecision   = "Shared Decision"
	salesInsightBudgetAligned    = "Budget Alignment"
	salesInsightValue            = "Value Acknowledged"
)

// BuildSalesSummary selects the call summary template. Disqualified calls
// must name the disqualification reason explicitly; users never get an
// unexplained negative verdict.
func BuildSalesSummary(s SalesSignals, quality entities.QualityVerdict) string {
	if s.NoIntent() {
		return "Disqualified opportunity: the prospect stated there are no plans to switch. Deprioritize and keep a light touch."
	}
	if s.Deferred() {
		return "The call ended in a deferral; no commitment is on the table until the stated window opens. Set a reminder rather than pushing now."
	}

	switch quality.Label {
	case entities.LabelHigh:
		parts := []string{"Strong call: a hard commitment was locked in."}
		if s.DecisionMaker() {
			parts = append(parts, "The decision maker was in the room.")
		}
		if s.ValueAcknowledged() {
			parts = append(parts, "The prospect explicitly acknowledged the value.")
		}
		return strings.Join(parts, " ")
	case entities.LabelMedium:
		parts := []string{"Soft momentum: interest is real, but no hard commitment was made."}
		if s.NextStep() {
			parts = append(parts, "A concrete next step was agreed.")
		}
		if s.DecisionMaker() {
			parts = append(parts, "The decision maker is engaged.")
		}
		return strings.Join(parts, " ")
	default:
		return "Low traction: the call surfaced no decision maker, agreed next step, or commitment."
	}
}

// BuildSalesInsights assembles the sales insight list, capped and
// deduplicated by type, in strict priority order.
func BuildSalesInsights(
	s SalesSignals,
	objections []entities.Objection,
	buying []entities.BuyingSignal,
) []entities.KeyInsight {
	insights := make([]entities.KeyInsight, 0, maxSalesInsights)

	add := func(insightType, text string) {
		if len(insights) >= maxSalesInsights {
			return
		}
		for _, in := range insights {
			if in.Type == insightType {
				return
			}
		}
		insights = append(insights, entities.KeyInsight{Type: insightType, Text: text})
	}

	if s.NoIntent() {
		add(salesInsightDisqualification, "The prospect stated no plans to switch; positive signals on the call do not change the verdict.")
	} else if s.Deferred() {
		add(salesInsightDisqualification, "The prospect deferred the decision; treat the timeline, not the interest, as the blocker.")
	}

	if s.HardCommitment() && !s.Disqualified() {
		add(salesInsightHardCommitment, "A hard commitment was secured on the call.")
	}
	if s.AuthorityRisk() && !s.SharedDecision() {
		add(salesInsightAuthorityRisk, "The contact may not hold final authority; the real decision sits elsewhere.")
	}
	if len(objections) > 0 {
		add(salesInsightObjections, "Objections raised: "+joinObjectionTypes(objections)+".")
	}
	if len(buying) > 0 {
		add(salesInsightBuyingMomentum, "Buying signals surfaced during the call.")
	}
	if s.SharedDecision() {
		add(salesInsightSharedDecision, "The decision will be made jointly; plan for multiple stakeholders.")
	}
	if s.BudgetAligned() {
		add(salesInsightBudgetAligned, "Budget is already aligned on the prospect side.")
	}
	if s.ValueAcknowledged() {
		add(salesInsightValue, "The prospect explicitly acknowledged the product's value.")
	}

	return insights
}

// BuildRecommendedActions maps detected objections, buying signals and the
// sentiment trend to follow-up actions, deduplicated in insertion order.
func BuildRecommendedActions(
	objections []entities.Objection,
	buying []entities.BuyingSignal,
	trend string,
) []string {
	actions := make([]string, 0, 4)
	seen := make(map[string]bool)

	add := func(action string) {
		if !seen[action] {
			seen[action] = true
			actions = append(actions, action)
		}
	}

	for _, o := range objections {
		switch o.Type {
		case entities.ObjectionPricing:
			add("Send pricing clarification")
		case entities.ObjectionAuthority:
			add("Follow up after internal discussion")
		}
	}
	if len(buying) > 0 {
		add("Send proposal")
	}
	if trend == "flat" || trend == "declining" {
		add("Schedule follow-up call")
	}
	return actions
}

func joinObjectionTypes(objections []entities.Objection) string {
	seen := make(map[string]bool)
	types := make([]string, 0, len(objections))
	for _, o := range objections {
		if !seen[o.Type] {
			seen[o.Type] = true
			types = append(types, o.Type)
		}
	}
	return strings.Join(types, ", ")
}
