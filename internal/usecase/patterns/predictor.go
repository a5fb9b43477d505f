package patterns

const (
	RiskLevelHigh = "high"
	RiskLevelLow  = "low"

	FactorPriceConcession      = PatternPriceConcession
	FactorDecisionNoOwnership  = PatternDecisionWithoutOwnership
	FactorFailedDealSimilarity = "high_similarity_to_failed_deals"
	FactorMultipleObjections   = "multiple_objections"
	FactorRiskHeuristic        = "risk_score_heuristic"
)

// Prediction is the outcome-risk estimate for one session
type Prediction struct {
	RiskProbability        float64  `json:"risk_probability"`
	RiskLevel              string   `json:"risk_level"`
	TopContributingFactors []string `json:"top_contributing_factors"`
	Note                   string   `json:"note,omitempty"`
}

// PredictRisk estimates the probability this session ends badly. There is
// no trained model in the loop yet, so the mined risk score dominates and
// known patterns floor the estimate upward.
func PredictRisk(features Features) Prediction {
	risk := features["risk_score"]
	if features["has_price_concession"] > 0 && risk < 0.7 {
		risk = 0.7
	}

	factors := []string{}
	if features["has_price_concession"] > 0 {
		factors = append(factors, FactorPriceConcession)
	}
	if features["has_decision_without_ownership"] > 0 {
		factors = append(factors, FactorDecisionNoOwnership)
	}
	if features["similarity_to_failed_deals"] > 0.7 {
		factors = append(factors, FactorFailedDealSimilarity)
	}
	if features["objection_count"] > 2 {
		factors = append(factors, FactorMultipleObjections)
	}
	if len(factors) == 0 {
		factors = append(factors, FactorRiskHeuristic)
	}

	level := RiskLevelLow
	if risk > 0.6 {
		level = RiskLevelHigh
	}

	return Prediction{
		RiskProbability:        round2(risk),
		RiskLevel:              level,
		TopContributingFactors: factors,
		Note:                   "heuristic estimate",
	}
}
