package patterns

import (
	"strings"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

const (
	AttentionLow    = "low"
	AttentionMedium = "medium"
	AttentionHigh   = "high"
)

// explanations maps factor keys to sentences a reader can act on
var explanations = map[string]string{
	PatternDecisionWithoutOwnership: "A decision was made, but no clear next action or owner was assigned.",
	PatternPriceConcession:          "Pricing objections were followed by negotiation, which often indicates pressure.",
	FactorFailedDealSimilarity:      "This conversation is similar to past deals that did not close.",
	FactorMultipleObjections:        "Multiple distinct objections were raised, indicating significant resistance.",
	FactorRiskHeuristic:             "Combination of sentiment volatility and objections resulted in a high risk score.",
}

// AttentionSignal says how urgently a human should look at this session
type AttentionSignal struct {
	Level   string   `json:"level"`
	Reasons []string `json:"reasons"`
}

// Evidence is the raw mining data behind the report, for drill-down
type Evidence struct {
	PatternsDetected   []string `json:"patterns_detected"`
	RiskScoreRaw       float64  `json:"risk_score_raw"`
	SimilarityToFailed float64  `json:"similarity_to_failed"`
}

// Guardrails states the confidence and limits of automated insights
type Guardrails struct {
	Confidence  string   `json:"confidence"`
	Limitations []string `json:"limitations"`
}

// Report is the one object the pattern endpoint returns
type Report struct {
	SessionID          string          `json:"session_id"`
	RiskLevel          string          `json:"risk_level"`
	RiskProbability    float64         `json:"risk_probability"`
	AttentionSignal    AttentionSignal `json:"attention_signal"`
	KeyInsights        []string        `json:"key_insights"`
	SupportingEvidence Evidence        `json:"supporting_evidence"`
	Guardrails         Guardrails      `json:"guardrails"`
	Timeline           []Marker        `json:"timeline"`
}

// Explain turns a factor key into its human-readable sentence
func Explain(key string) string {
	if text, ok := explanations[key]; ok {
		return text
	}
	return "Factor detected: " + strings.ReplaceAll(key, "_", " ") + "."
}

// CalculateAttention grades the session low, medium or high attention
func CalculateAttention(riskProbability float64, patterns []string) AttentionSignal {
	level := AttentionLow
	reasons := []string{}

	if riskProbability > 0.6 {
		level = AttentionHigh
		reasons = append(reasons, "High predicted risk of deal loss")
	} else if riskProbability > 0.3 {
		level = AttentionMedium
	}

	for _, p := range patterns {
		switch p {
		case PatternDecisionWithoutOwnership:
			if level == AttentionLow {
				level = AttentionMedium
			}
			reasons = append(reasons, "Process Gap: Decision without ownership")
		case PatternPriceConcession:
			if level == AttentionLow {
				level = AttentionMedium
			}
			reasons = append(reasons, "Negotiation Pressure: Early price concession")
		}
	}

	return AttentionSignal{Level: level, Reasons: reasons}
}

// ComposeReport runs the whole offline pipeline for one cached session:
// mining, feature building, outcome prediction, attention grading and
// the timeline. A nil embedding is fine; similarity reports 0.
func (m *Miner) ComposeReport(session *entities.AnalysisSession, embedding []float64) *Report {
	mined := m.AnalyzeSession(session.ID.String(), session.Segments, embedding)
	features := BuildFeatures(session, mined)
	prediction := PredictRisk(features)

	insights := []string{}
	seen := map[string]bool{}
	for _, f := range prediction.TopContributingFactors {
		text := Explain(f)
		if !seen[text] {
			insights = append(insights, text)
			seen[text] = true
		}
	}
	for _, p := range mined.PatternsDetected {
		text := Explain(p)
		if !seen[text] {
			insights = append(insights, text)
			seen[text] = true
		}
	}

	return &Report{
		SessionID:       mined.SessionID,
		RiskLevel:       prediction.RiskLevel,
		RiskProbability: prediction.RiskProbability,
		AttentionSignal: CalculateAttention(prediction.RiskProbability, mined.PatternsDetected),
		KeyInsights:     insights,
		SupportingEvidence: Evidence{
			PatternsDetected:   mined.PatternsDetected,
			RiskScoreRaw:       mined.RiskScore,
			SimilarityToFailed: mined.SimilarityToFailed,
		},
		Guardrails: Guardrails{
			Confidence: "medium",
			Limitations: []string{
				"Prediction based on limited historical data",
				"Patterns inferred from conversation structure",
				"Automated insights require human verification",
			},
		},
		Timeline: m.BuildMarkers(session.Segments),
	}
}
