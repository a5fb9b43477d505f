package patterns

import (
	"strings"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// Features is a flat numeric vector a downstream model can consume
type Features map[string]float64

// BuildFeatures constructs the feature vector from the session and the
// miner output. All values are numeric; mined patterns one-hot encode.
func BuildFeatures(session *entities.AnalysisSession, mined MinedPatterns) Features {
	segments := session.Segments
	features := Features{}

	features["duration_sec"] = session.Duration()
	features["segment_count"] = float64(len(segments))

	var sum float64
	objections := 0
	for _, seg := range segments {
		sum += seg.SentimentScore
		if seg.SentimentLabel == entities.SentimentNegative && seg.SentimentConfidence >= 0.75 {
			objections++
		}
	}
	if len(segments) > 0 {
		features["avg_sentiment"] = sum / float64(len(segments))
	} else {
		features["avg_sentiment"] = 0.0
	}
	features["sentiment_volatility"] = volatility(segments)
	features["objection_count"] = float64(objections)

	decisions, actionItems := 0, 0
	switch {
	case session.Meeting != nil:
		decisions = len(session.Meeting.Decisions)
		actionItems = len(session.Meeting.ActionItems)
	case session.Sales != nil:
		decisions = len(session.Sales.KeyMoments)
		actionItems = len(session.Sales.ActionItems)
	}
	features["decision_count"] = float64(decisions)
	features["action_item_count"] = float64(actionItems)

	features["risk_score"] = mined.RiskScore
	features["similarity_to_failed_deals"] = mined.SimilarityToFailed
	features["has_decision_without_ownership"] = oneHot(mined.PatternsDetected, PatternDecisionWithoutOwnership)
	features["has_price_concession"] = oneHot(mined.PatternsDetected, PatternPriceConcession)

	return features
}

func oneHot(patterns []string, name string) float64 {
	for _, p := range patterns {
		if p == name {
			return 1.0
		}
	}
	return 0.0
}

func containsAnyTerm(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
