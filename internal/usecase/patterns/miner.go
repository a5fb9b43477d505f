// Package patterns mines cross-segment conversation patterns and predicts
// session outcomes from the enriched transcript. Unlike the per-call analysis
// in usecase/analysis, everything here looks at segment sequences.
package patterns

import (
	"math"

	"github.com/johnquangdev/talksense/internal/domain/entities"
	"github.com/johnquangdev/talksense/internal/usecase/analysis"
)

const (
	PatternPriceConcession          = "price_concession_pattern"
	PatternDecisionWithoutOwnership = "decision_without_ownership"
)

const (
	embeddingDim       = 384
	objectionThreshold = -0.3
	baseRisk           = 0.2
	maxRisk            = 0.99
)

// negotiationTerms mark concession talk that follows a price objection
var negotiationTerms = []string{
	"discount",
	"negotiate",
	"special price",
	"flexible on price",
	"price match",
	"better rate",
}

// MinedPatterns is the raw miner output for one session
type MinedPatterns struct {
	SessionID          string   `json:"session_id"`
	PatternsDetected   []string `json:"patterns_detected"`
	RiskScore          float64  `json:"risk_score"`
	SimilarityToFailed float64  `json:"similarity_to_failed_deal"`
}

// Miner detects sequence patterns over enriched segments
type Miner struct {
	keywords           *analysis.Keywords
	failedDealCentroid []float64
}

// NewMiner builds a miner with a fixed failed-deal centroid. The centroid
// would normally come from historical embeddings; without an embedding
// service the deterministic stand-in keeps similarity reporting stable.
func NewMiner(keywords *analysis.Keywords) *Miner {
	centroid := make([]float64, embeddingDim)
	for i := range centroid {
		centroid[i] = 0.1
	}
	return &Miner{keywords: keywords, failedDealCentroid: centroid}
}

// CosineSimilarity returns 0 when either vector has zero norm
func CosineSimilarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, v := range a {
		normA += v * v
	}
	for _, v := range b {
		normB += v * v
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// MinePatterns scans the segment sequence for known risk patterns
func (m *Miner) MinePatterns(segments []entities.Segment) []string {
	detected := []string{}

	// Price concession: a price objection followed later by negotiation talk
	priceObjectionIdx := -1
	for i, seg := range segments {
		if seg.SentimentScore < objectionThreshold && containsAnyTerm(seg.Text, m.keywords.Sales.PricingObjection) {
			priceObjectionIdx = i
			break
		}
	}
	if priceObjectionIdx != -1 {
		for i := priceObjectionIdx + 1; i < len(segments); i++ {
			if containsAnyTerm(segments[i].Text, negotiationTerms) {
				detected = append(detected, PatternPriceConcession)
				break
			}
		}
	}

	// Decision without ownership: a decision with no ownership or execution
	// talk anywhere after it. Flag once per session.
	for i, seg := range segments {
		if !seg.HasKeyword("decision") {
			continue
		}
		hasFollowup := false
		for j := i + 1; j < len(segments); j++ {
			if segments[j].HasKeyword("ownership") || segments[j].HasKeyword("execution") {
				hasFollowup = true
				break
			}
		}
		if !hasFollowup {
			detected = append(detected, PatternDecisionWithoutOwnership)
			break
		}
	}

	return detected
}

// RiskScore combines objection pressure, volatility, mined patterns and
// topic instability into a heuristic 0..0.99 score
func (m *Miner) RiskScore(segments []entities.Segment, patterns []string) float64 {
	risk := baseRisk

	objections := 0
	for _, seg := range segments {
		if seg.SentimentLabel == entities.SentimentNegative && seg.SentimentConfidence >= 0.75 {
			objections++
		}
	}
	risk += float64(objections) * 0.1

	if volatility(segments) > 0.5 {
		risk += 0.1
	}

	for _, p := range patterns {
		switch p {
		case PatternDecisionWithoutOwnership:
			risk += 0.2
		case PatternPriceConcession:
			risk += 0.1
		}
	}

	if m.countTopicShifts(segments) > 3 {
		risk += 0.1
	}

	if risk > maxRisk {
		risk = maxRisk
	}
	return risk
}

// AnalyzeSession runs the full mining pass. A nil or empty embedding
// reports similarity 0.
func (m *Miner) AnalyzeSession(sessionID string, segments []entities.Segment, embedding []float64) MinedPatterns {
	patterns := m.MinePatterns(segments)
	result := MinedPatterns{
		SessionID:        sessionID,
		PatternsDetected: patterns,
		RiskScore:        round2(m.RiskScore(segments, patterns)),
	}
	if len(embedding) > 0 {
		result.SimilarityToFailed = round3(CosineSimilarity(embedding, m.failedDealCentroid))
	}
	return result
}

// countTopicShifts counts transitions between topic buckets. Segments that
// match no bucket inherit the previous topic.
func (m *Miner) countTopicShifts(segments []entities.Segment) int {
	shifts := 0
	current := ""
	for _, seg := range segments {
		topic := m.topicOf(seg.Text)
		if topic == "" {
			continue
		}
		if current != "" && topic != current {
			shifts++
		}
		current = topic
	}
	return shifts
}

func (m *Miner) topicOf(text string) string {
	for _, bucket := range m.keywords.Topics {
		if containsAnyTerm(text, bucket.Terms) {
			return bucket.Name
		}
	}
	return ""
}

func volatility(segments []entities.Segment) float64 {
	if len(segments) < 2 {
		return 0.0
	}
	var sum float64
	for _, seg := range segments {
		sum += seg.SentimentScore
	}
	mean := sum / float64(len(segments))
	var variance float64
	for _, seg := range segments {
		d := seg.SentimentScore - mean
		variance += d * d
	}
	// Sample standard deviation
	return math.Sqrt(variance / float64(len(segments)-1))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
