package analysis

import (
	"strings"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// Confidence floors for counting a segment's sentiment as meaningful
const (
	overviewConfidence     = 0.6
	tensionConfidence      = 0.75
	buyingConfidence       = 0.7
	objectionConfidence    = 0.75
	endOfCallWindow        = 5
	positiveLabelThreshold = 0.3
	tenseLabelThreshold    = -0.3
)

// BusinessSentiment re-maps raw classifier scores into a business-aware
// aggregate. The raw model reads routine work language ("bug", "deadline")
// as emotionally negative; this adjuster dampens routine friction, zeroes
// logistics chatter and keeps genuine emotion untouched.
func (a *Analyzer) BusinessSentiment(segments []entities.Segment, health string) (string, float64) {
	if len(segments) == 0 {
		return entities.OverallFocused, 0
	}

	sum := 0.0
	for _, seg := range segments {
		sum += a.adjustSegmentScore(seg)
	}
	score := sum / float64(len(segments))
	score += a.endOfCallBoost(segments)

	// A meeting that ended on_track cannot be reported as broadly negative.
	if health == entities.HealthOnTrack && score < -0.1 {
		score = 0
	}

	switch {
	case score > positiveLabelThreshold:
		return entities.OverallPositive, score
	case score < tenseLabelThreshold:
		return entities.OverallTense, score
	default:
		return entities.OverallFocused, score
	}
}

func (a *Analyzer) adjustSegmentScore(seg entities.Segment) float64 {
	lower := strings.ToLower(seg.Text)
	raw := seg.SentimentScore

	// Genuine emotion passes through unadjusted.
	if containsAny(lower, a.keywords.Sentiment.EmotionalNegative) {
		return raw
	}
	if containsAny(lower, a.keywords.Sentiment.BusinessNeutral) {
		return 0
	}
	if containsAny(lower, a.keywords.Sentiment.ExecutionTerms) {
		if containsAny(lower, a.keywords.Sentiment.ResolutionTerms) {
			adjusted := raw
			if adjusted < 0 {
				adjusted = 0
			}
			return adjusted + 0.1
		}
		if raw < 0 {
			return raw * 0.3
		}
	}
	return raw
}

// endOfCallBoost rewards explicit closure in the final segments. Closure
// language outweighs plain agreement when both appear.
func (a *Analyzer) endOfCallBoost(segments []entities.Segment) float64 {
	start := 0
	if len(segments) > endOfCallWindow {
		start = len(segments) - endOfCallWindow
	}
	boost := 0.0
	for _, seg := range segments[start:] {
		lower := strings.ToLower(seg.Text)
		if containsAny(lower, a.keywords.Sentiment.ClosureTerms) {
			return 0.3
		}
		if boost == 0 && containsAny(lower, a.keywords.Sentiment.AgreementTerms) {
			boost = 0.2
		}
	}
	return boost
}

// SentimentOverview counts confidently labelled segments per polarity
func SentimentOverview(segments []entities.Segment) entities.SentimentOverview {
	var overview entities.SentimentOverview
	for _, seg := range segments {
		if seg.SentimentConfidence < overviewConfidence {
			continue
		}
		switch seg.SentimentLabel {
		case entities.SentimentPositive:
			overview.Positive++
		case entities.SentimentNegative:
			overview.Negative++
		default:
			overview.Neutral++
		}
	}
	return overview
}

// SentimentTrend compares polarity mass in the opening and closing thirds
// of the conversation. Too-short conversations read as flat.
func SentimentTrend(segments []entities.Segment) string {
	if len(segments) < 3 {
		return "flat"
	}
	third := len(segments) / 3
	var first, last float64
	for _, seg := range segments[:third] {
		first += seg.SentimentScore
	}
	for _, seg := range segments[len(segments)-third:] {
		last += seg.SentimentScore
	}
	diff := last - first
	switch {
	case diff > 0.1:
		return "improving"
	case diff < -0.1:
		return "declining"
	default:
		return "flat"
	}
}

// OverallCallSentiment votes across confidently labelled segments
func OverallCallSentiment(overview entities.SentimentOverview) string {
	pos, neg := overview.Positive, overview.Negative
	switch {
	case pos == 0 && neg == 0:
		return "neutral"
	case pos > 0 && neg > 0 && abs(pos-neg) <= 1:
		return "mixed"
	case pos > neg:
		return "positive"
	default:
		return "negative"
	}
}

// EngagementLevel grades how emotionally invested the prospect was
func EngagementLevel(overview entities.SentimentOverview) string {
	switch {
	case overview.Positive > 0 && overview.Negative > 0:
		return "high"
	case overview.Positive == 0 && overview.Negative == 0 && overview.Neutral == 0:
		return "low"
	default:
		return "moderate"
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
