package analysis

import (
	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// AnalyzeSales runs the full sales pipeline over enriched segments and
// assembles the response. Pure, like the meeting pipeline.
func (a *Analyzer) AnalyzeSales(segments []entities.Segment, version string) *entities.SalesResult {
	segments = sortSegments(segments)
	if len(segments) == 0 {
		return emptySalesResult()
	}

	signals := a.AssessSalesSignals(segments)
	quality := ComputeSalesQuality(signals)
	objections := a.DetectObjections(segments, signals)
	buying := a.DetectBuyingSignals(segments)
	overview := SentimentOverview(segments)
	trend := SentimentTrend(segments)

	return &entities.SalesResult{
		Mode:                 ModeSales,
		Quality:              quality,
		Summary:              BuildSalesSummary(signals, quality),
		OverallCallSentiment: OverallCallSentiment(overview),
		SentimentTrend:       trend,
		EngagementLevel:      EngagementLevel(overview),
		SentimentOverview:    overview,
		KeyInsights:          BuildSalesInsights(signals, objections, buying),
		Objections:           objections,
		BuyingSignals:        buying,
		RecommendedActions:   BuildRecommendedActions(objections, buying, trend),
		KeyMoments:           BuildKeyMoments(objections, buying),
		ActionItems:          a.ExtractActions(segments),
		Transcript:           buildTranscript(segments),
	}
}

// emptySalesResult is the fully-shaped default for an empty conversation
func emptySalesResult() *entities.SalesResult {
	return &entities.SalesResult{
		Mode:                 ModeSales,
		Quality:              entities.QualityVerdict{Label: entities.LabelLow, Score: salesQualityScores[entities.LabelLow], Drivers: []string{"No commitment signals"}},
		Summary:              "No conversation content to analyze.",
		OverallCallSentiment: "neutral",
		SentimentTrend:       "flat",
		EngagementLevel:      "low",
		KeyInsights:          []entities.KeyInsight{},
		Objections:           []entities.Objection{},
		BuyingSignals:        []entities.BuyingSignal{},
		RecommendedActions:   []string{},
		KeyMoments:           []entities.KeyMoment{},
		ActionItems:          []entities.ActionItem{},
		Transcript:           []entities.TranscriptLine{},
	}
}
