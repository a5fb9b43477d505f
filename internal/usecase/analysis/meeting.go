package analysis

import (
	"sort"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// AnalyzeMeeting runs the full meeting pipeline over enriched segments and
// assembles the response. The function is pure: it owns nothing beyond its
// inputs and performs no I/O.
func (a *Analyzer) AnalyzeMeeting(segments []entities.Segment, version string) *entities.MeetingResult {
	segments = sortSegments(segments)
	if len(segments) == 0 {
		return emptyMeetingResult()
	}

	bundle := a.DetectSignals(segments, version)
	actions := a.ExtractActions(segments)
	decisions := a.ExtractDecisions(segments)

	tension := a.DetectTensionPoints(segments)
	if a.DetectExplicitNoBlockers(segments) {
		tension = tension[:0]
	}

	depsControlled := a.DependenciesControlled(actions)
	health := a.ComputeMeetingHealth(tension, actions)
	quality := ComputeMeetingQuality(bundle)
	risk := a.ComputeProjectRisk(bundle, actions)
	sentimentLabel, sentimentScore := a.BusinessSentiment(segments, health)

	return &entities.MeetingResult{
		Mode:                   ModeMeeting,
		MeetingQuality:         quality,
		ProjectRisk:            risk,
		Summary:                a.BuildMeetingSummary(bundle, risk),
		MeetingHealth:          health,
		KeyInsights:            a.BuildMeetingInsights(bundle, risk, tension, depsControlled),
		OverallSentimentLabel:  sentimentLabel,
		SentimentScore:         sentimentScore,
		SentimentOverview:      SentimentOverview(segments),
		Decisions:              decisions,
		ActionItems:            actions,
		TensionPoints:          tension,
		BlockersPresent:        len(tension) > 0,
		DependenciesControlled: depsControlled,
		Transcript:             buildTranscript(segments),
	}
}

// emptyMeetingResult is the fully-shaped default for an empty conversation
func emptyMeetingResult() *entities.MeetingResult {
	return &entities.MeetingResult{
		Mode:                   ModeMeeting,
		MeetingQuality:         entities.QualityVerdict{Label: entities.LabelLow},
		ProjectRisk:            entities.RiskVerdict{Label: entities.LabelLow, Drivers: []string{}},
		Summary:                "No conversation content to analyze.",
		MeetingHealth:          entities.HealthOnTrack,
		KeyInsights:            []entities.KeyInsight{},
		OverallSentimentLabel:  entities.OverallFocused,
		Decisions:              []entities.Decision{},
		ActionItems:            []entities.ActionItem{},
		TensionPoints:          []entities.TensionPoint{},
		DependenciesControlled: true,
		Transcript:             []entities.TranscriptLine{},
	}
}

// sortSegments returns a copy ordered ascending by start time, input order
// preserved on ties.
func sortSegments(segments []entities.Segment) []entities.Segment {
	sorted := make([]entities.Segment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	return sorted
}

func buildTranscript(segments []entities.Segment) []entities.TranscriptLine {
	lines := make([]entities.TranscriptLine, 0, len(segments))
	for _, seg := range segments {
		lines = append(lines, entities.TranscriptLine{
			Start:      seg.Start,
			End:        seg.End,
			Text:       seg.Text,
			Sentiment:  seg.SentimentLabel,
			Confidence: seg.SentimentConfidence,
		})
	}
	return lines
}
