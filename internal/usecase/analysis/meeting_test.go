package analysis

import (
	"strings"
	"testing"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

func TestAnalyzeMeetingEmptyInput(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())

	result := a.AnalyzeMeeting(nil, "")
	if result.MeetingQuality.Label != entities.LabelLow {
		t.Fatalf("empty meeting defaults to Low, got %q", result.MeetingQuality.Label)
	}
	if result.MeetingHealth != entities.HealthOnTrack {
		t.Fatalf("empty meeting is on_track, got %q", result.MeetingHealth)
	}
	if !result.DependenciesControlled {
		t.Fatal("empty meeting has controlled dependencies")
	}
	if result.Decisions == nil || result.ActionItems == nil || result.Transcript == nil || result.KeyInsights == nil {
		t.Fatal("empty result must keep all lists non-nil")
	}
	if result.Summary == "" {
		t.Fatal("empty result still carries a summary")
	}
}

func TestAnalyzeMeetingSortsSegments(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())
	segments := []entities.Segment{
		{Start: 30, End: 35, Text: "Closing remarks.", SentimentLabel: entities.SentimentNeutral},
		{Start: 0, End: 5, Text: "Opening remarks.", SentimentLabel: entities.SentimentNeutral},
		{Start: 10, End: 15, Text: "Middle remarks.", SentimentLabel: entities.SentimentNeutral},
	}

	result := a.AnalyzeMeeting(segments, "")
	if len(result.Transcript) != 3 {
		t.Fatalf("expected 3 transcript lines, got %d", len(result.Transcript))
	}
	for i := 1; i < len(result.Transcript); i++ {
		if result.Transcript[i-1].Start > result.Transcript[i].Start {
			t.Fatalf("transcript out of order: %+v", result.Transcript)
		}
	}
	if segments[0].Start != 30 {
		t.Fatal("input slice must not be mutated")
	}
}

func TestAnalyzeMeetingQualityDespiteNegativeSentiment(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())
	segments := []entities.Segment{
		negSeg(0, "The outage is a serious problem and I'm fed up.", 0.9),
		{Start: 10, End: 15, Text: "We decided to go with the hotfix.", SentimentLabel: entities.SentimentNeutral},
		{Start: 20, End: 25, Text: "I will deploy the fix by Friday.", SentimentLabel: entities.SentimentNeutral},
	}

	result := a.AnalyzeMeeting(segments, "")
	if result.MeetingQuality.Label != entities.LabelHigh {
		t.Fatalf("ownership plus firm decision is High regardless of tone, got %q", result.MeetingQuality.Label)
	}
	if result.ProjectRisk.Score == 0 {
		t.Fatal("issue language must still raise project risk")
	}
	if !result.BlockersPresent {
		t.Fatal("high-confidence negative segment is a blocker")
	}
	if result.MeetingHealth != entities.HealthBlocked {
		t.Fatalf("tension means blocked, got %q", result.MeetingHealth)
	}
	if len(result.ActionItems) != 1 {
		t.Fatalf("expected 1 action item, got %d", len(result.ActionItems))
	}
}

func TestAnalyzeMeetingSinglePersonalCommitment(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())
	segments := segs("I will deploy the fix by Friday.")

	result := a.AnalyzeMeeting(segments, "")
	if result.MeetingQuality.Label != entities.LabelHigh {
		t.Fatalf("a personal commitment to a concrete action is High, got %q", result.MeetingQuality.Label)
	}
	if len(result.ActionItems) != 1 {
		t.Fatalf("expected 1 action item, got %d", len(result.ActionItems))
	}
	if result.ActionItems[0].Deadline != "Friday" {
		t.Fatalf("expected deadline Friday, got %q", result.ActionItems[0].Deadline)
	}
}

func TestAnalyzeMeetingNoBlockersOverride(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())
	segments := []entities.Segment{
		negSeg(0, "The outage earlier really annoyed me.", 0.9),
		{Start: 10, End: 15, Text: "All sorted since then.", SentimentLabel: entities.SentimentNeutral},
		{Start: 20, End: 25, Text: "No blockers, we're good to go.", SentimentLabel: entities.SentimentNeutral},
	}

	result := a.AnalyzeMeeting(segments, "")
	if len(result.TensionPoints) != 0 {
		t.Fatalf("explicit all-clear must drop tension points, got %+v", result.TensionPoints)
	}
	if result.BlockersPresent {
		t.Fatal("no blockers after the override")
	}
	if result.MeetingHealth != entities.HealthOnTrack {
		t.Fatalf("expected on_track after override, got %q", result.MeetingHealth)
	}
}

func TestAnalyzeMeetingLegacyVersion(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())
	segments := segs("We should test the deploy pipeline sometime.")

	result := a.AnalyzeMeeting(segments, VersionLegacy)
	for _, in := range result.KeyInsights {
		if in.Type == entities.InsightOwnershipGap || in.Type == entities.InsightDecisionAmbiguity {
			t.Fatalf("legacy transcripts must not surface execution complaints, got %q", in.Type)
		}
	}
	found := false
	for _, in := range result.KeyInsights {
		if in.Type == entities.InsightStrategicPlanning {
			found = true
		}
	}
	if !found {
		t.Fatalf("legacy transcript reads as strategic, got %+v", result.KeyInsights)
	}
}

func TestAnalyzeMeetingSummaryMatchesVerdict(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())
	segments := segs(
		"I will deploy the fix by Friday.",
		"We decided to go with the hotfix.",
	)

	result := a.AnalyzeMeeting(segments, "")
	if !strings.Contains(result.Summary, "Ownership was assigned and a firm execution decision was reached.") {
		t.Fatalf("summary must match the High verdict: %q", result.Summary)
	}
}
