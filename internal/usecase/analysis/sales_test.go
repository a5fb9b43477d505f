package analysis

import (
	"strings"
	"testing"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

func TestDisqualificationOverridesEverything(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())
	segments := segs(
		"The demo looked genuinely impressive.",
		"We're not planning to switch vendors this year.",
		"Still, sign the contract paperwork whenever, hypothetically.",
	)

	result := a.AnalyzeSales(segments, "")
	if result.Quality.Label != entities.LabelLow {
		t.Fatalf("disqualified call must be Low, got %q", result.Quality.Label)
	}
	if result.Quality.Score != 2 {
		t.Fatalf("expected score 2, got %d", result.Quality.Score)
	}
	found := false
	for _, d := range result.Quality.Drivers {
		if d == "Disqualified: no intent to switch" {
			found = true
		}
	}
	if !found {
		t.Fatalf("drivers must name the disqualification reason: %v", result.Quality.Drivers)
	}
	if !strings.Contains(result.Summary, "no plans to switch") {
		t.Fatalf("summary must state the disqualification: %q", result.Summary)
	}
}

func TestDeferredDisqualification(t *testing.T) {
	signals := SalesSignals{deferred: true, decisionMaker: true}

	verdict := ComputeSalesQuality(signals)
	if verdict.Label != entities.LabelLow {
		t.Fatalf("deferred call must be Low, got %q", verdict.Label)
	}
	if verdict.Drivers[0] != "Disqualified: decision deferred" {
		t.Fatalf("unexpected drivers: %v", verdict.Drivers)
	}
	if summary := BuildSalesSummary(signals, verdict); !strings.Contains(summary, "deferral") {
		t.Fatalf("summary must mention the deferral: %q", summary)
	}
}

func TestSalesQualityLadder(t *testing.T) {
	cases := []struct {
		name      string
		signals   SalesSignals
		wantLabel string
		wantScore int
	}{
		{"hard commitment", SalesSignals{hardCommitment: true}, entities.LabelHigh, 8},
		{"decision maker only", SalesSignals{decisionMaker: true}, entities.LabelMedium, 5},
		{"next step only", SalesSignals{nextStep: true}, entities.LabelMedium, 5},
		{"nothing", SalesSignals{}, entities.LabelLow, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeSalesQuality(tc.signals)
			if got.Label != tc.wantLabel || got.Score != tc.wantScore {
				t.Fatalf("quality = %q/%d, want %q/%d", got.Label, got.Score, tc.wantLabel, tc.wantScore)
			}
			if len(got.Drivers) == 0 {
				t.Fatal("quality verdict must always carry drivers")
			}
		})
	}
}

func TestHardCommitmentPositionWeighting(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())

	filler := "Walking through another part of the product."
	early := segs(
		"We're ready to move forward with this.",
		filler, filler, filler, filler, filler, filler, filler,
	)
	if a.AssessSalesSignals(early).HardCommitment() {
		t.Fatal("generic commitment early in the call must not count")
	}

	late := segs(
		filler, filler, filler, filler, filler, filler, filler,
		"We're ready to move forward with this.",
	)
	if !a.AssessSalesSignals(late).HardCommitment() {
		t.Fatal("generic commitment in the closing quarter must count")
	}

	contractEarly := segs(
		"Just sign the contract and we can begin.",
		filler, filler, filler, filler, filler, filler, filler,
	)
	if !a.AssessSalesSignals(contractEarly).HardCommitment() {
		t.Fatal("explicit contract language counts anywhere in the call")
	}
}

func TestHardCommitmentBookedLogistics(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())

	calls := []string{
		"I have demo booked for us next week.",
		"I accepted the calendar invite.",
		"Let's do the meeting on Tuesday.",
	}
	for _, text := range calls {
		t.Run(text, func(t *testing.T) {
			result := a.AnalyzeSales(segs(text), "")
			if result.Quality.Label != entities.LabelHigh {
				t.Fatalf("booked logistics are a hard commitment, got %q", result.Quality.Label)
			}
			found := false
			for _, d := range result.Quality.Drivers {
				if d == "Hard commitment locked" {
					found = true
				}
			}
			if !found {
				t.Fatalf("drivers must name the commitment: %v", result.Quality.Drivers)
			}
		})
	}
}

func TestDetectObjectionsTypedAndSuppressed(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())
	segments := []entities.Segment{
		negSeg(0, "Honestly this feels too expensive for what it does.", 0.85),
		negSeg(10, "I'd have to run it past my boss first.", 0.8),
		negSeg(20, "Mildly concerned about pricing here.", 0.7), // below floor
	}

	objections := a.DetectObjections(segments, SalesSignals{})
	if len(objections) != 2 {
		t.Fatalf("expected 2 objections, got %d", len(objections))
	}
	if objections[0].Type != entities.ObjectionPricing {
		t.Fatalf("expected Pricing first, got %q", objections[0].Type)
	}
	if objections[1].Type != entities.ObjectionAuthority {
		t.Fatalf("expected Authority, got %q", objections[1].Type)
	}

	// An approved budget makes price pushback moot
	suppressed := a.DetectObjections(segments, SalesSignals{budgetAligned: true})
	for _, o := range suppressed {
		if o.Type == entities.ObjectionPricing {
			t.Fatal("budget alignment must suppress pricing objections")
		}
	}
}

func TestDetectBuyingSignals(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())
	segments := []entities.Segment{
		posSeg(0, "When can we start the trial?", 0.8),
		posSeg(10, "The office coffee here is lovely.", 0.9), // no buying phrase
		posSeg(20, "I like the onboarding flow a lot.", 0.5), // below floor
	}

	signals := a.DetectBuyingSignals(segments)
	if len(signals) != 1 {
		t.Fatalf("expected 1 buying signal, got %d", len(signals))
	}
	if signals[0].Time != 0 {
		t.Fatalf("unexpected buying signal time %v", signals[0].Time)
	}
}

func TestBuildKeyMomentsSortedByTime(t *testing.T) {
	objections := []entities.Objection{{Type: entities.ObjectionPricing, Text: "too expensive", Time: 30}}
	buying := []entities.BuyingSignal{{Text: "when can we start", Time: 10}}

	moments := BuildKeyMoments(objections, buying)
	if len(moments) != 2 {
		t.Fatalf("expected 2 moments, got %d", len(moments))
	}
	if moments[0].Type != "buying_signal" || moments[1].Type != "objection" {
		t.Fatalf("moments not sorted by time: %+v", moments)
	}
	if moments[1].Text != "Pricing objection detected" {
		t.Fatalf("unexpected objection moment text %q", moments[1].Text)
	}
}

func TestBuildRecommendedActions(t *testing.T) {
	objections := []entities.Objection{
		{Type: entities.ObjectionPricing, Time: 10},
		{Type: entities.ObjectionPricing, Time: 20},
		{Type: entities.ObjectionAuthority, Time: 30},
	}
	buying := []entities.BuyingSignal{{Time: 40}}

	actions := BuildRecommendedActions(objections, buying, "declining")
	want := []string{
		"Send pricing clarification",
		"Follow up after internal discussion",
		"Send proposal",
		"Schedule follow-up call",
	}
	if len(actions) != len(want) {
		t.Fatalf("expected %d actions, got %v", len(want), actions)
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Fatalf("action[%d] = %q, want %q", i, actions[i], want[i])
		}
	}

	if got := BuildRecommendedActions(nil, nil, "improving"); len(got) != 0 {
		t.Fatalf("improving trend with no events needs no actions, got %v", got)
	}
}

func TestBuildSalesInsightsPriorityAndCap(t *testing.T) {
	signals := SalesSignals{noIntent: true, hardCommitment: true, authorityRisk: true, budgetAligned: true}
	objections := []entities.Objection{{Type: entities.ObjectionPricing}}
	buying := []entities.BuyingSignal{{Time: 5}}

	insights := BuildSalesInsights(signals, objections, buying)
	if len(insights) != maxSalesInsights {
		t.Fatalf("expected %d insights, got %d", maxSalesInsights, len(insights))
	}
	if insights[0].Type != salesInsightDisqualification {
		t.Fatalf("disqualification must lead, got %q", insights[0].Type)
	}
	for _, in := range insights {
		if in.Type == salesInsightHardCommitment {
			t.Fatal("hard commitment insight must not appear on a disqualified call")
		}
	}
}

func TestAnalyzeSalesEmptyInput(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())

	result := a.AnalyzeSales(nil, "")
	if result.Quality.Label != entities.LabelLow {
		t.Fatalf("empty call defaults to Low, got %q", result.Quality.Label)
	}
	if result.OverallCallSentiment != "neutral" || result.SentimentTrend != "flat" || result.EngagementLevel != "low" {
		t.Fatalf("unexpected empty defaults: %+v", result)
	}
	if result.Objections == nil || result.Transcript == nil || result.RecommendedActions == nil {
		t.Fatal("empty result must keep all lists non-nil")
	}
}
