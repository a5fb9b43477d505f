package analysis

import (
	"testing"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

func TestComputeMeetingQualityMatrix(t *testing.T) {
	cases := []struct {
		name              string
		ownership         bool
		executionDecision bool
		want              string
	}{
		{"both", true, true, entities.LabelHigh},
		{"ownership only", true, false, entities.LabelMedium},
		{"decision only", false, true, entities.LabelMedium},
		{"neither", false, false, entities.LabelLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := SignalBundle{ownership: tc.ownership, executionDecision: tc.executionDecision}
			if got := ComputeMeetingQuality(b); got.Label != tc.want {
				t.Fatalf("quality = %q, want %q", got.Label, tc.want)
			}
		})
	}
}

func TestMeetingQualityIgnoresIssuesAndRisks(t *testing.T) {
	// Issues, risks and sentiment feed project risk, never quality
	b := SignalBundle{ownership: true, executionDecision: true, issuesPresent: true, risksPresent: true}
	if got := ComputeMeetingQuality(b); got.Label != entities.LabelHigh {
		t.Fatalf("quality must stay High despite issues and risks, got %q", got.Label)
	}
}

func TestComputeProjectRiskScoring(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())
	uncontrolled := []entities.ActionItem{{
		Task:     "I will chase the QA sign off",
		Owner:    "Self",
		Deadline: entities.DeadlineUnspecified,
	}}

	cases := []struct {
		name      string
		bundle    SignalBundle
		items     []entities.ActionItem
		wantScore int
		wantLabel string
	}{
		{"clean", SignalBundle{}, nil, 0, entities.LabelLow},
		{"issues only", SignalBundle{issuesPresent: true}, nil, 3, entities.LabelLow},
		{"dependency only", SignalBundle{}, uncontrolled, 4, entities.LabelMedium},
		{"issues and risks", SignalBundle{issuesPresent: true, risksPresent: true}, nil, 6, entities.LabelMedium},
		{"everything", SignalBundle{issuesPresent: true, risksPresent: true}, uncontrolled, 10, entities.LabelHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := a.ComputeProjectRisk(tc.bundle, tc.items)
			if got.Score != tc.wantScore {
				t.Fatalf("score = %d, want %d", got.Score, tc.wantScore)
			}
			if got.Label != tc.wantLabel {
				t.Fatalf("label = %q, want %q", got.Label, tc.wantLabel)
			}
			if len(got.Drivers) == 0 && got.Score > 0 {
				t.Fatal("non-zero risk must carry drivers")
			}
		})
	}
}

func TestRiskIndependentOfQuality(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())
	b := SignalBundle{ownership: true, executionDecision: true, issuesPresent: true, risksPresent: true}
	uncontrolled := []entities.ActionItem{{
		Task:     "I will chase the QA sign off",
		Owner:    "Self",
		Deadline: entities.DeadlineUnspecified,
	}}

	if got := ComputeMeetingQuality(b); got.Label != entities.LabelHigh {
		t.Fatalf("quality = %q, want High", got.Label)
	}
	if got := a.ComputeProjectRisk(b, uncontrolled); got.Label != entities.LabelHigh {
		t.Fatalf("risk = %q, want High", got.Label)
	}
}

func TestComputeMeetingHealthPriority(t *testing.T) {
	a := NewAnalyzer(DefaultKeywords())
	tension := []entities.TensionPoint{{Text: "this keeps breaking", Time: 10}}
	uncontrolled := []entities.ActionItem{{
		Task:     "I will chase the QA sign off",
		Owner:    "Self",
		Deadline: entities.DeadlineUnspecified,
	}}

	if got := a.ComputeMeetingHealth(tension, uncontrolled); got != entities.HealthBlocked {
		t.Fatalf("tension must dominate, got %q", got)
	}
	if got := a.ComputeMeetingHealth(nil, uncontrolled); got != entities.HealthAtRisk {
		t.Fatalf("uncontrolled dependency means at_risk, got %q", got)
	}
	if got := a.ComputeMeetingHealth(nil, nil); got != entities.HealthOnTrack {
		t.Fatalf("clean meeting is on_track, got %q", got)
	}
}
