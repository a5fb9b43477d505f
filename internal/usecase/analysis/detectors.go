package analysis

import (
	"strings"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// Analysis modes and input versions
const (
	ModeMeeting = "meeting"
	ModeSales   = "sales"

	// VersionLegacy marks stored transcripts analyzed before execution
	// detection existed; their execution_attempted flag stays false so
	// previously reported results never change.
	VersionLegacy = "legacy"
)

// SignalBundle is the frozen detector output for one conversation. It is
// built once by DetectSignals and exposes read-only accessors only, so no
// downstream scorer or composer can rewrite a signal after the fact.
type SignalBundle struct {
	ownership          bool
	decision           bool
	executionDecision  bool
	executionAttempted bool
	issuesPresent      bool
	risksPresent       bool
	topic              string
}

func (b SignalBundle) Ownership() bool          { return b.ownership }
func (b SignalBundle) Decision() bool           { return b.decision }
func (b SignalBundle) ExecutionDecision() bool  { return b.executionDecision }
func (b SignalBundle) ExecutionAttempted() bool { return b.executionAttempted }
func (b SignalBundle) IssuesPresent() bool      { return b.issuesPresent }
func (b SignalBundle) RisksPresent() bool       { return b.risksPresent }
func (b SignalBundle) Topic() string            { return b.topic }

// Analyzer runs the detector, scorer and composer chain over enriched
// segments. The keyword taxonomy is fixed at construction.
type Analyzer struct {
	keywords Keywords
}

// NewAnalyzer creates an analyzer bound to the given taxonomy
func NewAnalyzer(keywords Keywords) *Analyzer {
	return &Analyzer{keywords: keywords}
}

// DetectSignals runs every independent detector once and freezes the result.
// Each detector is a single-pass scan that never reads another detector's
// output.
func (a *Analyzer) DetectSignals(segments []entities.Segment, version string) SignalBundle {
	b := SignalBundle{
		ownership:          a.detectOwnership(segments),
		decision:           a.detectDecision(segments),
		executionDecision:  a.detectExecutionDecision(segments),
		executionAttempted: a.detectExecutionAttempted(segments),
		issuesPresent:      a.anySegmentContains(segments, a.keywords.IssueTerms),
		risksPresent:       a.anySegmentContains(segments, a.keywords.RiskTerms),
		topic:              a.extractPrimaryTopic(segments),
	}
	if version == VersionLegacy {
		b.executionAttempted = false
	}
	return b
}

func (a *Analyzer) detectOwnership(segments []entities.Segment) bool {
	return a.anySegmentContains(segments, a.keywords.Ownership)
}

// detectDecision is the directional detector used for display lists
func (a *Analyzer) detectDecision(segments []entities.Segment) bool {
	return a.anySegmentContains(segments, a.keywords.DecisionPhrases)
}

// detectExecutionDecision is the strict detector behind the quality verdict.
// A candidate sentence is rejected when it is a question, an agenda framing
// statement, or hedged; explicit negative-form decisions ("let's not delay")
// still count.
func (a *Analyzer) detectExecutionDecision(segments []entities.Segment) bool {
	for _, seg := range segments {
		lower := strings.ToLower(seg.Text)
		if !a.isExecutionCandidate(lower) {
			continue
		}
		if a.isQuestion(seg.Text) {
			continue
		}
		if containsAny(lower, a.keywords.AgendaFraming) {
			continue
		}
		if containsAny(lower, a.keywords.HedgingTerms) {
			continue
		}
		return true
	}
	return false
}

// isExecutionCandidate admits a sentence into the strict decision check.
// Beyond the explicit decision phrases, a declarative personal commitment
// to a concrete action ("I will deploy the fix by Friday") decides execution
// just as firmly as a collective decision.
func (a *Analyzer) isExecutionCandidate(lower string) bool {
	if containsAny(lower, a.keywords.DecisionPhrases) {
		return true
	}
	return containsAny(lower, a.keywords.ActionMarkers) && containsAny(lower, a.keywords.ExecutionVerbs)
}

func (a *Analyzer) detectExecutionAttempted(segments []entities.Segment) bool {
	return a.anySegmentContains(segments, a.keywords.ExecutionVerbs)
}

// DetectExplicitNoBlockers scans only the closing stretch of the meeting for
// an explicit all-clear, the answer to a closing "any blockers?" round.
func (a *Analyzer) DetectExplicitNoBlockers(segments []entities.Segment) bool {
	start := 0
	if len(segments) > 10 {
		start = len(segments) - 10
	}
	return a.anySegmentContains(segments[start:], a.keywords.NoBlockerPhrases)
}

// extractPrimaryTopic scores each configured topic bucket by keyword hits
// across the whole conversation. Ties resolve to the first declared bucket.
func (a *Analyzer) extractPrimaryTopic(segments []entities.Segment) string {
	best := "general discussion"
	bestScore := 0
	for _, bucket := range a.keywords.Topics {
		score := 0
		for _, seg := range segments {
			lower := strings.ToLower(seg.Text)
			for _, term := range bucket.Terms {
				if strings.Contains(lower, term) {
					score++
				}
			}
		}
		if score > bestScore {
			best = bucket.Name
			bestScore = score
		}
	}
	return best
}

// ExtractDecisions collects the directional decision statements for display
func (a *Analyzer) ExtractDecisions(segments []entities.Segment) []entities.Decision {
	decisions := make([]entities.Decision, 0)
	for _, seg := range segments {
		if containsAny(strings.ToLower(seg.Text), a.keywords.DecisionPhrases) {
			decisions = append(decisions, entities.Decision{
				Text: strings.TrimSpace(seg.Text),
				Time: seg.Start,
			})
		}
	}
	return decisions
}

// DetectTensionPoints flags confidently negative moments. The caller applies
// the explicit no-blockers override before the list reaches any consumer.
func (a *Analyzer) DetectTensionPoints(segments []entities.Segment) []entities.TensionPoint {
	points := make([]entities.TensionPoint, 0)
	for _, seg := range segments {
		if seg.SentimentLabel == entities.SentimentNegative && seg.SentimentConfidence >= 0.75 {
			points = append(points, entities.TensionPoint{
				Text:   strings.TrimSpace(seg.Text),
				Time:   seg.Start,
				Reason: "high-confidence negative sentiment",
			})
		}
	}
	return points
}

func (a *Analyzer) isQuestion(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if strings.HasSuffix(trimmed, "?") {
		return true
	}
	first := strings.ToLower(strings.Fields(trimmed)[0])
	first = strings.Trim(first, ",.!?")
	for _, q := range a.keywords.Interrogatives {
		if first == q {
			return true
		}
	}
	return false
}

func (a *Analyzer) anySegmentContains(segments []entities.Segment, phrases []string) bool {
	for _, seg := range segments {
		if containsAny(strings.ToLower(seg.Text), phrases) {
			return true
		}
	}
	return false
}
