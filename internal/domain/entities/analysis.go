package entities

// Quality and risk labels
const (
	LabelHigh   = "High"
	LabelMedium = "Medium"
	LabelLow    = "Low"
)

// Meeting health states, consumed by the sentiment adjuster
const (
	HealthOnTrack = "on_track"
	HealthAtRisk  = "at_risk"
	HealthBlocked = "blocked"
)

// Overall sentiment labels shown to users
const (
	OverallPositive = "Positive"
	OverallTense    = "Tense"
	OverallFocused  = "Neutral / Focused"
)

// Key insight types, in priority order (lower value wins when capped)
const (
	InsightEscalation        = "Escalation Required"
	InsightExecutionRisk     = "Execution Risk"
	InsightDecisionAmbiguity = "Decision Ambiguity"
	InsightOwnershipGap      = "Ownership Gap"
	InsightPositiveMomentum  = "Positive Momentum"
	InsightStrategicPlanning = "Strategic Planning"
)

// Objection types recognised by the sales pipeline
const (
	ObjectionPricing   = "Pricing"
	ObjectionAuthority = "Authority"
	ObjectionTiming    = "Timing"
	ObjectionTrust     = "Trust"
)

// Defaults for action items that lack an extracted owner or deadline
const (
	OwnerUnassigned     = "Unassigned"
	DeadlineUnspecified = "Not specified"
)

// QualityVerdict is the meeting or call quality. Meeting mode fills only the
// label; sales mode also carries a score and the drivers behind the label.
type QualityVerdict struct {
	Label   string   `json:"label"`
	Score   int      `json:"score,omitempty"`
	Drivers []string `json:"drivers,omitempty"`
}

// RiskVerdict is the project risk, computed independently of quality
type RiskVerdict struct {
	Label   string   `json:"label"`
	Score   int      `json:"score"`
	Drivers []string `json:"drivers"`
}

// Decision is a directional decision surfaced for display
type Decision struct {
	Text string  `json:"text"`
	Time float64 `json:"time"`
}

// ActionItem is a committed task extracted from the transcript
type ActionItem struct {
	Task     string  `json:"task"`
	Owner    string  `json:"owner"`
	Deadline string  `json:"deadline"`
	Time     float64 `json:"time"`
}

// Controlled reports whether the item has both a real owner and a real deadline
func (a ActionItem) Controlled() bool {
	return a.Owner != "" && a.Owner != OwnerUnassigned &&
		a.Deadline != "" && a.Deadline != DeadlineUnspecified
}

// TensionPoint is a high-confidence negative moment in the conversation
type TensionPoint struct {
	Text   string  `json:"text"`
	Time   float64 `json:"time"`
	Reason string  `json:"reason"`
}

// Objection is a typed sales objection
type Objection struct {
	Type string  `json:"type"`
	Text string  `json:"text"`
	Time float64 `json:"time"`
}

// BuyingSignal is a confident positive buying indication
type BuyingSignal struct {
	Text string  `json:"text"`
	Time float64 `json:"time"`
}

// KeyInsight is one entry of the capped, deduplicated insight list
type KeyInsight struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// KeyMoment is a timeline event (objection detected, buying signal, ...)
type KeyMoment struct {
	Type string  `json:"type"`
	Text string  `json:"text"`
	Time float64 `json:"time"`
}

// TranscriptLine is the display form of an enriched segment
type TranscriptLine struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Text       string  `json:"text"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

// SentimentOverview counts confidently-labelled segments per polarity
type SentimentOverview struct {
	Positive int `json:"Positive"`
	Neutral  int `json:"Neutral"`
	Negative int `json:"Negative"`
}

// MeetingResult is the assembled meeting-mode response
type MeetingResult struct {
	Mode                   string            `json:"mode"`
	MeetingQuality         QualityVerdict    `json:"meeting_quality"`
	ProjectRisk            RiskVerdict       `json:"project_risk"`
	Summary                string            `json:"summary"`
	MeetingHealth          string            `json:"meeting_health"`
	KeyInsights            []KeyInsight      `json:"key_insights"`
	OverallSentimentLabel  string            `json:"overall_sentiment_label"`
	SentimentScore         float64           `json:"sentiment_score"`
	SentimentOverview      SentimentOverview `json:"sentiment_overview"`
	Decisions              []Decision        `json:"decisions"`
	ActionItems            []ActionItem      `json:"action_items"`
	TensionPoints          []TensionPoint    `json:"tension_points"`
	BlockersPresent        bool              `json:"blockers_present"`
	DependenciesControlled bool              `json:"dependencies_controlled"`
	Transcript             []TranscriptLine  `json:"transcript"`
}

// SalesResult is the assembled sales-mode response
type SalesResult struct {
	Mode                 string            `json:"mode"`
	Quality              QualityVerdict    `json:"quality"`
	Summary              string            `json:"summary"`
	OverallCallSentiment string            `json:"overall_call_sentiment"`
	SentimentTrend       string            `json:"sentiment_trend"`
	EngagementLevel      string            `json:"engagement_level"`
	SentimentOverview    SentimentOverview `json:"sentiment_overview"`
	KeyInsights          []KeyInsight      `json:"key_insights"`
	Objections           []Objection       `json:"objections"`
	BuyingSignals        []BuyingSignal    `json:"buying_signals"`
	RecommendedActions   []string          `json:"recommended_actions"`
	KeyMoments           []KeyMoment       `json:"key_moments"`
	ActionItems          []ActionItem      `json:"action_items"`
	Transcript           []TranscriptLine  `json:"transcript"`
}
