package analysis

import (
	"sort"
	"strings"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// SalesSignals is the frozen detector output for one sales call
type SalesSignals struct {
	decisionMaker     bool
	nextStep          bool
	hardCommitment    bool
	budgetAligned     bool
	authorityRisk     bool
	sharedDecision    bool
	noIntent          bool
	deferred          bool
	valueAcknowledged bool
}

func (s SalesSignals) DecisionMaker() bool     { return s.decisionMaker }
func (s SalesSignals) NextStep() bool          { return s.nextStep }
func (s SalesSignals) HardCommitment() bool    { return s.hardCommitment }
func (s SalesSignals) BudgetAligned() bool     { return s.budgetAligned }
func (s SalesSignals) AuthorityRisk() bool     { return s.authorityRisk }
func (s SalesSignals) SharedDecision() bool    { return s.sharedDecision }
func (s SalesSignals) NoIntent() bool          { return s.noIntent }
func (s SalesSignals) Deferred() bool          { return s.deferred }
func (s SalesSignals) ValueAcknowledged() bool { return s.valueAcknowledged }

// Disqualified reports whether a hard override phrase was found anywhere
// in the call.
func (s SalesSignals) Disqualified() bool { return s.noIntent || s.deferred }

// AssessSalesSignals runs the sales detectors over the call. Commitment
// scanning is position-weighted: generic commitment language only counts in
// the last quarter of the call, where it is credible; explicit contract
// language counts anywhere.
func (a *Analyzer) AssessSalesSignals(segments []entities.Segment) SalesSignals {
	sk := a.keywords.Sales
	s := SalesSignals{
		decisionMaker:     a.anySegmentContains(segments, sk.DecisionMaker),
		nextStep:          a.anySegmentContains(segments, sk.NextStep),
		budgetAligned:     a.anySegmentContains(segments, sk.BudgetAlignment),
		authorityRisk:     a.anySegmentContains(segments, sk.AuthorityRisk),
		sharedDecision:    a.anySegmentContains(segments, sk.SharedDecision),
		noIntent:          a.anySegmentContains(segments, sk.NoIntent),
		deferred:          a.anySegmentContains(segments, sk.Deferred),
		valueAcknowledged: a.anySegmentContains(segments, sk.ValueAcknowledged),
	}

	if a.anySegmentContains(segments, sk.ContractCommitment) {
		s.hardCommitment = true
	} else {
		tail := segments[len(segments)*3/4:]
		s.hardCommitment = a.anySegmentContains(tail, sk.HardCommitment)
	}
	return s
}

// DetectObjections finds typed objections: confidently negative segments
// matching an objection vocabulary. Budget alignment suppresses pricing
// objections, since an approved budget makes price pushback moot.
func (a *Analyzer) DetectObjections(segments []entities.Segment, signals SalesSignals) []entities.Objection {
	sk := a.keywords.Sales
	objections := make([]entities.Objection, 0)
	for _, seg := range segments {
		if seg.SentimentLabel != entities.SentimentNegative || seg.SentimentConfidence < objectionConfidence {
			continue
		}
		lower := strings.ToLower(seg.Text)
		objType := ""
		switch {
		case containsAny(lower, sk.PricingObjection):
			if signals.BudgetAligned() {
				continue
			}
			objType = entities.ObjectionPricing
		case containsAny(lower, sk.AuthorityObjection):
			objType = entities.ObjectionAuthority
		case containsAny(lower, sk.TimingObjection):
			objType = entities.ObjectionTiming
		case containsAny(lower, sk.TrustObjection):
			objType = entities.ObjectionTrust
		default:
			continue
		}
		objections = append(objections, entities.Objection{
			Type: objType,
			Text: strings.TrimSpace(seg.Text),
			Time: seg.Start,
		})
	}
	return objections
}

// DetectBuyingSignals finds confidently positive buying language
func (a *Analyzer) DetectBuyingSignals(segments []entities.Segment) []entities.BuyingSignal {
	signals := make([]entities.BuyingSignal, 0)
	for _, seg := range segments {
		if seg.SentimentLabel != entities.SentimentPositive || seg.SentimentConfidence < buyingConfidence {
			continue
		}
		if !containsAny(strings.ToLower(seg.Text), a.keywords.Sales.BuyingSignals) {
			continue
		}
		signals = append(signals, entities.BuyingSignal{
			Text: strings.TrimSpace(seg.Text),
			Time: seg.Start,
		})
	}
	return signals
}

// BuildKeyMoments turns objections and buying signals into a time-sorted
// timeline of typed events.
func BuildKeyMoments(objections []entities.Objection, buying []entities.BuyingSignal) []entities.KeyMoment {
	moments := make([]entities.KeyMoment, 0, len(objections)+len(buying))
	for _, o := range objections {
		moments = append(moments, entities.KeyMoment{
			Type: "objection",
			Text: o.Type + " objection detected",
			Time: o.Time,
		})
	}
	for _, b := range buying {
		moments = append(moments, entities.KeyMoment{
			Type: "buying_signal",
			Text: "Buying signal detected",
			Time: b.Time,
		})
	}
	sort.SliceStable(moments, func(i, j int) bool { return moments[i].Time < moments[j].Time })
	return moments
}
