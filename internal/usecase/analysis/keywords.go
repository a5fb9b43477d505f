package analysis

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"
)

// TopicBucket is one named bucket of topic keywords. Bucket order matters:
// when two buckets tie on keyword count, the first declared bucket wins.
type TopicBucket struct {
	Name  string   `json:"name"`
	Terms []string `json:"terms"`
}

// SentimentKeywords drives the business-sentiment adjuster
type SentimentKeywords struct {
	EmotionalNegative []string `json:"emotional_negative"`
	BusinessNeutral   []string `json:"business_neutral"`
	ExecutionTerms    []string `json:"execution_terms"`
	ResolutionTerms   []string `json:"resolution_terms"`
	ClosureTerms      []string `json:"closure_terms"`
	AgreementTerms    []string `json:"agreement_terms"`
}

// SalesKeywords drives the sales-mode detectors
type SalesKeywords struct {
	DecisionMaker      []string `json:"decision_maker"`
	NextStep           []string `json:"next_step"`
	HardCommitment     []string `json:"hard_commitment"`
	ContractCommitment []string `json:"contract_commitment"`
	BudgetAlignment    []string `json:"budget_alignment"`
	AuthorityRisk      []string `json:"authority_risk"`
	SharedDecision     []string `json:"shared_decision"`
	NoIntent           []string `json:"no_intent"`
	Deferred           []string `json:"deferred"`
	ValueAcknowledged  []string `json:"value_acknowledged"`
	PricingObjection   []string `json:"pricing_objection"`
	AuthorityObjection []string `json:"authority_objection"`
	TimingObjection    []string `json:"timing_objection"`
	TrustObjection     []string `json:"trust_objection"`
	BuyingSignals      []string `json:"buying_signals"`
}

// Keywords is the full keyword taxonomy injected into the analyzer at
// construction time. It is treated as immutable after load so detectors
// stay unit-testable with alternate vocabularies.
type Keywords struct {
	Continuations    []string          `json:"continuations"`
	Ownership        []string          `json:"ownership"`
	DecisionPhrases  []string          `json:"decision_phrases"`
	Interrogatives   []string          `json:"interrogatives"`
	AgendaFraming    []string          `json:"agenda_framing"`
	HedgingTerms     []string          `json:"hedging_terms"`
	ExecutionVerbs   []string          `json:"execution_verbs"`
	IssueTerms       []string          `json:"issue_terms"`
	RiskTerms        []string          `json:"risk_terms"`
	DependencyTerms  []string          `json:"dependency_terms"`
	NoBlockerPhrases []string          `json:"no_blocker_phrases"`
	ActionMarkers    []string          `json:"action_markers"`
	OwnershipOnly    []string          `json:"ownership_only"`
	DeadlineTokens   []string          `json:"deadline_tokens"`
	Topics           []TopicBucket     `json:"topics"`
	Sentiment        SentimentKeywords `json:"sentiment"`
	Sales            SalesKeywords     `json:"sales"`
}

// DefaultKeywords returns the compiled-in taxonomy used when no keyword
// config file is provided or the provided one cannot be read.
func DefaultKeywords() Keywords {
	return Keywords{
		Continuations: []string{
			"and", "but", "so", "because", "also", "plus", "then", "which", "or",
		},
		Ownership: []string{
			"i will", "i'll handle", "i'll follow up", "i'll take", "i'll own",
			"i can take", "i'm responsible", "my responsibility", "leave it to me",
			"i'll get it done", "i'll take care", "count on me",
		},
		DecisionPhrases: []string{
			"we will", "we'll", "decided", "let's", "we are going", "we're going",
			"agreed to", "the decision", "go with", "move forward", "finalize",
			"keep the plan",
		},
		Interrogatives: []string{
			"what", "why", "how", "when", "where", "who", "should", "can", "could",
			"would", "do", "does", "did", "is", "are",
		},
		AgendaFraming: []string{
			"goal today", "purpose of", "agenda for", "today we want", "aim of this meeting",
		},
		HedgingTerms: []string{
			"maybe", "might", "pitch", "brainstorm", "possibly", "perhaps",
			"explore", "thinking about", "toss around",
		},
		ExecutionVerbs: []string{
			"deploy", "ship", "fix", "schedule", "implement", "build", "test",
			"release", "merge", "migrate", "launch", "patch", "configure",
			"roll out", "integrate", "debug", "refactor",
		},
		IssueTerms: []string{
			"issue", "problem", "bug", "broken", "failing", "not working",
			"crash", "outage", "regression",
		},
		RiskTerms: []string{
			"risk", "risky", "concern", "worried", "blocker", "blocked",
			"delay", "behind schedule", "slipping", "uncertain",
		},
		DependencyTerms: []string{
			"approval", "sign off", "sign-off", "dependency", "qa", "waiting on",
		},
		NoBlockerPhrases: []string{
			"no blocker", "no blockers", "all clear", "good to go",
			"nothing blocking", "no issues", "we're all set",
		},
		ActionMarkers: []string{
			"i will", "i'll", "we will", "we'll", "i am going to", "i'm going to",
			"we are going to", "we're going to",
		},
		OwnershipOnly: []string{
			"take ownership", "i'm responsible", "i am responsible",
			"my responsibility", "i'll own it",
		},
		DeadlineTokens: []string{
			"today", "tomorrow", "tonight",
			"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
			"next week", "this week", "end of the week", "end of week", "eod", "eow",
			"next month", "this month", "end of month",
			"january", "february", "march", "april", "may", "june", "july",
			"august", "september", "october", "november", "december",
		},
		Topics: []TopicBucket{
			{Name: "product", Terms: []string{"feature", "product", "roadmap", "design", "user"}},
			{Name: "engineering", Terms: []string{"deploy", "bug", "code", "api", "infrastructure", "migration"}},
			{Name: "planning", Terms: []string{"plan", "timeline", "milestone", "sprint", "quarter"}},
			{Name: "budget", Terms: []string{"budget", "cost", "pricing", "invoice", "spend"}},
			{Name: "hiring", Terms: []string{"hire", "candidate", "interview", "recruit", "headcount"}},
			{Name: "customer", Terms: []string{"customer", "client", "deal", "contract", "demo"}},
		},
		Sentiment: SentimentKeywords{
			EmotionalNegative: []string{
				"frustrated", "frustrating", "angry", "upset", "blame", "annoyed",
				"furious", "disappointed", "unacceptable", "sick of", "fed up",
			},
			BusinessNeutral: []string{
				"agenda", "minutes", "recap", "standup", "check-in", "calendar invite",
			},
			ExecutionTerms: []string{
				"bug", "issue", "fix", "blocker", "dependency", "deadline",
				"deploy", "error", "delay", "broken",
			},
			ResolutionTerms: []string{
				"fixed", "resolved", "confirmed", "agreed", "solved", "done",
				"no problem", "sorted",
			},
			ClosureTerms: []string{
				"no blocker", "no blockers", "good to go", "all clear", "we're set",
			},
			AgreementTerms: []string{
				"agreed", "sounds good", "works for me", "aligned", "confirmed",
			},
		},
		Sales: SalesKeywords{
			DecisionMaker: []string{
				"i decide", "i'm the decision", "i am the decision", "my call",
				"i sign off", "i approve", "final say", "decision maker",
			},
			NextStep: []string{
				"next step", "follow up call", "schedule a demo", "book a demo",
				"send the proposal", "send over", "set up a call", "next meeting",
				"start a trial",
			},
			HardCommitment: []string{
				"we'll sign", "we will sign", "ready to move forward", "let's do it",
				"we're in", "we'll take it", "move forward with the purchase",
				"do the meeting",
			},
			ContractCommitment: []string{
				"sign the contract", "send the contract", "start the paperwork",
				"send over the agreement", "demo booked", "calendar invite",
			},
			BudgetAlignment: []string{
				"budget is approved", "budget approved", "within budget",
				"budget isn't an issue", "price works", "fits our budget",
			},
			AuthorityRisk: []string{
				"ask my boss", "check with my manager", "not my decision",
				"above my pay grade", "need approval from",
			},
			SharedDecision: []string{
				"decide together", "team decision", "my partner and i",
				"my co-founder and i",
			},
			NoIntent: []string{
				"not planning to switch", "no plans to switch", "not interested",
				"happy with our current", "not looking to change", "no intention",
				"we're staying with",
			},
			Deferred: []string{
				"next quarter", "not this quarter", "revisit later", "maybe later",
				"down the road", "not right now", "put this on hold",
				"circle back next", "later this year", "touch base in",
			},
			ValueAcknowledged: []string{
				"that would save us", "i can see the value", "that solves",
				"exactly what we need", "that's valuable", "this addresses our",
			},
			PricingObjection: []string{
				"expensive", "cost", "price", "pricing", "budget", "can't afford", "cheaper",
			},
			AuthorityObjection: []string{
				"boss", "manager", "approval", "not my decision", "committee", "stakeholders",
			},
			TimingObjection: []string{
				"not right now", "next quarter", "later", "timing", "busy", "bad time",
			},
			TrustObjection: []string{
				"skeptical", "not sure", "proof", "references", "doubt",
				"heard bad things", "risky",
			},
			BuyingSignals: []string{
				"how much", "pricing", "when can we start", "trial", "demo",
				"sounds great", "i like", "impressive", "what's the onboarding",
				"next steps",
			},
		},
	}
}

// LoadKeywords reads the keyword taxonomy from a JSON file. Any read or parse
// failure falls back to the compiled-in defaults; the product must stay usable
// with a missing or broken config file.
func LoadKeywords(path string, logger *zap.Logger) Keywords {
	if path == "" {
		return DefaultKeywords()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if logger != nil {
			logger.Warn("Keyword config not readable, using defaults",
				zap.String("path", path),
				zap.Error(err))
		}
		return DefaultKeywords()
	}
	var kw Keywords
	if err := json.Unmarshal(data, &kw); err != nil {
		if logger != nil {
			logger.Warn("Keyword config invalid, using defaults",
				zap.String("path", path),
				zap.Error(err))
		}
		return DefaultKeywords()
	}
	return kw
}
