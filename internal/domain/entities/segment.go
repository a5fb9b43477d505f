package entities

// Sentiment labels carried by enriched segments.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// Segment represents a single enriched utterance in a conversation.
// It is created once by the enricher and never modified afterwards;
// every downstream detector and scorer treats it as read-only.
type Segment struct {
	Start               float64  `json:"start"`
	End                 float64  `json:"end"`
	Text                string   `json:"text"`
	SentimentLabel      string   `json:"sentiment_label"`
	SentimentScore      float64  `json:"sentiment_score"`
	SentimentConfidence float64  `json:"sentiment_confidence"`
	Keywords            []string `json:"keywords,omitempty"`
}

// HasKeyword checks whether the segment was tagged with the given category
func (s Segment) HasKeyword(category string) bool {
	for _, k := range s.Keywords {
		if k == category {
			return true
		}
	}
	return false
}

// Duration returns the segment length in seconds
func (s Segment) Duration() float64 {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// RawSegment is a bare speech-to-text segment before enrichment
type RawSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}
