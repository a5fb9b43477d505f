package patterns

import (
	"github.com/johnquangdev/talksense/internal/domain/entities"
)

const (
	MarkerObjection    = "objection"
	MarkerDecision     = "decision"
	MarkerSentimentDip = "sentiment_dip"

	snippetLen       = 50
	dipThreshold     = -0.4
	markerNegativity = -0.2
)

// Marker is a timeline event the UI can pin to the transcript
type Marker struct {
	Type         string  `json:"type"`
	SegmentIndex int     `json:"segment_index"`
	Text         string  `json:"text"`
	Sentiment    float64 `json:"sentiment,omitempty"`
	Delta        float64 `json:"delta,omitempty"`
}

// BuildMarkers walks the segments once and emits objection, decision and
// sentiment-dip markers in transcript order
func (m *Miner) BuildMarkers(segments []entities.Segment) []Marker {
	markers := []Marker{}

	for i, seg := range segments {
		// Objection marker, only when sentiment is actually negative
		// to keep the timeline quiet
		if seg.SentimentScore < markerNegativity &&
			(containsAnyTerm(seg.Text, m.keywords.Sales.PricingObjection) ||
				(seg.SentimentLabel == entities.SentimentNegative && seg.SentimentConfidence >= 0.75)) {
			markers = append(markers, Marker{
				Type:         MarkerObjection,
				SegmentIndex: i,
				Text:         snippet(seg.Text),
				Sentiment:    seg.SentimentScore,
			})
		}

		if seg.HasKeyword("decision") {
			markers = append(markers, Marker{
				Type:         MarkerDecision,
				SegmentIndex: i,
				Text:         snippet(seg.Text),
			})
		}

		if i > 0 {
			delta := seg.SentimentScore - segments[i-1].SentimentScore
			if delta < dipThreshold {
				markers = append(markers, Marker{
					Type:         MarkerSentimentDip,
					SegmentIndex: i,
					Text:         "Significant sentiment drop",
					Delta:        delta,
				})
			}
		}
	}

	return markers
}

func snippet(text string) string {
	if len(text) > snippetLen {
		return text[:snippetLen] + "..."
	}
	return text
}
